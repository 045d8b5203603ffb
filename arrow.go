// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"github.com/apache/arrow/go/arrow/array"
	"github.com/apache/arrow/go/arrow/memory"
	"github.com/apache/arrow/go/arrow/tensor"
)

// ToArrow returns the apache arrow tensor equivalent of the given
// float64 view.  The shape must be resolved with min 0 and non-negative
// strides -- arrow tensors have no index minima.  names may be nil.
func ToArrow(vw ArrayView[float64], names []string) *tensor.Float64 {
	bld := array.NewFloat64Builder(memory.DefaultAllocator)
	bld.AppendValues(vw.Values, nil)
	vec := bld.NewFloat64Array()
	return tensor.NewFloat64(vec.Data(), IntTo64(vw.Extents()), IntTo64(vw.Strides()), names)
}

// FromArrow returns a new array initialized from an arrow tensor of the
// same type.  cpy = true copies the arrow data; otherwise the values
// slice directly refers to the arrow storage -- no Retain() is done on
// that data, so it is up to the go GC and / or your own memory
// management policies to ensure the data remains intact.
func FromArrow(arw *tensor.Float64, cpy bool) *Array[float64] {
	shp := arw.Shape()
	strd := arw.Strides()
	dims := make([]Dim, len(shp))
	for i := range shp {
		dims[i] = Dim{Min: 0, Extent: int(shp[i]), Stride: int(strd[i])}
	}
	sh := Shape{Dims: dims}
	ar := &Array[float64]{}
	ar.Shape = sh
	ar.Off = -sh.FlatMin()
	if cpy {
		vls := arw.Float64Values()
		ar.Values = make([]float64, len(vls))
		copy(ar.Values, vls)
	} else {
		ar.Values = arw.Float64Values()
	}
	return ar
}
