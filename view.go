// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"strings"
	"unsafe"

	"goki.dev/laser"
)

// IndexSpec selects what a view takes from one dimension: a single
// index (At, removing the dimension), the whole dimension (All), or a
// cropped sub-interval (Range, keeping the dimension).  View takes one
// IndexSpec per dimension.
type IndexSpec struct {
	kind   specKind
	index  int
	min    int
	extent int
}

type specKind int32

const (
	specAt specKind = iota
	specAll
	specRange
)

// At fixes an axis at index i; the dimension is removed from the
// resulting view, reducing its rank by one.
func At(i int) IndexSpec {
	return IndexSpec{kind: specAt, index: i}
}

// All selects a whole dimension unchanged.
var All = IndexSpec{kind: specAll}

// Range crops a dimension to the indexes [min, min+extent), keeping the
// dimension (and its index labels) in the resulting view.
func Range(min, extent int) IndexSpec {
	return IndexSpec{kind: specRange, min: min, extent: extent}
}

// RangeInterval is Range taking an Interval.
func RangeInterval(iv Interval) IndexSpec {
	return Range(iv.Min, iv.Extent)
}

// ArrayView is a non-owning n-dimensional view: a shape indexing into a
// storage slice owned elsewhere.  The view is a value -- copying it
// never copies elements -- and its lifetime is the caller's concern,
// exactly like a sub-slice.  Off locates offset 0 within Values, so
// element (i0, i1, ...) lives at Values[Off + Offset(i0, i1, ...)].
type ArrayView[T any] struct {
	Shape

	// the borrowed storage
	Values []T

	// position of offset 0 within Values
	Off int
}

// NewArrayView returns a view of vals under the given shape, which must
// be resolved.  vals must span the shape's [FlatMin, FlatMax] offsets:
// vals[0] is the element at offset FlatMin.
func NewArrayView[T any](vals []T, sh Shape) ArrayView[T] {
	return ArrayView[T]{Shape: sh.Clone(), Values: vals, Off: -sh.FlatMin()}
}

// Ref returns the view itself: with the same method on Array, any
// array-or-view can be taken as an ArrayView.
func (vw ArrayView[T]) Ref() ArrayView[T] { return vw }

// At returns a reference to the element at the given index.
// No checking is done on the number or range of the index values.
func (vw ArrayView[T]) At(ix ...int) *T {
	return &vw.Values[vw.Off+vw.OffsetIndex(ix)]
}

// Value returns the element at the given index.
func (vw ArrayView[T]) Value(ix ...int) T {
	return vw.Values[vw.Off+vw.OffsetIndex(ix)]
}

// Set sets the element at the given index.
func (vw ArrayView[T]) Set(val T, ix ...int) {
	vw.Values[vw.Off+vw.OffsetIndex(ix)] = val
}

// View returns a sub-view: one IndexSpec per dimension (panics
// otherwise), where At(i) fixes the dimension and drops it from the
// result, All keeps it, and Range(min, extent) crops it.  Cropped and
// kept dimensions retain their index labels, so element (i, j) of a
// cropped view is element (i, j) of the original.  The view borrows the
// same storage: writes are visible through both.
func (vw ArrayView[T]) View(specs ...IndexSpec) ArrayView[T] {
	nd := vw.NumDims()
	if len(specs) != nd {
		panic("earray.View: one IndexSpec per dimension is required")
	}
	nv := ArrayView[T]{Values: vw.Values, Off: vw.Off}
	dims := make([]Dim, 0, nd)
	for i, sp := range specs {
		d := vw.Dims[i]
		switch sp.kind {
		case specAt:
			nv.Off += d.Stride * sp.index
		case specAll:
			dims = append(dims, d)
		case specRange:
			d.Min = sp.min
			d.Extent = sp.extent
			dims = append(dims, d)
		}
	}
	nv.Shape = Shape{Dims: dims}
	return nv
}

// Reinterpret returns a view of element type U over the same storage.
// The element types must have identical sizes; panics otherwise.
func Reinterpret[U, T any](vw ArrayView[T]) ArrayView[U] {
	var u U
	var t T
	if unsafe.Sizeof(u) != unsafe.Sizeof(t) {
		panic("earray.Reinterpret: element sizes differ")
	}
	nv := ArrayView[U]{Shape: vw.Shape.Clone(), Off: vw.Off}
	if len(vw.Values) > 0 {
		nv.Values = unsafe.Slice((*U)(unsafe.Pointer(&vw.Values[0])), len(vw.Values))
	}
	return nv
}

// String satisfies the fmt.Stringer interface for string of view data
func (vw ArrayView[T]) String() string {
	str := vw.Shape.String()
	if vw.Len() > 1000 {
		return str
	}
	var b strings.Builder
	b.WriteString(str)
	b.WriteString(":")
	ForEachIndex(vw.Shape, func(ix []int) {
		b.WriteString(" ")
		b.WriteString(laser.ToString(vw.Values[vw.Off+vw.OffsetIndex(ix)]))
	})
	return b.String()
}
