// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"fmt"
	"math"
	"strconv"
)

// Dynamic is the reserved sentinel meaning "value not (yet) known":
// an unresolved stride, or the unbounded extent of a broadcast dimension.
// It is the extremal value of int so it can never collide with a real
// index, extent, or stride.
const Dynamic = math.MinInt

// DimKind tags the specialization of a Dim.  The kind encodes which
// components are fixed by construction: a DenseDim always has stride 1
// and a BroadcastDim always has stride 0 and unbounded extent, and
// MakeCompact / ConvertShapeTry treat those strides as non-negotiable,
// whereas a StridedDim stride is a plain runtime value.
type DimKind int32

const (
	// StridedDim is the general dimension: all components are runtime values.
	StridedDim DimKind = iota

	// DenseDim is a dimension whose stride is fixed to 1.
	DenseDim

	// BroadcastDim is a dimension whose stride is fixed to 0 and whose
	// extent is unbounded: every index is in range and contributes
	// nothing to the offset.
	BroadcastDim
)

func (dk DimKind) String() string {
	switch dk {
	case DenseDim:
		return "dense"
	case BroadcastDim:
		return "broadcast"
	}
	return "strided"
}

// Dim describes one dimension of a shape: the minimum valid index, the
// number of valid indexes (extent), and the linear-offset step per unit
// index (stride).  Stride may be Dynamic, meaning not yet resolved --
// see Shape.Resolve.  Dim is a plain value: copy freely.
type Dim struct {

	// minimum valid index
	Min int

	// number of valid indexes: valid indexes are Min <= i <= Max()
	Extent int

	// offset step per unit index; Dynamic = unresolved
	Stride int

	// specialization tag -- see DimKind
	Kind DimKind
}

// NewDim returns a general dimension with given min, extent and stride.
// Pass Dynamic for the stride to leave it unresolved.
func NewDim(min, extent, stride int) Dim {
	return Dim{Min: min, Extent: extent, Stride: stride}
}

// NewExtentDim returns a dimension with given extent, min 0,
// and an unresolved stride.
func NewExtentDim(extent int) Dim {
	return Dim{Min: 0, Extent: extent, Stride: Dynamic}
}

// NewDenseDim returns a dimension with given min and extent whose stride
// is fixed to 1.
func NewDenseDim(min, extent int) Dim {
	return Dim{Min: min, Extent: extent, Stride: 1, Kind: DenseDim}
}

// NewBroadcastDim returns a dimension with stride fixed to 0 and
// unbounded extent: it accepts every index and contributes nothing
// to the offset.
func NewBroadcastDim() Dim {
	return Dim{Min: 0, Extent: Dynamic, Stride: 0, Kind: BroadcastDim}
}

// Max returns the maximum valid index, Min + Extent - 1.
// A broadcast (unbounded) dimension returns math.MaxInt.
func (d Dim) Max() int {
	if d.Extent == Dynamic {
		return math.MaxInt
	}
	return d.Min + d.Extent - 1
}

// Interval returns the index interval [Min, Min+Extent) of this dimension.
func (d Dim) Interval() Interval {
	return Interval{Min: d.Min, Extent: d.Extent}
}

// IsResolved returns true if the stride has a concrete value.
func (d Dim) IsResolved() bool {
	return d.Stride != Dynamic
}

// Contains returns true if index i is valid for this dimension:
// Min <= i <= Max.  Broadcast dimensions contain every index.
func (d Dim) Contains(i int) bool {
	if d.Kind == BroadcastDim || d.Extent == Dynamic {
		return true
	}
	return i >= d.Min && i <= d.Max()
}

// ContainsInterval returns true if both endpoints of iv are valid
// indexes for this dimension.  An empty interval is trivially contained.
func (d Dim) ContainsInterval(iv Interval) bool {
	if iv.Extent <= 0 {
		return true
	}
	return d.Contains(iv.Min) && d.Contains(iv.Max())
}

// Clamp returns i clamped to the valid index range [Min, Max].
// Broadcast dimensions return i unchanged.
func (d Dim) Clamp(i int) int {
	if d.Kind == BroadcastDim || d.Extent == Dynamic {
		return i
	}
	return max(min(i, d.Max()), d.Min)
}

// FlatMin returns the smallest offset this dimension produces over its
// index range.  Empty dimensions produce no offsets: FlatMin is 0 and
// FlatMax is -1.  Only meaningful for resolved strides.
func (d Dim) FlatMin() int {
	if d.Extent == 0 {
		return 0
	}
	if d.Stride == 0 || d.Stride == Dynamic {
		return 0
	}
	if d.Stride > 0 {
		return d.Stride * d.Min
	}
	return d.Stride * d.Max()
}

// FlatMax returns the largest offset this dimension produces over its
// index range.  See FlatMin for the empty convention.
func (d Dim) FlatMax() int {
	if d.Extent == 0 {
		return -1
	}
	if d.Stride == 0 || d.Stride == Dynamic {
		return 0
	}
	if d.Stride > 0 {
		return d.Stride * d.Max()
	}
	return d.Stride * d.Min
}

// IsEqual returns true if the two dims have the same min, extent and
// stride.  The kind tag is not compared: a dense dim equals a strided
// dim with stride 1.
func (d Dim) IsEqual(o Dim) bool {
	return d.Min == o.Min && d.Extent == o.Extent && d.Stride == o.Stride
}

// String satisfies the fmt.Stringer interface
func (d Dim) String() string {
	e := "*"
	if d.Extent != Dynamic {
		e = strconv.Itoa(d.Extent)
	}
	s := "*"
	if d.Stride != Dynamic {
		s = strconv.Itoa(d.Stride)
	}
	return fmt.Sprintf("dim(%d, %s, %s)", d.Min, e, s)
}
