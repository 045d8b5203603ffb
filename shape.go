// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"sort"
	"strings"
)

// Shape is an ordered list of Dim descriptors mapping an n-dimensional
// index to a linear offset: Offset(i0, i1, ...) = sum of Stride_k * i_k.
// The minimum indexes do not enter the offset -- offsets are measured
// from index 0 -- they only delimit the valid index range per dimension.
// The rank (number of dimensions) is fixed at construction.
// A rank 0 shape maps the empty index to offset 0 and has Len() 1.
type Shape struct {

	// the dimensions, in order; dimension 0 is inner-most by convention
	Dims []Dim
}

// NewShape returns a shape over the given dimensions.
func NewShape(dims ...Dim) Shape {
	return Shape{Dims: CopyDims(dims)}
}

// NewShapeOfRank returns a fully dynamic shape with the given extents,
// min 0 and unresolved strides on every dimension.  Call Resolve to
// assign strides.
func NewShapeOfRank(extents ...int) Shape {
	dims := make([]Dim, len(extents))
	for i, e := range extents {
		dims[i] = NewExtentDim(e)
	}
	return Shape{Dims: dims}
}

// NewDenseShape returns a resolved shape with the given extents, min 0,
// and tightly packed strides with dimension 0 inner-most (stride 1).
func NewDenseShape(extents ...int) Shape {
	dims := make([]Dim, len(extents))
	str := 1
	for i, e := range extents {
		dims[i] = Dim{Min: 0, Extent: e, Stride: str}
		if i == 0 {
			dims[i].Kind = DenseDim
		}
		str *= max(1, e)
	}
	return Shape{Dims: dims}
}

// Clone returns a deep copy of the shape.
func (sh Shape) Clone() Shape {
	return Shape{Dims: CopyDims(sh.Dims)}
}

// NumDims returns the rank: the number of dimensions.
func (sh Shape) NumDims() int { return len(sh.Dims) }

// Dim returns the i-th dimension descriptor.
func (sh Shape) Dim(i int) Dim { return sh.Dims[i] }

// Extents returns the extent of each dimension.  This is a copy.
func (sh Shape) Extents() []int {
	ex := make([]int, len(sh.Dims))
	for i, d := range sh.Dims {
		ex[i] = d.Extent
	}
	return ex
}

// Strides returns the stride of each dimension.  This is a copy.
func (sh Shape) Strides() []int {
	st := make([]int, len(sh.Dims))
	for i, d := range sh.Dims {
		st[i] = d.Stride
	}
	return st
}

// Mins returns the minimum index of each dimension.  This is a copy.
func (sh Shape) Mins() []int {
	mn := make([]int, len(sh.Dims))
	for i, d := range sh.Dims {
		mn[i] = d.Min
	}
	return mn
}

// Len returns the number of indexed elements: the product of the extents.
// Broadcast (unbounded) dimensions count as 1.
func (sh Shape) Len() int {
	n := 1
	for _, d := range sh.Dims {
		if d.Extent == Dynamic {
			continue
		}
		n *= d.Extent
	}
	return n
}

// IsResolved returns true if every stride has a concrete value.
func (sh Shape) IsResolved() bool {
	for _, d := range sh.Dims {
		if !d.IsResolved() {
			return false
		}
	}
	return true
}

// FlatMin returns the smallest offset produced over the whole index
// domain.  0 if the domain is empty.  Only valid for resolved shapes.
func (sh Shape) FlatMin() int {
	if sh.Len() == 0 {
		return 0
	}
	fm := 0
	for _, d := range sh.Dims {
		fm += d.FlatMin()
	}
	return fm
}

// FlatMax returns the largest offset produced over the whole index
// domain.  -1 if the domain is empty.  Only valid for resolved shapes.
func (sh Shape) FlatMax() int {
	if sh.Len() == 0 {
		return -1
	}
	fm := 0
	for _, d := range sh.Dims {
		fm += d.FlatMax()
	}
	return fm
}

// FlatExtent returns the number of offsets in [FlatMin, FlatMax]:
// the storage span an array of this shape needs.  For one-to-one shapes
// Len() <= FlatExtent(), with equality iff the shape is also compact;
// shapes that reuse offsets can have Len() > FlatExtent().
func (sh Shape) FlatExtent() int {
	if sh.Len() == 0 {
		return 0
	}
	return sh.FlatMax() - sh.FlatMin() + 1
}

// Offset returns the linear offset of the given n-dimensional index.
// No checking is done on the number or range of the index values.
func (sh Shape) Offset(ix ...int) int {
	return sh.OffsetIndex(ix)
}

// OffsetIndex is Offset taking the index as a slice.
func (sh Shape) OffsetIndex(ix []int) int {
	var off int
	for i, v := range ix {
		off += v * sh.Dims[i].Stride
	}
	return off
}

// Index returns the n-dimensional index producing the given offset.
// Only valid for resolved shapes with min 0 and non-negative strides
// that nest: each positive stride exceeds the largest offset reachable
// through the dimensions of smaller stride, as in dense layouts.
// Broadcast dimensions report 0.
func (sh Shape) Index(offset int) []int {
	nd := len(sh.Dims)
	ord := make([]int, nd)
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(a, b int) bool {
		return sh.Dims[ord[a]].Stride > sh.Dims[ord[b]].Stride
	})
	ix := make([]int, nd)
	rem := offset
	for _, di := range ord {
		d := sh.Dims[di]
		if d.Stride <= 0 {
			ix[di] = 0
			continue
		}
		ix[di] = rem / d.Stride
		rem %= d.Stride
	}
	return ix
}

// IsInRange returns true if the given index is valid: the right number
// of values, each within its dimension's [Min, Max] range.
func (sh Shape) IsInRange(ix ...int) bool {
	if len(ix) != len(sh.Dims) {
		return false
	}
	for i, v := range ix {
		if !sh.Dims[i].Contains(v) {
			return false
		}
	}
	return true
}

// ContainsIntervals returns true if each given interval lies within the
// corresponding dimension's index range: one interval per dimension.
func (sh Shape) ContainsIntervals(ivs ...Interval) bool {
	if len(ivs) != len(sh.Dims) {
		return false
	}
	for i, iv := range ivs {
		if !sh.Dims[i].ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// ContainsShape returns true if every index tuple valid for o is also
// valid for this shape.  Ranks must match; a broadcast dimension here
// contains anything, and a broadcast dimension in o is only contained
// by a broadcast dimension here.
func (sh Shape) ContainsShape(o Shape) bool {
	if len(sh.Dims) != len(o.Dims) {
		return false
	}
	for i, d := range sh.Dims {
		od := o.Dims[i]
		if od.Kind == BroadcastDim || od.Extent == Dynamic {
			if !(d.Kind == BroadcastDim || d.Extent == Dynamic) {
				return false
			}
			continue
		}
		if !d.ContainsInterval(od.Interval()) {
			return false
		}
	}
	return true
}

// IsEqual returns true if the two shapes have the same rank and the
// same min, extent and stride on every dimension.
func (sh Shape) IsEqual(o Shape) bool {
	if len(sh.Dims) != len(o.Dims) {
		return false
	}
	for i, d := range sh.Dims {
		if !d.IsEqual(o.Dims[i]) {
			return false
		}
	}
	return true
}

// String satisfies the fmt.Stringer interface
func (sh Shape) String() string {
	var b strings.Builder
	b.WriteString("shape(")
	for i, d := range sh.Dims {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString(")")
	return b.String()
}
