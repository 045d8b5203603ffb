// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

// Array is an owning n-dimensional array: a shape plus storage of
// FlatExtent() elements, uniquely owned.  All view operations are
// available through the embedded ArrayView.  Arrays are created
// zero-valued; for sparse shapes (Len() < FlatExtent()) fills and copies
// leave the storage gaps untouched.
type Array[T any] struct {
	ArrayView[T]
}

// NewArray returns a new zero-valued array of the given shape,
// resolving any unresolved strides first.
func NewArray[T any](sh Shape) *Array[T] {
	ar := &Array[T]{}
	ar.alloc(sh)
	return ar
}

// NewArrayFill returns a new array of the given shape with every
// in-domain cell set to val.
func NewArrayFill[T any](sh Shape, val T) *Array[T] {
	ar := NewArray[T](sh)
	Fill(ar.ArrayView, val)
	return ar
}

// NewArrayOfRank returns a new zero-valued, tightly packed array with
// the given extents (min 0, dimension 0 inner-most).
func NewArrayOfRank[T any](extents ...int) *Array[T] {
	return NewArray[T](NewShapeOfRank(extents...))
}

func (ar *Array[T]) alloc(sh Shape) {
	ns := sh.Clone()
	ns.Resolve()
	ar.Shape = ns
	ar.Values = make([]T, ns.FlatExtent())
	ar.Off = -ns.FlatMin()
}

// Assign sets the shape (resolving unresolved strides) and fills every
// in-domain cell with val.  Storage is reallocated only when the new
// shape needs more room than the current storage holds; cells outside
// the indexed domain are left untouched.
func (ar *Array[T]) Assign(sh Shape, val T) {
	ns := sh.Clone()
	ns.Resolve()
	fe := ns.FlatExtent()
	if cap(ar.Values) >= fe {
		ar.Values = ar.Values[:fe]
	} else {
		ar.Values = make([]T, fe)
	}
	ar.Shape = ns
	ar.Off = -ns.FlatMin()
	Fill(ar.ArrayView, val)
}

// Clear releases the storage and empties the domain: the rank is kept
// but every extent becomes 0.
func (ar *Array[T]) Clear() {
	ar.Values = nil
	ar.Off = 0
	for i := range ar.Dims {
		ar.Dims[i].Extent = 0
	}
}

// Clone returns a new array with the same shape and a deep copy of
// every in-domain cell.  Storage gaps of sparse shapes are not copied.
func (ar *Array[T]) Clone() *Array[T] {
	cp := NewArray[T](ar.Shape)
	ForEachIndex(ar.Shape, func(ix []int) {
		off := ar.OffsetIndex(ix)
		cp.Values[cp.Off+off] = ar.Values[ar.Off+off]
	})
	return cp
}

// CopyFrom copies every in-domain cell of this array from frm, which
// must cover this array's whole domain: returns an error wrapping
// ErrOutOfRange otherwise.
func (ar *Array[T]) CopyFrom(frm ArrayView[T]) error {
	return Copy(ar.ArrayView, frm)
}
