// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import "fmt"

// Copy assigns dst(i) = src(i) for every index i in dst's domain.
// Every such index must be valid for src: otherwise nothing is copied
// and an error wrapping ErrOutOfRange is returned.  The two views may
// have different layouts; only the index labels must line up.
func Copy[T any](dst, src ArrayView[T]) error {
	if !src.ContainsShape(dst.Shape) {
		return fmt.Errorf("earray.Copy: %w: destination domain %v not within source %v", ErrOutOfRange, dst.Shape, src.Shape)
	}
	ForEachIndex(dst.Shape, func(ix []int) {
		dst.Values[dst.Off+dst.OffsetIndex(ix)] = src.Values[src.Off+src.OffsetIndex(ix)]
	})
	return nil
}

// Move is Copy for element types whose assignment transfers ownership
// of referenced state; for plain value types the two are identical, as
// Go assignment always copies the element value itself.
func Move[T any](dst, src ArrayView[T]) error {
	if !src.ContainsShape(dst.Shape) {
		return fmt.Errorf("earray.Move: %w: destination domain %v not within source %v", ErrOutOfRange, dst.Shape, src.Shape)
	}
	ForEachIndex(dst.Shape, func(ix []int) {
		dst.Values[dst.Off+dst.OffsetIndex(ix)] = src.Values[src.Off+src.OffsetIndex(ix)]
	})
	return nil
}

// Fill assigns val to every in-domain cell of vw.  Cells outside the
// indexed domain of a sparse shape are untouched.
func Fill[T any](vw ArrayView[T], val T) {
	ForEachIndex(vw.Shape, func(ix []int) {
		vw.Values[vw.Off+vw.OffsetIndex(ix)] = val
	})
}

// Generate assigns fn() to every in-domain cell of vw, calling fn once
// per cell in the default traversal order.
func Generate[T any](vw ArrayView[T], fn func() T) {
	ForEachIndex(vw.Shape, func(ix []int) {
		vw.Values[vw.Off+vw.OffsetIndex(ix)] = fn()
	})
}

// Equal returns true if a and b index the same domain (equal min and
// extent on every dimension) and hold equal values at every in-domain
// index.  Layouts (strides) need not match.
func Equal[T comparable](a, b ArrayView[T]) bool {
	if a.NumDims() != b.NumDims() {
		return false
	}
	for i := range a.Dims {
		if a.Dims[i].Interval() != b.Dims[i].Interval() {
			return false
		}
	}
	eq := true
	ForEachIndex(a.Shape, func(ix []int) {
		if !eq {
			return
		}
		if a.Values[a.Off+a.OffsetIndex(ix)] != b.Values[b.Off+b.OffsetIndex(ix)] {
			eq = false
		}
	})
	return eq
}
