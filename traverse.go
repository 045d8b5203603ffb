// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

// ForAllIndices invokes f exactly once for every index in the shape's
// domain, with the index values as separate arguments.  Dimension 0
// varies fastest; see ForAllIndicesOrder to choose the loop order.
// The callback value is held for the whole traversal, never copied per
// iteration, so closures carrying state are cheap.
func ForAllIndices(sh Shape, f func(ix ...int)) {
	traverse(sh, defaultOrder(len(sh.Dims)), func(ix []int) { f(ix...) })
}

// ForAllIndicesOrder is ForAllIndices with an explicit loop order:
// order[0] is the inner-most (fastest varying) dimension.  order must
// be a permutation of the dimension indexes; panics otherwise.
func ForAllIndicesOrder(sh Shape, order []int, f func(ix ...int)) {
	traverse(sh, order, func(ix []int) { f(ix...) })
}

// ForEachIndex invokes f exactly once for every index in the shape's
// domain, with the index as a single slice.  The slice is reused
// between calls: copy it if it must survive the callback.  Dimension 0
// varies fastest.
func ForEachIndex(sh Shape, f func(ix []int)) {
	traverse(sh, defaultOrder(len(sh.Dims)), f)
}

// ForEachIndexOrder is ForEachIndex with an explicit loop order:
// order[0] is the inner-most (fastest varying) dimension.
func ForEachIndexOrder(sh Shape, order []int, f func(ix []int)) {
	traverse(sh, order, f)
}

func defaultOrder(n int) []int {
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	return ord
}

// traverse runs the nested index loops as a single odometer over the
// given order.  Broadcast (unbounded) dimensions contribute one
// representative index; an empty dimension means no calls at all.
// A rank 0 shape gets exactly one call with an empty index.
func traverse(sh Shape, order []int, f func(ix []int)) {
	nd := len(sh.Dims)
	if !isPermutation(order, nd) {
		panic("earray.traverse: loop order must be a permutation of all dimension indexes")
	}
	ix := make([]int, nd)
	bound := make([]int, nd)
	for i, d := range sh.Dims {
		e := d.Extent
		if e == Dynamic {
			e = 1
		}
		if e <= 0 {
			return
		}
		ix[i] = d.Min
		bound[i] = d.Min + e
	}
	for {
		f(ix)
		k := 0
		for ; k < nd; k++ {
			di := order[k]
			ix[di]++
			if ix[di] < bound[di] {
				break
			}
			ix[di] = sh.Dims[di].Min
		}
		if k == nd {
			return
		}
	}
}
