// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

// Transpose returns a shape whose k-th dimension is sh.Dim(perm[k]).
// perm must be a full permutation of the dimension indexes; panics
// otherwise.  Strides and storage are untouched: this is a pure
// relabeling of the index order.
func Transpose(sh Shape, perm ...int) Shape {
	if len(perm) != len(sh.Dims) || !isPermutation(perm, len(sh.Dims)) {
		panic("earray.Transpose: perm must be a permutation of all dimension indexes")
	}
	dims := make([]Dim, len(perm))
	for k, p := range perm {
		dims[k] = sh.Dims[p]
	}
	return Shape{Dims: dims}
}

// Reorder returns a shape of rank len(sel) selecting the given
// dimensions, in order.  The selected indexes must be distinct and in
// range; panics otherwise.  Strides and storage are untouched.
func Reorder(sh Shape, sel ...int) Shape {
	seen := make([]bool, len(sh.Dims))
	dims := make([]Dim, len(sel))
	for k, p := range sel {
		if p < 0 || p >= len(sh.Dims) || seen[p] {
			panic("earray.Reorder: dimension indexes must be distinct and in range")
		}
		seen[p] = true
		dims[k] = sh.Dims[p]
	}
	return Shape{Dims: dims}
}

// isPermutation returns true if p contains each of 0..n-1 exactly once.
func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
