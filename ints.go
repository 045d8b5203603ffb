// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

// EqualInts compares two int slices and returns true if they are equal
func EqualInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CopyInts makes a copy of an int slice
func CopyInts(a []int) []int {
	ns := make([]int, len(a))
	copy(ns, a)
	return ns
}

// CopyDims makes a copy of a Dim slice
func CopyDims(a []Dim) []Dim {
	ns := make([]Dim, len(a))
	copy(ns, a)
	return ns
}

// IntTo64 converts an []int slice to an []int64 slice
func IntTo64(isl []int) []int64 {
	is := make([]int64, len(isl))
	for i := range isl {
		is[i] = int64(isl[i])
	}
	return is
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
