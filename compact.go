// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

// visitCounts returns how many times each offset in [FlatMin, FlatMax]
// is produced over the index domain.  Broadcast dimensions contribute a
// single representative index.
func (sh Shape) visitCounts() []int {
	fe := sh.FlatExtent()
	if fe <= 0 {
		return nil
	}
	counts := make([]int, fe)
	fm := sh.FlatMin()
	ForEachIndex(sh, func(ix []int) {
		counts[sh.OffsetIndex(ix)-fm]++
	})
	return counts
}

// IsCompact returns true if every offset in [FlatMin, FlatMax] is
// produced by at least one index: the storage span has no gaps.
// Empty domains are trivially compact.  Only valid for resolved shapes.
func (sh Shape) IsCompact() bool {
	if sh.Len() == 0 {
		return true
	}
	for _, c := range sh.visitCounts() {
		if c == 0 {
			return false
		}
	}
	return true
}

// IsOneToOne returns true if no two distinct indexes produce the same
// offset.  A broadcast dimension over a nonempty domain is never
// one-to-one: all its indexes share each offset.  Only valid for
// resolved shapes.
func (sh Shape) IsOneToOne() bool {
	if sh.Len() == 0 {
		return true
	}
	for _, d := range sh.Dims {
		if d.Kind == BroadcastDim || d.Extent == Dynamic {
			return false
		}
	}
	for _, c := range sh.visitCounts() {
		if c > 1 {
			return false
		}
	}
	return true
}
