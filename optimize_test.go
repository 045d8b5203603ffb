// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeFuseAll(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 21), NewDim(0, 7, 3), NewDim(5, 3, 1))
	op := OptimizeShape(sh)
	want := NewShape(NewDim(5, 105, 1), NewDim(0, 1, 105), NewDim(0, 1, 105))
	assert.True(t, op.IsEqual(want), "got %v", op)
}

func TestOptimizeSortOnly(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 40), NewDim(0, 7, 3), NewDim(0, 2, 1))
	op := OptimizeShape(sh)
	want := NewShape(NewDim(0, 2, 1), NewDim(0, 7, 3), NewDim(0, 5, 40))
	assert.True(t, op.IsEqual(want), "got %v", op)
}

func TestOptimizeFusePartial(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 28), NewDim(0, 7, 4), NewDim(0, 3, 1))
	op := OptimizeShape(sh)
	want := NewShape(NewDim(0, 3, 1), NewDim(0, 35, 4), NewDim(0, 1, 140))
	assert.True(t, op.IsEqual(want), "got %v", op)
}

func TestOptimizePreserves(t *testing.T) {
	shapes := []Shape{
		NewShape(NewDim(0, 5, 21), NewDim(0, 7, 3), NewDim(5, 3, 1)),
		NewShape(NewDim(0, 5, 40), NewDim(0, 7, 3), NewDim(0, 2, 1)),
		NewShape(NewDim(0, 5, 28), NewDim(0, 7, 4), NewDim(0, 3, 1)),
		NewDenseShape(4, 5, 6),
		NewShape(NewDim(0, 10, 2)),
		NewShape(NewDim(2, 1, 7), NewDim(0, 6, 1)), // trivial dim folds into min
	}
	for _, sh := range shapes {
		op := OptimizeShape(sh)
		assert.Equal(t, sh.Len(), op.Len(), "Len of %v", sh)
		assert.Equal(t, sh.FlatMin(), op.FlatMin(), "FlatMin of %v", sh)
		assert.Equal(t, sh.FlatMax(), op.FlatMax(), "FlatMax of %v", sh)
		assert.Equal(t, sh.FlatExtent(), op.FlatExtent(), "FlatExtent of %v", sh)
		assert.Equal(t, sh.IsCompact(), op.IsCompact(), "IsCompact of %v", sh)
		assert.Equal(t, sh.IsOneToOne(), op.IsOneToOne(), "IsOneToOne of %v", sh)
	}
}

func TestOptimizeSameOffsets(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 28), NewDim(0, 7, 4), NewDim(0, 3, 1))
	op := OptimizeShape(sh)
	want := map[int]int{}
	ForEachIndex(sh, func(ix []int) { want[sh.OffsetIndex(ix)]++ })
	got := map[int]int{}
	ForEachIndex(op, func(ix []int) { got[op.OffsetIndex(ix)]++ })
	assert.Equal(t, want, got)
}
