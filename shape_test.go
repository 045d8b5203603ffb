// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeOffset1D(t *testing.T) {
	sh := NewShape(NewDim(0, 10, 2))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 2*i, sh.Offset(i))
	}
	assert.Equal(t, 10, sh.Len())
	assert.Equal(t, 0, sh.FlatMin())
	assert.Equal(t, 18, sh.FlatMax())
	assert.Equal(t, 19, sh.FlatExtent())
	assert.True(t, sh.IsOneToOne())
	assert.False(t, sh.IsCompact())
}

func TestShapeRank0(t *testing.T) {
	sh := NewShape()
	assert.Equal(t, 0, sh.NumDims())
	assert.Equal(t, 1, sh.Len())
	assert.Equal(t, 0, sh.Offset())
	assert.Equal(t, 0, sh.FlatMin())
	assert.Equal(t, 0, sh.FlatMax())
	assert.Equal(t, 1, sh.FlatExtent())
	assert.True(t, sh.IsCompact())
	assert.True(t, sh.IsOneToOne())
}

func TestShapeDense(t *testing.T) {
	sh := NewDenseShape(5, 10)
	assert.Equal(t, []int{1, 5}, sh.Strides())
	assert.Equal(t, 50, sh.Len())
	assert.Equal(t, 50, sh.FlatExtent())
	assert.True(t, sh.IsCompact())
	assert.True(t, sh.IsOneToOne())
	assert.Equal(t, 0, sh.Offset(0, 0))
	assert.Equal(t, 1, sh.Offset(1, 0))
	assert.Equal(t, 5, sh.Offset(0, 1))
	assert.Equal(t, 49, sh.Offset(4, 9))
}

func TestShapeIsInRange(t *testing.T) {
	sh := NewShape(NewDim(3, 5, 1), NewDim(1, 4, 5))
	assert.True(t, sh.IsInRange(3, 1))
	assert.True(t, sh.IsInRange(7, 4))
	assert.False(t, sh.IsInRange(2, 1))
	assert.False(t, sh.IsInRange(3, 5))
	assert.False(t, sh.IsInRange(3))    // wrong rank
	assert.False(t, sh.IsInRange(3, 1, 0))

	bc := NewShape(NewBroadcastDim(), NewDim(0, 4, 1))
	assert.True(t, bc.IsInRange(-50, 2))
	assert.False(t, bc.IsInRange(0, 4))
}

func TestShapeContainsShape(t *testing.T) {
	src := NewDenseShape(10, 20)
	dst := NewShape(NewDim(1, 9, 1), NewDim(1, 19, 10))
	assert.True(t, src.ContainsShape(dst))
	shifted := NewShape(NewDim(1, 10, 1), NewDim(1, 20, 10))
	assert.False(t, src.ContainsShape(shifted))
	assert.False(t, src.ContainsShape(NewDenseShape(10)))

	assert.True(t, src.ContainsIntervals(NewInterval(1, 9), NewInterval(1, 19)))
	assert.False(t, src.ContainsIntervals(NewInterval(1, 10), NewInterval(1, 19)))
}

func TestShapeEqualClone(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 21), NewDim(0, 7, 3), NewDim(5, 3, 1))
	cp := sh.Clone()
	assert.True(t, sh.IsEqual(cp))
	cp.Dims[0].Extent = 6
	assert.False(t, sh.IsEqual(cp))
	assert.Equal(t, 5, sh.Dims[0].Extent) // clone is deep
}

func TestShapeSizeVsFlatExtent(t *testing.T) {
	shapes := []Shape{
		NewDenseShape(4, 5, 6),
		NewShape(NewDim(0, 10, 2)),
		NewShape(NewDim(0, 5, 21), NewDim(0, 7, 3), NewDim(5, 3, 1)),
		NewShape(NewDim(0, 5, 28), NewDim(0, 10, 3)),
		NewShape(NewDim(3, 5, 8), NewDim(1, 4, 1)),
	}
	for _, sh := range shapes {
		assert.LessOrEqual(t, sh.Len(), sh.FlatExtent(), "shape %v", sh)
	}
}

func TestShapeCompactOneToOne(t *testing.T) {
	// strided: injective but gappy
	sh := NewShape(NewDim(0, 10, 2))
	assert.True(t, sh.IsOneToOne())
	assert.False(t, sh.IsCompact())

	// overlapping: compact but not injective
	sh = NewShape(NewDim(0, 4, 1), NewDim(0, 2, 2))
	assert.True(t, sh.IsCompact())
	assert.False(t, sh.IsOneToOne())

	// broadcast: never one-to-one
	sh = NewShape(NewDim(0, 3, 1), NewBroadcastDim())
	assert.False(t, sh.IsOneToOne())
	assert.True(t, sh.IsCompact())
}

func TestShapeIndexInverse(t *testing.T) {
	sh := NewDenseShape(4, 5, 6)
	ForEachIndex(sh, func(ix []int) {
		got := sh.Index(sh.OffsetIndex(ix))
		if !EqualInts(got, ix) {
			t.Fatalf("Index(%d) = %v != %v", sh.OffsetIndex(ix), got, ix)
		}
	})
}

func TestShapeString(t *testing.T) {
	sh := NewShape(NewDim(0, 5, 1), NewExtentDim(3))
	assert.Equal(t, "shape(dim(0, 5, 1), dim(0, 3, *))", sh.String())
}
