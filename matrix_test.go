// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	ar := NewArrayOfRank[float64](3, 4)
	ForAllIndices(ar.Shape, func(ix ...int) {
		ar.Set(float64(10*ix[0]+ix[1]), ix...)
	})
	m := NewMatrix(ar.Ref())
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 12.0, m.At(1, 2))
	assert.Equal(t, 12.0, m.T().At(2, 1))

	var sum float64
	ForAllIndices(ar.Shape, func(ix ...int) { sum += ar.Value(ix...) })
	assert.Equal(t, sum, mat.Sum(m))
}

func TestMatrixNonZeroMin(t *testing.T) {
	sh := NewShape(NewDim(2, 2, 1), NewDim(1, 3, 2))
	ar := NewArrayFill(sh, 1.0)
	m := NewMatrix(ar.Ref())
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	// gonum 0-based indexes are shifted by the minima
	assert.Equal(t, ar.Value(2, 1), m.At(0, 0))
}

func TestMatrixBadRank(t *testing.T) {
	ar := NewArrayOfRank[float64](5)
	assert.Nil(t, NewMatrix(ar.Ref()))
}
