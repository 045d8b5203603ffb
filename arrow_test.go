// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrowRoundTrip(t *testing.T) {
	ar := NewArrayOfRank[float64](3, 4)
	n := 0.0
	ForAllIndices(ar.Shape, func(ix ...int) {
		ar.Set(n, ix...)
		n++
	})
	arw := ToArrow(ar.Ref(), []string{"x", "y"})
	assert.Equal(t, []int64{3, 4}, arw.Shape())

	back := FromArrow(arw, true)
	assert.Equal(t, ar.Extents(), back.Extents())
	assert.Equal(t, ar.Strides(), back.Strides())
	assert.True(t, Equal(ar.Ref(), back.Ref()))

	// shared (non-copy) values alias the arrow storage
	shared := FromArrow(arw, false)
	assert.True(t, Equal(ar.Ref(), shared.Ref()))
}
