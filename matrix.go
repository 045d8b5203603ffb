// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"fmt"

	"goki.dev/grr"
	"gonum.org/v1/gonum/mat"
)

// Matrix adapts a rank 2 float64 view to the gonum mat.Matrix
// interface.  gonum row index i maps to dimension 0 and column index j
// to dimension 1, shifted by the dimension minima so gonum's 0-based
// indexes cover the whole domain.
type Matrix struct {
	View ArrayView[float64]
}

// NewMatrix returns a gonum matrix adapter for the given view, which
// must have rank 2: logs an error and returns nil otherwise.
func NewMatrix(vw ArrayView[float64]) *Matrix {
	if vw.NumDims() != 2 {
		grr.Log(fmt.Errorf("earray.NewMatrix: gonum Matrix requires rank 2, got %d", vw.NumDims()))
		return nil
	}
	return &Matrix{View: vw}
}

// Dims is the gonum/mat.Matrix interface method returning the matrix
// dimensionality.
func (m *Matrix) Dims() (r, c int) {
	return m.View.Dim(0).Extent, m.View.Dim(1).Extent
}

// At is the gonum/mat.Matrix interface method returning the element at
// the given 0-based row, column position.
func (m *Matrix) At(i, j int) float64 {
	return m.View.Value(m.View.Dim(0).Min+i, m.View.Dim(1).Min+j)
}

// T is the gonum/mat.Matrix transpose method.  It performs an implicit
// transpose by returning the receiver inside a Transpose.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
