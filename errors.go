// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import "errors"

var (
	// ErrOutOfRange is returned by Copy and Move when the destination
	// domain is not contained in the source's valid index range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrIncompatibleShape is returned by ConvertShapeTry when a
	// component required by the target pattern disagrees with the
	// source's runtime value.
	ErrIncompatibleShape = errors.New("incompatible shape")
)
