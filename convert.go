// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import (
	"fmt"

	"goki.dev/grr"
)

// ConvertShapeTry converts sh to the form described by pattern.
// Pattern components equal to Dynamic are free and take sh's runtime
// value; concrete pattern components are required, and an error wrapping
// ErrIncompatibleShape is returned when sh's value disagrees (a Dynamic
// value in sh satisfies any requirement).  Kind-implied strides of the
// pattern (dense 1, broadcast 0) are required like any other concrete
// component.  When the pattern rank exceeds sh's, the missing trailing
// dimensions of sh are taken as unit dims dim(0, 1, 0); a pattern of
// lower rank than sh is an error.  The result carries the pattern's
// kind tags.
func ConvertShapeTry(pattern, sh Shape) (Shape, error) {
	if len(sh.Dims) > len(pattern.Dims) {
		return Shape{}, fmt.Errorf("earray.ConvertShapeTry: %w: source rank %d exceeds target rank %d", ErrIncompatibleShape, len(sh.Dims), len(pattern.Dims))
	}
	out := pattern.Clone()
	for i := range out.Dims {
		sd := Dim{Min: 0, Extent: 1, Stride: 0}
		if i < len(sh.Dims) {
			sd = sh.Dims[i]
		}
		pd := &out.Dims[i]
		var err error
		if pd.Min, err = convertComp(pd.Min, sd.Min, "min", i); err != nil {
			return Shape{}, err
		}
		if pd.Extent, err = convertComp(pd.Extent, sd.Extent, "extent", i); err != nil {
			return Shape{}, err
		}
		if pd.Stride, err = convertComp(pd.Stride, sd.Stride, "stride", i); err != nil {
			return Shape{}, err
		}
	}
	return out, nil
}

// convertComp merges one required pattern component with the source's
// runtime value: Dynamic on either side defers to the other.
func convertComp(want, have int, comp string, dim int) (int, error) {
	if want == Dynamic {
		return have, nil
	}
	if have == Dynamic || have == want {
		return want, nil
	}
	return 0, fmt.Errorf("earray.ConvertShapeTry: %w: dimension %d %s is %d, target requires %d", ErrIncompatibleShape, dim, comp, have, want)
}

// ConvertShape is ConvertShapeTry with any error logged, returning the
// zero shape on failure.
func ConvertShape(pattern, sh Shape) Shape {
	return grr.Log1(ConvertShapeTry(pattern, sh))
}

// IsCompatible returns true if sh satisfies every concrete component of
// pattern, i.e. ConvertShapeTry would succeed.
func IsCompatible(pattern, sh Shape) bool {
	_, err := ConvertShapeTry(pattern, sh)
	return err == nil
}
