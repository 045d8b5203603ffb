// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import "sort"

// OptimizeShape returns an equivalent shape with the fewest possible
// index-varying dimensions: the same offsets with the same
// multiplicities, but with contiguously nested dimensions fused into
// one.  Extent-1 dimensions contribute only a constant, which is folded
// into the leading output dimension's minimum when divisible by its
// stride and otherwise carried by a unit dimension; rank is preserved by
// trailing unit dimensions.  Kind tags are dropped from the fused
// dimensions; broadcast dimensions are carried over unchanged, after the
// fused ones.  FlatMin, FlatMax, Len, FlatExtent, IsCompact and
// IsOneToOne are all preserved.  Only valid for resolved shapes.
func OptimizeShape(sh Shape) Shape {
	rank := len(sh.Dims)
	work := make([]Dim, 0, rank)
	var bcast []Dim
	offset := 0
	for _, d := range sh.Dims {
		switch {
		case d.Kind == BroadcastDim || d.Extent == Dynamic:
			bcast = append(bcast, d)
		case d.Extent == 1:
			offset += d.Stride * d.Min
		default:
			d.Kind = StridedDim
			work = append(work, d)
		}
	}
	sort.SliceStable(work, func(i, j int) bool {
		return absInt(work[i].Stride) < absInt(work[j].Stride)
	})

	// fuse d into its predecessor p when d strides exactly one p-span:
	// the combined offsets form one contiguous run of p.Stride steps
	fused := work[:0]
	for _, d := range work {
		if n := len(fused); n > 0 {
			p := fused[n-1]
			if p.Stride != 0 && d.Stride == p.Stride*p.Extent {
				fused[n-1] = Dim{
					Min:    p.Min + p.Extent*d.Min,
					Extent: p.Extent * d.Extent,
					Stride: p.Stride,
				}
				continue
			}
		}
		fused = append(fused, d)
	}

	if offset != 0 && len(fused) > 0 && fused[0].Stride != 0 && offset%fused[0].Stride == 0 {
		fused[0].Min += offset / fused[0].Stride
		offset = 0
	}

	pad := 1
	if n := len(fused); n > 0 {
		pad = absInt(fused[n-1].Stride) * fused[n-1].Extent
	}

	out := make([]Dim, 0, rank)
	out = append(out, fused...)
	out = append(out, bcast...)
	for len(out) < rank {
		if offset != 0 {
			// non-foldable residual constant rides on a unit dimension
			out = append(out, Dim{Min: offset, Extent: 1, Stride: 1})
			offset = 0
			continue
		}
		out = append(out, Dim{Min: 0, Extent: 1, Stride: pad})
	}
	return Shape{Dims: out}
}
