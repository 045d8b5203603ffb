// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import "sort"

// stride resolution: unresolved dimensions are packed as tightly as the
// already-known strides allow.  A candidate stride s is admissible for a
// dimension of extent e if, against every known dimension k, the s-strided
// span either nests entirely within one step of k (s*e <= |k.stride|) or
// steps entirely past k (s >= |k.stride|*k.extent).  Dimension minima are
// ignored here: spans are compared from a common origin.

// span is the occupied footprint of a dimension with a known stride.
type span struct {
	stride int // absolute
	extent int
}

// minFreeStride returns the smallest admissible stride >= 1 for a
// dimension of the given extent.  The minimum always lies at 1 or just
// past one of the known spans, so only those candidates are examined.
func minFreeStride(extent int, known []span) int {
	cands := make([]int, 0, len(known)+1)
	cands = append(cands, 1)
	for _, k := range known {
		cands = append(cands, k.stride*k.extent)
	}
	sort.Ints(cands)
	for _, s := range cands {
		if s < 1 {
			continue
		}
		ok := true
		for _, k := range known {
			if s*extent <= k.stride || s >= k.stride*k.extent {
				continue
			}
			ok = false
			break
		}
		if ok {
			return s
		}
	}
	return 1 // not reached: the largest candidate steps past everything
}

// Resolve assigns concrete strides to all unresolved dimensions, in
// place.  Dimensions of extent 0 get stride 1 (they never affect
// indexing).  The remaining unresolved dimensions are assigned one at a
// time: each round computes the smallest admissible stride for every
// pending dimension and commits the dimension with the overall smallest,
// breaking ties toward the lowest dimension index, so a fully unresolved
// shape comes out tightly packed with dimension 0 inner-most.
// Resolve is idempotent.
func (sh *Shape) Resolve() {
	var known []span
	var pending []int
	for i := range sh.Dims {
		d := &sh.Dims[i]
		if !d.IsResolved() && d.Extent == 0 {
			d.Stride = 1
		}
		if d.IsResolved() {
			e := d.Extent
			if e == Dynamic {
				e = 1
			}
			known = append(known, span{stride: absInt(d.Stride), extent: e})
		} else {
			pending = append(pending, i)
		}
	}
	for len(pending) > 0 {
		best := 0
		bestStride := 0
		for pi, di := range pending {
			s := minFreeStride(max(1, sh.Dims[di].Extent), known)
			if pi == 0 || s < bestStride {
				best = pi
				bestStride = s
			}
		}
		di := pending[best]
		sh.Dims[di].Stride = bestStride
		known = append(known, span{stride: bestStride, extent: sh.Dims[di].Extent})
		pending = append(pending[:best], pending[best+1:]...)
	}
}

// MakeCompact returns a shape with the same minima and extents whose
// strides are reassigned so the result is compact and one-to-one.
// Strides fixed by the dimension kind (dense 1, broadcast 0) are
// retained; all other strides are cleared and resolved afresh.
func MakeCompact(sh Shape) Shape {
	ns := sh.Clone()
	for i := range ns.Dims {
		if ns.Dims[i].Kind == StridedDim {
			ns.Dims[i].Stride = Dynamic
		}
	}
	ns.Resolve()
	return ns
}
