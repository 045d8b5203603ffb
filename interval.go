// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package earray

import "fmt"

// Interval is a dimension without a stride: a half-open index interval
// [Min, Min+Extent).  It is the argument type for cropping and the result
// type of whole-dimension queries.
type Interval struct {

	// minimum index in the interval
	Min int

	// number of indexes in the interval
	Extent int
}

// NewInterval returns the interval [min, min+extent).
func NewInterval(min, extent int) Interval {
	return Interval{Min: min, Extent: extent}
}

// NewExtentInterval returns the interval [0, extent).
func NewExtentInterval(extent int) Interval {
	return Interval{Min: 0, Extent: extent}
}

// Max returns the maximum index in the interval, Min + Extent - 1.
func (iv Interval) Max() int {
	return iv.Min + iv.Extent - 1
}

// IsEmpty returns true if the interval contains no indexes.
func (iv Interval) IsEmpty() bool {
	return iv.Extent <= 0
}

// Contains returns true if Min <= i <= Max.
func (iv Interval) Contains(i int) bool {
	return i >= iv.Min && i <= iv.Max()
}

// ContainsInterval returns true if both endpoints of o lie within this
// interval.  An empty o is trivially contained.
func (iv Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return iv.Contains(o.Min) && iv.Contains(o.Max())
}

// Clamp returns i clamped to [Min, Max].
func (iv Interval) Clamp(i int) int {
	return max(min(i, iv.Max()), iv.Min)
}

// Intersect returns the largest interval contained in both iv and o.
// The result may be empty.
func (iv Interval) Intersect(o Interval) Interval {
	lo := max(iv.Min, o.Min)
	hi := min(iv.Max(), o.Max())
	return Interval{Min: lo, Extent: max(0, hi-lo+1)}
}

// String satisfies the fmt.Stringer interface
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Min, iv.Min+iv.Extent)
}
