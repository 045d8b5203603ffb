// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package earray provides multidimensional arrays built on an explicit shape
algebra.  A Shape is an ordered list of Dim descriptors, each carrying a
minimum index, an extent, and a stride, any of which may be left dynamic
and filled in later: unresolved strides are assigned by Resolve using a
deterministic auto-layout that packs dimensions as tightly as the known
strides allow.  Shapes map an n-dimensional index to a linear offset into
a flat storage slice, exactly as etensor shapes do, except that dimensions
here also carry minima and arbitrary (including broadcast and negative)
strides.

Per the emergent convention the first dimension is the inner-most one:
default traversal and auto-layout vary dimension 0 fastest, so a freshly
resolved shape has stride 1 on dimension 0.  Explicit loop orders are
available on the traversal functions, and shapes are pure values, so any
other convention is a Transpose away.

Array[T] owns its storage; ArrayView[T] borrows storage owned elsewhere.
Both flatten indexes through their Shape, support slicing and cropping via
IndexSpec arguments (At, All, Range), and interoperate with gonum matrices
and apache arrow tensors for the float64 case.
*/
package earray
