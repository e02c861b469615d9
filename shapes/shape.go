/*
 *	Copyright 2024 The ndshape Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package shapes defines Shape, an immutable, axis-labeled description of a
// tensor's dimensionality, and LayoutType, the closed enumeration of per-axis
// semantic tags (batch, channel, height, width, ...).
//
// A Shape pairs a sequence of dimension sizes with a parallel sequence of
// layout tags. A dimension of -1 means the size of that axis is unknown (not
// yet bound). Shapes are constructed once and only queried or derived
// afterwards: every transformation (Slice, Concatenate, FilterByLayout,
// MapAxes) allocates a fresh Shape and leaves the receiver untouched, so a
// Shape can be shared freely across goroutines without locking.
//
// ## Glossary
//
//   - Rank: number of axes of a tensor.
//   - Axis: the index of a dimension on a multidimensional tensor. We refer
//     to a dimension index as "axis" (plural axes), and its size as its
//     dimension.
//   - Layout: the semantic meaning attached to an axis, e.g. "NCHW" for a
//     batch of channel-first images. See LayoutType.
//   - Scalar: a shape with no axes (rank 0), describing a single value.
//
// Example: a batch of 32 RGB images of 224x224 pixels in channel-first
// order has shape `(32, 3, 224, 224)` with layout "NCHW". It could be
// created with
//
//	shape, err := shapes.NewWithLayoutString([]int{32, 3, 224, 224}, "NCHW")
//
// or, panicking instead of returning an error,
//
//	shape := shapes.MakeWithLayout([]int{32, 3, 224, 224}, "NCHW")
//
// Failures are caller precondition violations and wrap one of the sentinel
// errors in errors.go; see CheckDims and AssertDims for validating shapes of
// operands before handing them to a compute layer.
package shapes

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape describes the dimensionality of a tensor: one dimension size plus one
// LayoutType tag per axis. A dimension of -1 means unknown.
//
// The zero value is a valid scalar (rank 0) shape.
//
// Use New, NewWithLayout, NewWithLayoutString or FromAxes to create one. A
// Shape is immutable: no method ever mutates the receiver.
type Shape struct {
	dims   []int
	layout []LayoutType
}

// Axis is one (dimension, layout) element of a Shape, as produced by
// Shape.Axes and consumed by FromAxes and MapAxes.
type Axis struct {
	Dim    int
	Layout LayoutType
}

// newShape is the single validating constructor every public constructor and
// derivation funnels through. It takes ownership of both slices.
func newShape(dims []int, layout []LayoutType) (Shape, error) {
	if len(dims) != len(layout) {
		return Shape{}, errors.Wrapf(ErrInvalidShape,
			"got %d dimensions but %d layout tags", len(dims), len(layout))
	}
	for axis, dim := range dims {
		if dim < -1 {
			return Shape{}, errors.Wrapf(ErrInvalidShape,
				"dimension %d of axis %d must be >= -1", dim, axis)
		}
	}
	return Shape{dims: dims, layout: layout}, nil
}

// New returns a Shape with the given dimensions and every axis tagged
// Unknown. Dimensions must be >= -1, where -1 means the axis size is
// unknown; it fails with ErrInvalidShape otherwise.
func New(dims ...int) (Shape, error) {
	return newShape(slices.Clone(dims), make([]LayoutType, len(dims)))
}

// NewWithLayout returns a Shape with the given dimensions and per-axis
// layout tags. The two slices must have the same length; it fails with
// ErrInvalidShape otherwise, or for any dimension < -1.
func NewWithLayout(dims []int, layout []LayoutType) (Shape, error) {
	return newShape(slices.Clone(dims), slices.Clone(layout))
}

// NewWithLayoutString returns a Shape with the given dimensions and the
// layout decoded from its compact string form, one character per axis (e.g.
// "NCHW"). It fails with ErrInvalidLayout on an unrecognized character and
// with ErrInvalidShape if the string length differs from len(dims).
func NewWithLayoutString(dims []int, layout string) (Shape, error) {
	tags, err := ParseLayout(layout)
	if err != nil {
		return Shape{}, err
	}
	return newShape(slices.Clone(dims), tags)
}

// FromAxes returns a Shape assembled from (dimension, layout) pairs in axis
// order.
func FromAxes(axes ...Axis) (Shape, error) {
	dims := make([]int, len(axes))
	layout := make([]LayoutType, len(axes))
	for i, a := range axes {
		dims[i] = a.Dim
		layout[i] = a.Layout
	}
	return newShape(dims, layout)
}

// Make is like New but panics on an invalid dimension. The panic value is
// the error New would have returned, so exceptions.TryCatch recovers it with
// its ErrInvalidShape cause intact.
func Make(dims ...int) Shape {
	s, err := New(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// MakeWithLayout is like NewWithLayoutString but panics on failure.
func MakeWithLayout(dims []int, layout string) Shape {
	s, err := NewWithLayoutString(dims, layout)
	if err != nil {
		panic(err)
	}
	return s
}

// Scalar returns the rank-0 shape.
func Scalar() Shape { return Shape{} }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.dims) }

// IsScalar returns whether the shape has no axes (rank 0).
func (s Shape) IsScalar() bool { return s.Rank() == 0 }

// IsMatrix returns whether the shape has exactly two axes.
func (s Shape) IsMatrix() bool { return s.Rank() == 2 }

// Dimensions returns a copy of the dimension sizes, one per axis.
func (s Shape) Dimensions() []int { return slices.Clone(s.dims) }

// Layout returns a copy of the per-axis layout tags.
func (s Shape) Layout() []LayoutType {
	if s.layout == nil {
		// Zero-value scalar.
		return []LayoutType{}
	}
	return slices.Clone(s.layout)
}

// LayoutString returns the compact string encoding of the layout, one
// character per axis.
func (s Shape) LayoutString() string { return LayoutString(s.layout) }

// Get returns the dimension size at the given axis. It fails with
// ErrIndexOutOfRange for an axis outside [0, rank).
func (s Shape) Get(axis int) (int, error) {
	if axis < 0 || axis >= s.Rank() {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "axis %d of shape %s (rank %d)", axis, s, s.Rank())
	}
	return s.dims[axis], nil
}

// Dim returns the dimension of the given axis. axis can take negative
// numbers, in which case it counts from the end -- so axis=-1 refers to the
// last axis. It panics for an out-of-bounds axis, with an ErrIndexOutOfRange
// cause; use Get for the error-returning form.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		panic(errors.Wrapf(ErrIndexOutOfRange, "Shape.Dim(%d) for rank %d (shape=%s)", axis, s.Rank(), s))
	}
	return s.dims[adjustedAxis]
}

// Head returns the dimension of the first axis. It fails with
// ErrIndexOutOfRange on a scalar shape.
func (s Shape) Head() (int, error) {
	if s.Rank() == 0 {
		return 0, errors.Wrap(ErrIndexOutOfRange, "cannot take the head of a scalar shape")
	}
	return s.dims[0], nil
}

// Size returns the product of the dimensions at the given axes, or over all
// axes when called with none. If any selected axis is unknown (-1) the
// product is -1. It fails with ErrIndexOutOfRange for an out-of-range axis.
//
// A scalar shape has size 1.
func (s Shape) Size(axes ...int) (int, error) {
	if len(axes) == 0 {
		size := 1
		for _, dim := range s.dims {
			if dim == -1 {
				return -1, nil
			}
			size *= dim
		}
		return size, nil
	}
	size := 1
	for _, axis := range axes {
		if axis < 0 || axis >= s.Rank() {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "axis %d of shape %s (rank %d)", axis, s, s.Rank())
		}
		if s.dims[axis] == -1 {
			return -1, nil
		}
		size *= s.dims[axis]
	}
	return size, nil
}

// UnknownCount returns the number of axes whose dimension is unknown (-1).
func (s Shape) UnknownCount() int {
	count := 0
	for _, dim := range s.dims {
		if dim == -1 {
			count++
		}
	}
	return count
}

// LeadingOnes returns the number of consecutive axes of dimension 1 at the
// front of the shape. Shape (1, 1, 10) has 2 leading ones; (10, 1, 1) and
// the scalar shape have 0.
func (s Shape) LeadingOnes() int {
	for i, dim := range s.dims {
		if dim != 1 {
			return i
		}
	}
	return 0
}

// TrailingOnes returns the number of consecutive axes of dimension 1 at the
// back of the shape. Shape (10, 1, 1) has 2 trailing ones.
func (s Shape) TrailingOnes() int {
	for i := 0; i < len(s.dims); i++ {
		if s.dims[len(s.dims)-i-1] != 1 {
			return i
		}
	}
	return 0
}

// Rows returns the dimension of axis 0. It fails with ErrNotAMatrix unless
// rank is 2.
func (s Shape) Rows() (int, error) {
	if !s.IsMatrix() {
		return 0, errors.Wrapf(ErrNotAMatrix, "shape %s has rank %d", s, s.Rank())
	}
	return s.dims[0], nil
}

// Columns returns the dimension of axis 1. It fails with ErrNotAMatrix
// unless rank is 2.
func (s Shape) Columns() (int, error) {
	if !s.IsMatrix() {
		return 0, errors.Wrapf(ErrNotAMatrix, "shape %s has rank %d", s, s.Rank())
	}
	return s.dims[1], nil
}

// IsSquare returns whether the matrix has the same number of rows and
// columns. It fails with ErrNotAMatrix unless rank is 2.
func (s Shape) IsSquare() (bool, error) {
	if !s.IsMatrix() {
		return false, errors.Wrapf(ErrNotAMatrix, "shape %s has rank %d", s, s.Rank())
	}
	return s.dims[0] == s.dims[1], nil
}

// IsColumnVector returns whether the shape is a matrix with a single column
// and more than one element. The 1x1 matrix is excluded: it fails the
// size > 1 guard, so it is neither a column nor a row vector. It fails with
// ErrNotAMatrix unless rank is 2.
func (s Shape) IsColumnVector() (bool, error) {
	if !s.IsMatrix() {
		return false, errors.Wrapf(ErrNotAMatrix, "shape %s has rank %d", s, s.Rank())
	}
	size, _ := s.Size()
	return s.dims[1] == 1 && size > 1, nil
}

// IsRowVector returns whether the shape is a matrix with a single row and
// more than one element. See IsColumnVector for the 1x1 case.
func (s Shape) IsRowVector() (bool, error) {
	if !s.IsMatrix() {
		return false, errors.Wrapf(ErrNotAMatrix, "shape %s has rank %d", s, s.Rank())
	}
	size, _ := s.Size()
	return s.dims[0] == 1 && size > 1, nil
}

// IsVectorMatrix returns whether the shape is a column or row vector. It
// fails with ErrNotAMatrix unless rank is 2.
func (s Shape) IsVectorMatrix() (bool, error) {
	column, err := s.IsColumnVector()
	if err != nil {
		return false, err
	}
	row, _ := s.IsRowVector()
	return column || row, nil
}

// Slice returns a new Shape over the axes [begin, end), layout tags
// included. It fails with ErrIndexOutOfRange if begin or end fall outside
// [0, rank] or begin > end.
func (s Shape) Slice(begin, end int) (Shape, error) {
	if begin < 0 || end > s.Rank() || begin > end {
		return Shape{}, errors.Wrapf(ErrIndexOutOfRange,
			"slice [%d, %d) of shape %s (rank %d)", begin, end, s, s.Rank())
	}
	return Shape{
		dims:   slices.Clone(s.dims[begin:end]),
		layout: slices.Clone(s.layout[begin:end]),
	}, nil
}

// SliceFrom returns a new Shape over the axes [begin, rank).
func (s Shape) SliceFrom(begin int) (Shape, error) {
	return s.Slice(begin, s.Rank())
}

// Concatenate returns a new Shape whose axes are the receiver's followed by
// other's, layout tags included. Order matters: it is not commutative.
func (s Shape) Concatenate(other Shape) Shape {
	dims := make([]int, 0, len(s.dims)+len(other.dims))
	dims = append(append(dims, s.dims...), other.dims...)
	layout := make([]LayoutType, 0, len(s.layout)+len(other.layout))
	layout = append(append(layout, s.layout...), other.layout...)
	return Shape{dims: dims, layout: layout}
}

// FilterByLayout returns a new Shape keeping only the axes whose layout tag
// satisfies keep, preserving relative order.
func (s Shape) FilterByLayout(keep func(LayoutType) bool) Shape {
	var dims []int
	var layout []LayoutType
	for axis := range s.Axes() {
		if keep(axis.Layout) {
			dims = append(dims, axis.Dim)
			layout = append(layout, axis.Layout)
		}
	}
	if dims == nil {
		return Shape{}
	}
	return Shape{dims: dims, layout: layout}
}

// MapAxes returns a new Shape where each axis is replaced by fn(axis),
// preserving order and count. The result goes back through construction
// validation, so a transform producing a dimension < -1 fails with
// ErrInvalidShape.
func (s Shape) MapAxes(fn func(Axis) Axis) (Shape, error) {
	dims := make([]int, s.Rank())
	layout := make([]LayoutType, s.Rank())
	i := 0
	for axis := range s.Axes() {
		mapped := fn(axis)
		dims[i] = mapped.Dim
		layout[i] = mapped.Layout
		i++
	}
	return newShape(dims, layout)
}

// Equal compares two shapes for equality of dimensions. Layout tags are not
// part of equality: (2, 3) tagged "NC" equals (2, 3) tagged "??".
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s.dims, other.dims)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{dims: slices.Clone(s.dims), layout: slices.Clone(s.layout)}
}

// Shape returns the shape itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// String implements fmt.Stringer. The scalar shape renders as "()", shape
// 2x3 as "(2, 3)".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, dim := range s.dims {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(')')
	return sb.String()
}
