package shapes

import "iter"

// Axes iterates over the (dimension, layout) pairs of the shape in axis
// order. The sequence is lazy, finite and restartable: ranging over it a
// second time yields the same axes again.
//
// FilterByLayout and MapAxes are built on top of it, and callers can use it
// directly:
//
//	for axis := range shape.Axes() {
//		if axis.Layout == shapes.Batch {
//			batchSize = axis.Dim
//		}
//	}
func (s Shape) Axes() iter.Seq[Axis] {
	return func(yield func(Axis) bool) {
		for i, dim := range s.dims {
			if !yield(Axis{Dim: dim, Layout: s.layout[i]}) {
				return // Consumer requested to stop iteration.
			}
		}
	}
}
