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

package shapes

import "github.com/pkg/errors"

// Errors reported by this package. Every failure is a caller precondition
// violation wrapping exactly one of these sentinels, so callers can
// distinguish them with errors.Is. Nothing is retried or coerced internally.
var (
	// ErrInvalidShape indicates an axis dimension below -1 or a
	// dimensions/layout length mismatch at construction time.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidLayout indicates an unrecognized layout character while
	// decoding a compact layout string.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrIndexOutOfRange indicates an axis index outside [0, rank).
	ErrIndexOutOfRange = errors.New("axis index out of range")

	// ErrNotAMatrix indicates a matrix-only query on a shape whose rank
	// is not 2.
	ErrNotAMatrix = errors.New("not a matrix")
)
