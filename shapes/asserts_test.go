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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckDims(t *testing.T) {
	shape := Make(32, 3, 224, 224)
	require.NoError(t, shape.CheckDims(32, 3, 224, 224))
	require.NoError(t, shape.CheckDims(32, UncheckedAxis, 224, UncheckedAxis))
	require.Error(t, shape.CheckDims(32, 1, 224, 224))
	require.Error(t, shape.CheckDims(32, 3, 224))

	require.NotPanics(t, func() { shape.AssertDims(32, -1, -1, -1) })
	require.Panics(t, func() { shape.AssertDims(16, -1, -1, -1) })
}

func TestCheckRank(t *testing.T) {
	shape := Make(32, 10)
	require.NoError(t, shape.CheckRank(2))
	require.Error(t, shape.CheckRank(3))
	require.NoError(t, Scalar().CheckRank(0))

	require.NotPanics(t, func() { shape.AssertRank(2) })
	require.Panics(t, func() { shape.AssertRank(1) })
}

func TestHasShape(t *testing.T) {
	// Shape implements HasShape itself, so the package-level helpers accept
	// it directly.
	shape := Make(8, 16)
	require.NoError(t, CheckDims(shape, 8, 16))
	require.NoError(t, CheckRank(shape, 2))
	require.NotPanics(t, func() { AssertDims(shape, 8, UncheckedAxis) })
	require.Panics(t, func() { AssertRank(shape, 3) })
}
