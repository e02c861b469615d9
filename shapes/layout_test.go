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

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

var allLayoutTypes = []LayoutType{Unknown, Batch, Channel, Depth, Height, Width, Time}

func TestLayoutRoundTrip(t *testing.T) {
	// Every tag in the enumeration must survive encoding to its character
	// and back.
	for _, l := range allLayoutTypes {
		decoded := must.M1(LayoutFromValue(l.Value()))
		require.Equal(t, l, decoded, "layout %s did not round-trip through %q", l, l.Value())
	}

	encoded := LayoutString(allLayoutTypes)
	require.Equal(t, "?NCDHWT", encoded)
	require.Equal(t, allLayoutTypes, must.M1(ParseLayout(encoded)))
}

func TestParseLayout(t *testing.T) {
	require.Equal(t, []LayoutType{Batch, Channel, Height, Width}, must.M1(ParseLayout("NCHW")))
	require.Empty(t, must.M1(ParseLayout("")))

	_, err := ParseLayout("NCXW")
	require.ErrorIs(t, err, ErrInvalidLayout)
	_, err = LayoutFromValue('x')
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestLayoutString(t *testing.T) {
	require.Equal(t, "Batch", Batch.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "InvalidLayoutType", LayoutType(200).String())
}
