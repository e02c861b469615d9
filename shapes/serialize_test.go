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
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

func TestGobRoundTrip(t *testing.T) {
	for _, shape := range []Shape{
		Scalar(),
		Make(2, 3, 4),
		Make(2, -1, 4),
		MakeWithLayout([]int{32, 3, 224, 224}, "NCHW"),
	} {
		var buf bytes.Buffer
		require.NoError(t, shape.GobSerialize(gob.NewEncoder(&buf)))
		decoded := must.M1(GobDeserialize(gob.NewDecoder(&buf)))
		require.True(t, shape.Equal(decoded), "shape %s did not round-trip", shape)
		require.Equal(t, shape.LayoutString(), decoded.LayoutString())
	}
}

func TestParse(t *testing.T) {
	require.True(t, must.M1(Parse("()")).IsScalar())
	require.True(t, must.M1(Parse("(2, 3)")).Equal(Make(2, 3)))
	require.True(t, must.M1(Parse("(2,3)")).Equal(Make(2, 3)))
	require.True(t, must.M1(Parse("(2, -1, 4)")).Equal(Make(2, -1, 4)))

	tagged := must.M1(Parse("(32, 3, 224, 224)|NCHW"))
	require.True(t, tagged.Equal(Make(32, 3, 224, 224)))
	require.Equal(t, "NCHW", tagged.LayoutString())

	for _, text := range []string{"", "2, 3", "(2, 3", "(2, x)", "(2, -3)"} {
		_, err := Parse(text)
		require.ErrorIs(t, err, ErrInvalidShape, "Parse(%q)", text)
	}
	_, err := Parse("(2, 3)|NX")
	require.ErrorIs(t, err, ErrInvalidLayout)
	_, err = Parse("(2, 3)|NCH")
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestTextMarshaling(t *testing.T) {
	plain := Make(2, 3)
	require.Equal(t, "(2, 3)", string(must.M1(plain.MarshalText())))

	tagged := MakeWithLayout([]int{32, 10}, "NT")
	require.Equal(t, "(32, 10)|NT", string(must.M1(tagged.MarshalText())))

	var decoded Shape
	require.NoError(t, decoded.UnmarshalText(must.M1(tagged.MarshalText())))
	require.True(t, decoded.Equal(tagged))
	require.Equal(t, "NT", decoded.LayoutString())

	require.ErrorIs(t, decoded.UnmarshalText([]byte("oops")), ErrInvalidShape)
}
