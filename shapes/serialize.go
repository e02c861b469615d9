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
	"encoding/gob"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// GobSerialize the shape in binary format, layout tags included.
func (s Shape) GobSerialize(encoder *gob.Encoder) (err error) {
	enc := func(e any) {
		if err != nil {
			return
		}
		err = encoder.Encode(e)
		if err != nil {
			err = errors.Wrapf(err, "failed to serialize shape %s", s)
		}
	}
	enc(s.dims)
	enc(s.LayoutString())
	return
}

// GobDeserialize a Shape. The decoded dimensions and layout go through the
// usual construction validation, so a corrupted stream surfaces as
// ErrInvalidShape or ErrInvalidLayout.
func GobDeserialize(decoder *gob.Decoder) (s Shape, err error) {
	var dims []int
	var layout string
	dec := func(data any) {
		if err != nil {
			return
		}
		err = decoder.Decode(data)
		if err != nil {
			err = errors.Wrap(err, "failed to deserialize shape")
		}
	}
	dec(&dims)
	dec(&layout)
	if err != nil {
		return
	}
	return NewWithLayoutString(dims, layout)
}

// Parse is the inverse of Shape.String: it reads the display form
// "(d0, d1, ..., dn-1)", with "()" for the scalar shape. An optional "|"
// followed by the compact layout string attaches layout tags, e.g.
// "(32, 3, 224, 224)|NCHW"; without it every axis is tagged Unknown.
func Parse(text string) (Shape, error) {
	dimsPart := text
	layoutPart := ""
	if i := strings.IndexByte(text, '|'); i >= 0 {
		dimsPart, layoutPart = text[:i], text[i+1:]
	}
	if len(dimsPart) < 2 || dimsPart[0] != '(' || dimsPart[len(dimsPart)-1] != ')' {
		return Shape{}, errors.Wrapf(ErrInvalidShape, "malformed shape string %q", text)
	}
	inner := strings.TrimSpace(dimsPart[1 : len(dimsPart)-1])
	var dims []int
	if inner != "" {
		parts := strings.Split(inner, ",")
		dims = make([]int, 0, len(parts))
		for _, part := range parts {
			dim, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Shape{}, errors.Wrapf(ErrInvalidShape, "malformed dimension %q in %q", part, text)
			}
			dims = append(dims, dim)
		}
	}
	if layoutPart == "" {
		return New(dims...)
	}
	return NewWithLayoutString(dims, layoutPart)
}

// MarshalText implements encoding.TextMarshaler. Shapes with any layout tag
// attached render as "(2, 3)|NC"; otherwise as the plain display form.
func (s Shape) MarshalText() ([]byte, error) {
	text := s.String()
	for _, l := range s.layout {
		if l != Unknown {
			text += "|" + s.LayoutString()
			break
		}
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the forms
// produced by MarshalText.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
