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
	"strings"

	"github.com/pkg/errors"
)

// LayoutType labels the semantic meaning of one axis of a Shape.
// It is a closed enumeration: every tag has exactly one single-character
// encoding, and ParseLayout/LayoutString are inverses over the full set.
type LayoutType uint8

const (
	// Unknown is the default tag for axes without semantic meaning attached.
	Unknown LayoutType = iota
	Batch
	Channel
	Depth
	Height
	Width
	Time
)

// layoutChars maps each LayoutType to its one-character encoding. The
// reverse table is derived from it, so the two can never fall out of sync.
var layoutChars = map[LayoutType]byte{
	Unknown: '?',
	Batch:   'N',
	Channel: 'C',
	Depth:   'D',
	Height:  'H',
	Width:   'W',
	Time:    'T',
}

var layoutFromChar = func() map[byte]LayoutType {
	m := make(map[byte]LayoutType, len(layoutChars))
	for l, c := range layoutChars {
		m[c] = l
	}
	return m
}()

var layoutNames = map[LayoutType]string{
	Unknown: "Unknown",
	Batch:   "Batch",
	Channel: "Channel",
	Depth:   "Depth",
	Height:  "Height",
	Width:   "Width",
	Time:    "Time",
}

// String implements fmt.Stringer.
func (l LayoutType) String() string {
	if name, found := layoutNames[l]; found {
		return name
	}
	return "InvalidLayoutType"
}

// Value returns the one-character encoding of the tag, e.g. Batch.Value() == 'N'.
func (l LayoutType) Value() byte {
	if c, found := layoutChars[l]; found {
		return c
	}
	return '?'
}

// LayoutFromValue converts a one-character encoding back to its tag.
// It fails with ErrInvalidLayout for a character outside the enumeration.
func LayoutFromValue(c byte) (LayoutType, error) {
	l, found := layoutFromChar[c]
	if !found {
		return Unknown, errors.Wrapf(ErrInvalidLayout, "unknown layout character %q", c)
	}
	return l, nil
}

// ParseLayout decodes a compact layout string, one character per axis
// (e.g. "NCHW"), into the corresponding tag sequence. It fails with
// ErrInvalidLayout on the first unrecognized character.
func ParseLayout(layout string) ([]LayoutType, error) {
	tags := make([]LayoutType, len(layout))
	for i := 0; i < len(layout); i++ {
		l, err := LayoutFromValue(layout[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "layout %q, axis %d", layout, i)
		}
		tags[i] = l
	}
	return tags, nil
}

// LayoutString encodes a tag sequence into its compact string form, the
// inverse of ParseLayout.
func LayoutString(layout []LayoutType) string {
	var sb strings.Builder
	sb.Grow(len(layout))
	for _, l := range layout {
		sb.WriteByte(l.Value())
	}
	return sb.String()
}
