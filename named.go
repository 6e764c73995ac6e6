// seehuhn.de/go/hexcolor - packed RGBA color values for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hexcolor

import (
	"strings"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

var (
	namedOnce  sync.Once
	namedIndex map[string]uint32
)

func loadNamed() {
	namedIndex = make(map[string]uint32, len(colornames.Map))
	for name, c := range colornames.Map {
		namedIndex[FoldName(name)] = Compose8bitRGBA(
			int(c.R), int(c.G), int(c.B), float64(c.A)/255)
	}
}

// Named returns the packed RGBA value of one of the SVG 1.1 color keywords,
// for example "skyblue" or "Dark Slate Gray".
//
// Names are compared using [FoldName].  The second return value is false if
// the name is not known.
func Named(name string) (uint32, bool) {
	namedOnce.Do(loadNamed)
	packed, ok := namedIndex[FoldName(name)]
	return packed, ok
}

// Names returns the color keywords understood by [Named], in alphabetical
// order.
func Names() []string {
	names := slices.Clone(colornames.Names)
	slices.Sort(names)
	return names
}

// FoldName returns the canonical form of a color name: the name is case
// folded, and all spaces, hyphens and underscores are removed.
func FoldName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
	return cases.Fold().String(name)
}

// Resolve interprets s either as a color name or as a hex color, and
// returns the corresponding packed RGBA value.
//
// Names are tried first, so that a bare name which happens to consist of
// hex digits still refers to the named color.  Strings starting with "#"
// or "0x" are only ever interpreted as hex colors.
func Resolve(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if !hasHexPrefix(s) {
		if packed, ok := Named(s); ok {
			return packed, nil
		}
	}

	packed, err := ParseHex(s)
	if err != nil && !hasHexPrefix(s) {
		return 0, &SyntaxError{Input: s, Err: ErrUnknownColor}
	}
	return packed, err
}
