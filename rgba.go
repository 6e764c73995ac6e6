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
	stdcolor "image/color"
	"strconv"
)

// RGBA is a color given by normalized, non-premultiplied channel values.
// All four fields are in the range [0, 1].
//
// RGBA implements the [image/color.Color] interface.
type RGBA struct {
	R, G, B, A float64
}

var _ stdcolor.Color = RGBA{}

// RGBA returns the alpha-premultiplied 16-bit channel values.
// This implements the [image/color.Color] interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = toUint16(clamp01(c.R) * alpha)
	g = toUint16(clamp01(c.G) * alpha)
	b = toUint16(clamp01(c.B) * alpha)
	a = toUint16(alpha)
	return r, g, b, a
}

// NRGBA converts c to an 8-bit, non-premultiplied standard library color.
// The conversion uses the same rules as [RGBA.Pack].
func (c RGBA) NRGBA() stdcolor.NRGBA {
	packed := c.Pack()
	return stdcolor.NRGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// Pack returns the packed 32-bit RGBA value of c.
// Out-of-range channel values are clamped.
func (c RGBA) Pack() uint32 {
	packed, _ := ToRGBA(RGB, c.R, c.G, c.B, c.A)
	return packed
}

// String returns the color in the form "#rrggbbaa".
func (c RGBA) String() string {
	return FormatHex(c.Pack())
}

// GoString implements the [fmt.GoStringer] interface.
func (c RGBA) GoString() string {
	return "hexcolor.RGBA{R: " + fmtFloat(c.R) +
		", G: " + fmtFloat(c.G) +
		", B: " + fmtFloat(c.B) +
		", A: " + fmtFloat(c.A) + "}"
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
