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

// Model identifies the structure of a color's component list.
type Model int

// These are the color-space models known to this package.  Only RGB and
// Monochrome colors can be converted to packed RGBA values.
const (
	Unknown Model = iota
	Monochrome
	RGB
	CMYK
	Lab
	Indexed
	Pattern
	DeviceN
)

func (m Model) String() string {
	switch m {
	case Unknown:
		return "Unknown"
	case Monochrome:
		return "Monochrome"
	case RGB:
		return "RGB"
	case CMYK:
		return "CMYK"
	case Lab:
		return "Lab"
	case Indexed:
		return "Indexed"
	case Pattern:
		return "Pattern"
	case DeviceN:
		return "DeviceN"
	default:
		return "Model(" + strconv.Itoa(int(m)) + ")"
	}
}

// Channels returns the number of color components of the model, not
// counting alpha.  This returns 0 for models where the number of components
// is not fixed.
func (m Model) Channels() int {
	switch m {
	case Monochrome, Indexed:
		return 1
	case RGB, Lab:
		return 3
	case CMYK:
		return 4
	default:
		return 0
	}
}

// ToRGBA packs a color, given by its model and normalized components, into
// a 32-bit RGBA value.
//
// For RGB, the components are red, green, blue and optionally alpha.  For
// Monochrome, the components are gray and optionally alpha; the gray value
// is used for all of red, green and blue.  If alpha is omitted, the color is
// fully opaque.  Color channels are scaled by 255 and truncated to integers,
// alpha is rounded as in [Compose8bitRGBA].
//
// The second return value is false if the color cannot be represented, i.e.
// if the model is neither RGB nor Monochrome, or if the number of
// components does not match the model.
func ToRGBA(m Model, components ...float64) (uint32, bool) {
	var r, g, b float64
	switch m {
	case RGB:
		if len(components) != 3 && len(components) != 4 {
			return 0, false
		}
		r, g, b = components[0], components[1], components[2]
	case Monochrome:
		if len(components) != 1 && len(components) != 2 {
			return 0, false
		}
		r = components[0]
		g, b = r, r
	default:
		return 0, false
	}

	alpha := 1.0
	if n := m.Channels(); len(components) > n {
		alpha = components[n]
	}

	return Compose8bitRGBA(channel8(r), channel8(g), channel8(b), alpha), true
}

// ModelOf returns the color-space model of a standard library color.
// Colors of unrecognized types are reported as [Unknown].
func ModelOf(c stdcolor.Color) Model {
	switch c.(type) {
	case RGBA, stdcolor.RGBA, stdcolor.RGBA64, stdcolor.NRGBA, stdcolor.NRGBA64:
		return RGB
	case stdcolor.Gray, stdcolor.Gray16:
		return Monochrome
	case stdcolor.CMYK:
		return CMYK
	default:
		return Unknown
	}
}

// Components returns the model of c together with its normalized,
// non-premultiplied components, including alpha where the model has one.
// For colors of unknown type, the returned slice is nil.
func Components(c stdcolor.Color) (Model, []float64) {
	switch c := c.(type) {
	case RGBA:
		return RGB, []float64{c.R, c.G, c.B, c.A}
	case stdcolor.NRGBA:
		return RGB, norm8(c.R, c.G, c.B, c.A)
	case stdcolor.RGBA:
		n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
		return RGB, norm8(n.R, n.G, n.B, n.A)
	case stdcolor.NRGBA64:
		return RGB, norm16(c.R, c.G, c.B, c.A)
	case stdcolor.RGBA64:
		n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
		return RGB, norm16(n.R, n.G, n.B, n.A)
	case stdcolor.Gray:
		return Monochrome, norm8(c.Y, 0xFF)
	case stdcolor.Gray16:
		return Monochrome, norm16(c.Y, 0xFFFF)
	case stdcolor.CMYK:
		return CMYK, norm8(c.C, c.M, c.Y, c.K)
	default:
		return Unknown, nil
	}
}

// FromColor packs a standard library color into a 32-bit RGBA value.
// The second return value is false if the color is not an RGB or grayscale
// color.  See [ToRGBA] for details.
func FromColor(c stdcolor.Color) (uint32, bool) {
	m, components := Components(c)
	return ToRGBA(m, components...)
}

func norm8(x ...uint8) []float64 {
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = float64(xi) / 0xFF
	}
	return res
}

func norm16(x ...uint16) []float64 {
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = float64(xi) / 0xFFFF
	}
	return res
}
