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

// Package hexcolor converts between packed 32-bit RGBA values, explicit
// 8-bit channel values and normalized floating point colors.
//
// A packed value stores one byte per channel, from the most significant to
// the least significant byte: red, green, blue, alpha.  For example, the
// opaque color "emerald" with channels (46, 204, 113) is 0x2ECC71FF:
//
//	packed := hexcolor.Compose8bitRGB(46, 204, 113) // 0x2ECC71FF
//	c := hexcolor.DecomposeRGBA(uint64(packed))     // c.G == 204.0/255
//
// Normalized colors are represented by [RGBA], which implements the
// [image/color.Color] interface and can be used wherever the standard
// library expects a color.  In the other direction, [ToRGBA] and [FromColor]
// pack a color given by a color-space model and its components.  Colors in
// models other than RGB and grayscale cannot be represented and are
// reported by a false second return value.
//
// The functions [Tint] and [Shade] move a color toward white or black by
// adding or subtracting a fixed amount from each of the red, green and blue
// channels.
//
// Numeric arguments are never rejected.  Channel values are clamped to
// [0, 255], normalized values and amounts to [0, 1], and packed values to
// 0xFFFFFFFF.  Only the text based functions [ParseHex], [Named] and
// [Resolve] can fail.
package hexcolor
