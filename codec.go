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

// DecomposeRGBA splits a packed RGBA value into normalized channel values.
//
// The red channel is taken from bits 24-31, green from bits 16-23, blue
// from bits 8-15 and alpha from bits 0-7.  Values larger than 0xFFFFFFFF
// are treated as 0xFFFFFFFF.
func DecomposeRGBA(packed uint64) RGBA {
	if packed > maxPacked {
		packed = maxPacked
	}
	return RGBA{
		R: float64((packed>>24)&0xFF) / 255,
		G: float64((packed>>16)&0xFF) / 255,
		B: float64((packed>>8)&0xFF) / 255,
		A: float64(packed&0xFF) / 255,
	}
}

// DecomposeRGB splits a packed 24-bit RGB value into normalized channel
// values.  The resulting color is fully opaque.
func DecomposeRGB(rgb uint64) RGBA {
	if rgb > maxPacked>>8 {
		// would exceed 0xFFFFFFFF after the shift
		return DecomposeRGBA(maxPacked)
	}
	return DecomposeRGBA((rgb << 8) + 255)
}

// Compose8bitRGBA packs 8-bit channel values and a normalized alpha value
// into a 32-bit RGBA value.
//
// The channel values red, green and blue are clamped to the range [0, 255].
// Alpha is clamped to [0, 1] and rounded to the nearest multiple of 1/255.
func Compose8bitRGBA(red, green, blue int, alpha float64) uint32 {
	return clamp255(red)<<24 |
		clamp255(green)<<16 |
		clamp255(blue)<<8 |
		alpha8(alpha)
}

// Compose8bitRGB packs 8-bit channel values into a fully opaque 32-bit
// RGBA value.  This is the same as Compose8bitRGBA with alpha 1.
func Compose8bitRGB(red, green, blue int) uint32 {
	return Compose8bitRGBA(red, green, blue, 1)
}

// Encode8bit converts 8-bit channel values and a normalized alpha value
// into a normalized color, without going through a packed value.
//
// The channel values are clamped to [0, 255] and alpha to [0, 1].
func Encode8bit(red8Bit, green8Bit, blue8Bit int, alpha float64) RGBA {
	return RGBA{
		R: float64(clamp255(red8Bit)) / 255,
		G: float64(clamp255(green8Bit)) / 255,
		B: float64(clamp255(blue8Bit)) / 255,
		A: clamp01(alpha),
	}
}
