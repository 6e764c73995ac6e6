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

import "math"

// This file contains the clamping rules shared by the codec functions.

// maxPacked is the largest packed RGBA value.
const maxPacked = 0xFFFFFFFF

// ε is added before truncating a scaled channel value, so that k/255*255
// recovers k even when the division rounds down.
const ε = 1e-6

// clamp01 restricts v to [0, 1].  NaN is mapped to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp255 restricts a channel value to the range [0, 255].
func clamp255(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

// alpha8 converts a normalized alpha value to a byte, rounding to nearest.
func alpha8(a float64) uint32 {
	return uint32(math.Round(clamp01(a) * 255))
}

// channel8 converts a normalized channel value to an integer channel value
// by truncation.
func channel8(v float64) int {
	return int(clamp01(v)*255 + ε)
}

// toUint16 converts a float64 in [0,1] to a uint32 in [0,0xffff].
func toUint16(v float64) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}
