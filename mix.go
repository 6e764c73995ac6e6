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

// Tint returns the color given by the packed RGBA value, mixed toward white.
//
// The amount is clamped to [0, 1] and added to each of the red, green and
// blue channels; channels which would exceed 1 are set to 1.  Alpha is
// not changed.  Tint(x, 1) has red, green and blue equal to 1.
func Tint(packed uint64, amount float64) RGBA {
	return DecomposeRGBA(packed).Tint(amount)
}

// Shade returns the color given by the packed RGBA value, mixed toward
// black.
//
// The amount is clamped to [0, 1] and subtracted from each of the red, green
// and blue channels; channels which would drop below 0 are set to 0.  Alpha
// is not changed.
func Shade(packed uint64, amount float64) RGBA {
	return DecomposeRGBA(packed).Shade(amount)
}

// Tint returns c mixed toward white.  See [Tint] for details.
func (c RGBA) Tint(amount float64) RGBA {
	amount = clamp01(amount)
	return RGBA{
		R: min(c.R+amount, 1),
		G: min(c.G+amount, 1),
		B: min(c.B+amount, 1),
		A: c.A,
	}
}

// Shade returns c mixed toward black.  See [Shade] for details.
func (c RGBA) Shade(amount float64) RGBA {
	amount = clamp01(amount)
	return RGBA{
		R: max(c.R-amount, 0),
		G: max(c.G-amount, 0),
		B: max(c.B-amount, 0),
		A: c.A,
	}
}
