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
	"fmt"
	"strings"
)

// ParseHex parses a hex color string into a packed 32-bit RGBA value.
//
// The string may start with "#", "0x" or "0X", followed by 3 (RGB),
// 4 (RGBA), 6 (RRGGBB) or 8 (RRGGBBAA) hex digits.  In the short forms each
// digit is repeated, so that "#f80" is the same as "#ff8800".  Colors
// without an alpha component are fully opaque.
//
// Errors are of type [*SyntaxError].
func ParseHex(s string) (uint32, error) {
	digits := trimHexPrefix(s)

	var packed uint32
	for i := 0; i < len(digits); i++ {
		d, ok := hexDigit(digits[i])
		if !ok {
			return 0, &SyntaxError{Input: s, Err: ErrDigit}
		}
		packed = packed<<4 | d
	}

	switch len(digits) {
	case 3: // RGB
		return expandShort(packed<<4|0xF, 4), nil
	case 4: // RGBA
		return expandShort(packed, 4), nil
	case 6: // RRGGBB
		return packed<<8 | 0xFF, nil
	case 8: // RRGGBBAA
		return packed, nil
	default:
		return 0, &SyntaxError{Input: s, Err: ErrLength}
	}
}

// FormatHex returns the packed RGBA value in the form "#rrggbbaa".
func FormatHex(packed uint32) string {
	return fmt.Sprintf("#%08x", packed)
}

// FormatHexRGB returns the red, green and blue channels of the packed RGBA
// value in the form "#rrggbb".  Alpha is ignored.
func FormatHexRGB(packed uint32) string {
	return fmt.Sprintf("#%06x", packed>>8)
}

func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "#") {
		return s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

func hasHexPrefix(s string) bool {
	return len(trimHexPrefix(s)) != len(s)
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// expandShort turns n packed 4-bit values into n packed 8-bit values,
// by multiplying each digit by 17.
func expandShort(nibbles uint32, n int) uint32 {
	var res uint32
	for i := n - 1; i >= 0; i-- {
		d := (nibbles >> (4 * i)) & 0xF
		res = res<<8 | d*17
	}
	return res
}
