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
	"errors"
	"strconv"
)

var (
	// ErrLength indicates a hex color with the wrong number of digits.
	ErrLength = errors.New("expected 3, 4, 6 or 8 hex digits")

	// ErrDigit indicates a hex color containing a non-hex character.
	ErrDigit = errors.New("invalid hex digit")

	// ErrUnknownColor indicates a string which is neither a hex color nor a
	// known color name.
	ErrUnknownColor = errors.New("unknown color")
)

// SyntaxError is returned when a color string cannot be interpreted.
type SyntaxError struct {
	Input string
	Err   error
}

func (err *SyntaxError) Error() string {
	msg := "invalid color " + strconv.Quote(err.Input)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}
