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
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		err  error
	}{
		{"#2ecc71", 0x2ECC71FF, nil},
		{"2ECC71FF", 0x2ECC71FF, nil},
		{"0x2ecc7180", 0x2ECC7180, nil},
		{"0X000000", 0x000000FF, nil},
		{"#f80", 0xFF8800FF, nil},
		{"#F808", 0xFF880088, nil},
		{"#0000", 0x00000000, nil},
		{"", 0, ErrLength},
		{"#", 0, ErrLength},
		{"#12345", 0, ErrLength},
		{"#123456789", 0, ErrLength},
		{"#ggg", 0, ErrDigit},
		{"#2ecc7g", 0, ErrDigit},
		{"# 2ecc71", 0, ErrDigit},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if !errors.Is(err, c.err) {
			t.Errorf("ParseHex(%q): got error %v, want %v", c.in, err, c.err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHex(%q) = %08X, want %08X", c.in, got, c.want)
		}
	}
}

func TestParseHexError(t *testing.T) {
	_, err := ParseHex("#xyz")

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Input != "#xyz" {
		t.Errorf("wrong input %q", synErr.Input)
	}
	if msg := err.Error(); msg != `invalid color "#xyz": invalid hex digit` {
		t.Errorf("wrong message %q", msg)
	}
}

func TestFormatHex(t *testing.T) {
	if s := FormatHex(0x2ECC71FF); s != "#2ecc71ff" {
		t.Errorf("FormatHex = %q", s)
	}
	if s := FormatHex(0); s != "#00000000" {
		t.Errorf("FormatHex = %q", s)
	}
	if s := FormatHexRGB(0x2ECC7180); s != "#2ecc71" {
		t.Errorf("FormatHexRGB = %q", s)
	}
	if s := FormatHexRGB(0x000001FF); s != "#000001" {
		t.Errorf("FormatHexRGB = %q", s)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, packed := range []uint32{0, 0x01020304, 0x2ECC71FF, 0x80808080, 0xFFFFFFFF} {
		got, err := ParseHex(FormatHex(packed))
		if err != nil {
			t.Fatal(err)
		}
		if got != packed {
			t.Errorf("%08X -> %08X", packed, got)
		}
	}
}
