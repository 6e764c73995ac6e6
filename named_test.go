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

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

func TestNamed(t *testing.T) {
	cases := []struct {
		name string
		want uint32
		ok   bool
	}{
		{"skyblue", 0x87CEEBFF, true},
		{"SkyBlue", 0x87CEEBFF, true},
		{"Dark Slate Gray", 0x2F4F4FFF, true},
		{"dark_slate-grey", 0x2F4F4FFF, true},
		{"red", 0xFF0000FF, true},
		{"emerald", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := Named(c.name)
		if got != c.want || ok != c.ok {
			t.Errorf("Named(%q) = %08X, %t, want %08X, %t", c.name, got, ok, c.want, c.ok)
		}
	}
}

// TestNamedComplete checks that every keyword can be looked up, and agrees
// with the standard library representation.
func TestNamedComplete(t *testing.T) {
	names := Names()
	if len(names) != len(colornames.Map) {
		t.Errorf("got %d names, want %d", len(names), len(colornames.Map))
	}
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}

	for _, name := range names {
		packed, ok := Named(name)
		if !ok {
			t.Errorf("%s: not found", name)
			continue
		}
		want, _ := FromColor(colornames.Map[name])
		if packed != want {
			t.Errorf("%s: got %08X, want %08X", name, packed, want)
		}
	}
}

func TestFoldName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"SkyBlue", "skyblue"},
		{"sky blue", "skyblue"},
		{"Sky-Blue_Light", "skybluelight"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FoldName(c.in); got != c.want {
			t.Errorf("FoldName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		err  error
	}{
		{"red", 0xFF0000FF, nil},
		{" Navy ", 0x000080FF, nil},
		{"#2ecc71", 0x2ECC71FF, nil},
		{"2ecc71", 0x2ECC71FF, nil},
		{"bogus", 0, ErrUnknownColor},
		{"#red", 0, ErrDigit},
		{"#12", 0, ErrLength},
	}
	for _, c := range cases {
		got, err := Resolve(c.in)
		if !errors.Is(err, c.err) {
			t.Errorf("Resolve(%q): got error %v, want %v", c.in, err, c.err)
			continue
		}
		if got != c.want {
			t.Errorf("Resolve(%q) = %08X, want %08X", c.in, got, c.want)
		}
	}
}
