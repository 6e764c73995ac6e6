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

package hexcolor_test

import (
	"fmt"
	stdcolor "image/color"

	"seehuhn.de/go/hexcolor"
)

func ExampleCompose8bitRGB() {
	emerald := hexcolor.Compose8bitRGB(46, 204, 113)
	fmt.Printf("%08X\n", emerald)
	// Output:
	// 2ECC71FF
}

func ExampleTint() {
	fmt.Println(hexcolor.Tint(0x2ECC71FF, 0.2))
	fmt.Println(hexcolor.Shade(0x2ECC71FF, 0.2))
	// Output:
	// #61ffa4ff
	// #00993eff
}

func ExampleToRGBA() {
	gray, ok := hexcolor.ToRGBA(hexcolor.Monochrome, 0.5, 1.0)
	fmt.Printf("%08X %t\n", gray, ok)

	_, ok = hexcolor.ToRGBA(hexcolor.CMYK, 0, 0, 0, 1)
	fmt.Println(ok)
	// Output:
	// 7F7F7FFF true
	// false
}

func ExampleFromColor() {
	packed, ok := hexcolor.FromColor(stdcolor.Gray{Y: 0x40})
	fmt.Println(hexcolor.FormatHex(packed), ok)
	// Output:
	// #404040ff true
}

func ExampleResolve() {
	for _, s := range []string{"#2ecc71", "rebeccapurple", "Dark Orange"} {
		packed, err := hexcolor.Resolve(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(hexcolor.FormatHex(packed))
	}
	// Output:
	// #2ecc71ff
	// invalid color "rebeccapurple": unknown color
	// #ff8c00ff
}
