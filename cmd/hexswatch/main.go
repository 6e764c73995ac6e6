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

// Hexswatch prints packed RGBA values together with tints and shades.
//
// Usage:
//
//	hexswatch [-palette file.yaml] [-steps n] [-swatch auto|always|never] [color ...]
//
// Colors can be given as hex values ("#2ecc71", "0x2ecc71ff") or as SVG
// color names ("skyblue").
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/hexcolor"
	"seehuhn.de/go/hexcolor/palette"
)

func main() {
	paletteFile := flag.String("palette", "", "read colors from a YAML palette `file`")
	steps := flag.Int("steps", 2, "number of tint and shade steps")
	swatch := flag.String("swatch", "auto", "show color swatches (auto, always, never)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [color ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var entries []palette.Entry
	if *paletteFile != "" {
		p, err := palette.Load(*paletteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entries = append(entries, p.Entries()...)
	}
	for _, arg := range flag.Args() {
		packed, err := hexcolor.Resolve(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entries = append(entries, palette.Entry{Name: arg, Value: packed})
	}
	if len(entries) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var showSwatch bool
	switch *swatch {
	case "auto":
		showSwatch = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		showSwatch = true
	case "never":
		showSwatch = false
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -swatch value %q\n", *swatch)
		os.Exit(1)
	}

	writeTable(os.Stdout, entries, max(*steps, 0), showSwatch)
}
