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

package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"seehuhn.de/go/hexcolor"
	"seehuhn.de/go/hexcolor/palette"
)

// writeTable prints one row per color: the packed value, the normalized
// channels, and the given number of tints and shades.
func writeTable(w io.Writer, entries []palette.Entry, steps int, swatch bool) {
	amounts := make([]float64, steps)
	for i := range amounts {
		amounts[i] = float64(i+1) / float64(steps+1)
	}

	header := []string{"name", "hex", "r", "g", "b", "a"}
	for _, amount := range amounts {
		header = append(header, fmt.Sprintf("tint %.0f%%", 100*amount))
	}
	for _, amount := range amounts {
		header = append(header, fmt.Sprintf("shade %.0f%%", 100*amount))
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)

	for _, e := range entries {
		c := hexcolor.DecomposeRGBA(uint64(e.Value))
		row := []string{
			e.Name,
			cell(e.Value, swatch, hexcolor.FormatHex),
			channel(c.R), channel(c.G), channel(c.B), channel(c.A),
		}
		for _, amount := range amounts {
			row = append(row, cell(c.Tint(amount).Pack(), swatch, hexcolor.FormatHexRGB))
		}
		for _, amount := range amounts {
			row = append(row, cell(c.Shade(amount).Pack(), swatch, hexcolor.FormatHexRGB))
		}
		table.Append(row)
	}
	table.Render()
}

func cell(packed uint32, swatch bool, format func(uint32) string) string {
	text := format(packed)
	if !swatch {
		return text
	}
	return ansiSwatch(packed) + " " + text
}

// ansiSwatch returns two spaces on a 24-bit background color.
func ansiSwatch(packed uint32) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m",
		uint8(packed>>24), uint8(packed>>16), uint8(packed>>8))
}

func channel(x float64) string {
	return fmt.Sprintf("%.3f", x)
}
