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

// Package palette reads and writes named color palettes.
//
// A palette file is a YAML document with an optional name and a mapping
// from color names to color values:
//
//	name: flat-ui
//	colors:
//	  emerald: "#2ecc71"
//	  midnight blue: "#2c3e50cc"
//	  sky: skyblue
//
// Values can be given in any form understood by [hexcolor.Resolve].  Color
// names are compared using [hexcolor.FoldName], so "Midnight Blue" and
// "midnight-blue" refer to the same entry.
package palette

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/hexcolor"
)

// Entry is a single named color.
type Entry struct {
	Name  string
	Value uint32
}

// Palette is a list of named colors.
// A Palette is not modified after creation and can be shared between
// goroutines.
type Palette struct {
	Name string

	entries []Entry
	index   map[string]int
}

var (
	errEmptyName = errors.New("empty color name")
	errNotMap    = errors.New("colors must be a mapping from names to values")
	errNotScalar = errors.New("color value must be a string")
)

// DuplicateError is returned when two entries of a palette have the same
// name, after folding.
type DuplicateError struct {
	Name, Previous string
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate color name %q (previously %q)", err.Name, err.Previous)
}

// New creates a palette from the given entries.  The order of the entries
// is preserved.
func New(name string, entries ...Entry) (*Palette, error) {
	p := &Palette{
		Name:    name,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, errEmptyName
		}
		key := hexcolor.FoldName(e.Name)
		if i, seen := p.index[key]; seen {
			return nil, &DuplicateError{Name: e.Name, Previous: p.entries[i].Name}
		}
		p.index[key] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns the colors of the palette, in file order.
func (p *Palette) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Names returns the names of all colors in the palette, sorted
// alphabetically.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	slices.Sort(names)
	return names
}

// Lookup returns the packed RGBA value of the named color.
func (p *Palette) Lookup(name string) (uint32, bool) {
	i, ok := p.index[hexcolor.FoldName(name)]
	if !ok {
		return 0, false
	}
	return p.entries[i].Value, true
}

// Color returns the named color as a normalized color value.
func (p *Palette) Color(name string) (hexcolor.RGBA, bool) {
	packed, ok := p.Lookup(name)
	if !ok {
		return hexcolor.RGBA{}, false
	}
	return hexcolor.DecomposeRGBA(uint64(packed)), true
}

type paletteFile struct {
	Name   string    `yaml:"name,omitempty"`
	Colors yaml.Node `yaml:"colors"`
}

// Decode reads a palette from a YAML document.
// An empty document gives an empty palette.
func Decode(r io.Reader) (*Palette, error) {
	var f paletteFile
	err := yaml.NewDecoder(r).Decode(&f)
	if errors.Is(err, io.EOF) {
		return New("")
	} else if err != nil {
		return nil, fmt.Errorf("decoding palette: %w", err)
	}

	colors := &f.Colors
	if colors.Kind == 0 || colors.ShortTag() == "!!null" {
		return New(f.Name)
	}
	if colors.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", colors.Line, errNotMap)
	}

	entries := make([]Entry, 0, len(colors.Content)/2)
	for i := 0; i+1 < len(colors.Content); i += 2 {
		key, val := colors.Content[i], colors.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: color %q: %w", val.Line, key.Value, errNotScalar)
		}
		packed, err := hexcolor.Resolve(val.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: color %q: %w", val.Line, key.Value, err)
		}
		entries = append(entries, Entry{Name: key.Value, Value: packed})
	}

	p, err := New(f.Name, entries...)
	if err != nil {
		return nil, fmt.Errorf("decoding palette: %w", err)
	}
	return p, nil
}

// Load reads a palette from a YAML file.
func Load(fname string) (*Palette, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	p, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("loading palette from %s: %w", fname, err)
	}
	return p, nil
}

// Encode writes the palette as a YAML document.  Colors are written in the
// form "#rrggbbaa".
func (p *Palette) Encode(w io.Writer) error {
	colors := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range p.entries {
		colors.Content = append(colors.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Style: yaml.DoubleQuotedStyle,
				Value: hexcolor.FormatHex(e.Value),
			})
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	if p.Name != "" {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name})
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "colors"},
		colors)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(doc)
	if err != nil {
		return err
	}
	return enc.Close()
}
