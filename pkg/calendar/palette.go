package calendar

// PaletteEntry maps one category to its legend label and color.
type PaletteEntry struct {
	Category Category
	Label    string
	Color    Color
}

// LegendEntry is one row of a calendar legend.
type LegendEntry struct {
	Category Category
	Label    string
	Color    Color
}

// Palette is a total category -> color mapping: every category resolves,
// unknown ones to the fallback. Lookups are exact and case-sensitive.
type Palette struct {
	entries  []PaletteEntry
	index    map[Category]int
	fallback Color
}

// NewPalette builds a palette. Later duplicates of a category are ignored.
func NewPalette(fallback Color, entries ...PaletteEntry) Palette {
	p := Palette{
		entries:  make([]PaletteEntry, 0, len(entries)),
		index:    make(map[Category]int, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		if _, dup := p.index[e.Category]; dup {
			continue
		}
		p.index[e.Category] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p
}

// Fallback returns the color used for unknown categories.
func (p Palette) Fallback() Color {
	return p.fallback
}

// Has reports whether c is part of the palette's closed set.
func (p Palette) Has(c Category) bool {
	_, ok := p.index[c]
	return ok
}

// Color returns the color for c, or the fallback.
func (p Palette) Color(c Category) Color {
	if i, ok := p.index[c]; ok {
		return p.entries[i].Color
	}
	return p.fallback
}

// Label returns the legend label for c, or the category itself.
func (p Palette) Label(c Category) string {
	if i, ok := p.index[c]; ok {
		return p.entries[i].Label
	}
	return string(c)
}

// Resolve returns e's explicit color if set, otherwise its category color.
func (p Palette) Resolve(e Event) Color {
	if e.Color != "" {
		return e.Color
	}
	return p.Color(e.Category)
}

// Apply returns a copy of events with every color resolved.
func (p Palette) Apply(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		e.Color = p.Resolve(e)
		out[i] = e
	}
	return out
}

// Categories returns the closed category set in legend order.
func (p Palette) Categories() []Category {
	out := make([]Category, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Category
	}
	return out
}

// Legend returns the legend rows in declaration order.
func (p Palette) Legend() []LegendEntry {
	out := make([]LegendEntry, len(p.entries))
	for i, e := range p.entries {
		out[i] = LegendEntry{Category: e.Category, Label: e.Label, Color: e.Color}
	}
	return out
}
