package object

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Category is the motion class an object's colour depends on.
// Rotating covers both spin and orbit.
type Category struct {
	Rotating bool
	Bouncing bool
}

// Palette assigns one colour per motion category.
type Palette struct {
	RotatingBouncing colorful.Color
	Rotating         colorful.Color
	Bouncing         colorful.Color
	Still            colorful.Color
}

type appearanceKey struct {
	category Category
	hovered  bool
}

// Appearance is a lookup table from (category, hovered) to colour.
// Every one of the eight keys is populated, so Color never misses.
type Appearance struct {
	table map[appearanceKey]colorful.Color
}

// Solid returns an appearance with one colour everywhere.
func Solid(c colorful.Color) Appearance {
	return NewAppearance(Palette{c, c, c, c}, nil)
}

// NewAppearance builds the table from a palette. A nil hover keeps hovered
// objects in their palette colour.
func NewAppearance(p Palette, hover *colorful.Color) Appearance {
	base := map[Category]colorful.Color{
		{Rotating: true, Bouncing: true}:   p.RotatingBouncing,
		{Rotating: true, Bouncing: false}:  p.Rotating,
		{Rotating: false, Bouncing: true}:  p.Bouncing,
		{Rotating: false, Bouncing: false}: p.Still,
	}
	a := Appearance{table: make(map[appearanceKey]colorful.Color, 8)}
	for cat, c := range base {
		a.table[appearanceKey{cat, false}] = c
		if hover != nil {
			a.table[appearanceKey{cat, true}] = *hover
		} else {
			a.table[appearanceKey{cat, true}] = c
		}
	}
	return a
}

// Color returns the colour for a category and hover state.
func (a Appearance) Color(cat Category, hovered bool) colorful.Color {
	return a.table[appearanceKey{cat, hovered}]
}

// Len returns the number of table entries.
func (a Appearance) Len() int {
	return len(a.table)
}
