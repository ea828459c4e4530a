// internal/fonts/fonts.go

// Package fonts holds the font families offered by the font picker.
package fonts

import "strings"

// DefaultFamilies is the built-in picker list.
var DefaultFamilies = []string{
	"Arial", "Helvetica", "Times New Roman", "Georgia", "Courier New", "Verdana",
	"Trebuchet MS", "Comic Sans MS", "Impact", "Lucida Console", "Palatino Linotype",
	"Garamond", "Century Gothic", "Arial Black", "Frank Ruhl Libre", "Droid Sans",
	"Roboto", "Open Sans", "Lato", "Montserrat", "Source Sans Pro", "Merriweather",
	"Ubuntu", "Raleway", "PT Serif", "Nunito", "Fira Sans", "Poppins",
	"Playfair Display", "Cabin", "Work Sans", "Quicksand", "Oswald", "Bebas Neue",
	"Anton", "Josefin Sans", "Inconsolata", "Zilla Slab", "Manrope", "Barlow",
	"Tinos", "Arvo", "Karla", "Mukta", "Asap", "Teko", "Dosis", "Crimson Text",
	"Lora", "Bitter", "Abril Fatface", "Saira", "Rokkitt", "Oxygen",
	"Yanone Kaffeesatz", "Overpass", "Rubik", "Libre Baskerville", "Spectral",
	"Cairo", "Vollkorn", "Catamaran",
}

// Catalog is an ordered, de-duplicated list of font families.
type Catalog struct {
	families []string
	index    map[string]int // lowercased name -> position
}

// NewCatalog builds a catalog from families, dropping blanks and duplicates.
// An empty list falls back to DefaultFamilies.
func NewCatalog(families []string) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, f := range families {
		f = strings.TrimSpace(f)
		key := strings.ToLower(f)
		if f == "" {
			continue
		}
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = len(c.families)
		c.families = append(c.families, f)
	}
	if len(c.families) == 0 {
		return NewCatalog(DefaultFamilies)
	}
	return c
}

// Families returns a copy of the catalog's names in order.
func (c *Catalog) Families() []string {
	return append([]string(nil), c.families...)
}

// Len returns the number of families.
func (c *Catalog) Len() int { return len(c.families) }

// Lookup returns the canonical spelling of name (case-insensitive).
func (c *Catalog) Lookup(name string) (string, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return c.families[i], true
}

// Step returns the family delta positions away from current, wrapping around.
// An unknown current starts from the first family.
func (c *Catalog) Step(current string, delta int) string {
	i, ok := c.index[strings.ToLower(current)]
	if !ok {
		i = 0
		if delta > 0 {
			delta--
		}
	}
	n := len(c.families)
	i = ((i+delta)%n + n) % n
	return c.families[i]
}
