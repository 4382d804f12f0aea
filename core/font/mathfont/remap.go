package mathfont

import "maps"

// Remap maps characters to replacement text. Fonts use remaps to draw
// combining accents with their spacing counterparts, or to replace a
// hyphen in an operator by a minus sign.
type Remap map[rune]string

// Remap tables used by layout code.
const (
	RemapAccent = "accent" // combining accents
	RemapMo     = "mo"     // characters in operators
	RemapMn     = "mn"     // characters in numbers
)

// DefineRemap merges a remap table into the remap called name. Tables are
// created on first use.
func (f *Font) DefineRemap(name string, remap Remap) {
	r, ok := f.remaps[name]
	if !ok {
		r = make(Remap, len(remap))
		f.remaps[name] = r
	}
	maps.Copy(r, remap)
	tracer().Debugf("remap %s has %d entries", name, len(r))
}

// RemappedChar returns the replacement of code in remap name.
func (f *Font) RemappedChar(name string, code rune) (string, bool) {
	s, ok := f.remaps[name][code]
	return s, ok
}
