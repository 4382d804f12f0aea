/*
Package delimiters holds the stretchy-delimiter table of a math font.

A delimiter (parenthesis, brace, arrow, …) is drawn either from one of a
small number of pre-rendered size steps, or assembled from glyph parts. The
glyphs for the size steps live in dedicated variants of the font, the size
variants. The table resolves which size variant supplies a size step, and
which stretch variant supplies an assembly part.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package delimiters

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathmetrics.delimiters'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.delimiters")
}

// Table holds the delimiter entries of a font, together with the font's
// lists of size-variant and stretch-variant names.
type Table struct {
	delims          metrics.DelimiterTable
	sizeVariants    []string
	stretchVariants []string
}

// NewTable creates an empty delimiter table. The variant name lists are
// copied.
func NewTable(sizeVariants, stretchVariants []string) *Table {
	return &Table{
		delims:          make(metrics.DelimiterTable),
		sizeVariants:    append([]string(nil), sizeVariants...),
		stretchVariants: append([]string(nil), stretchVariants...),
	}
}

// Define merges entries into the table. Entries for codes already present
// replace the existing ones. If any entry is malformed, nothing is defined.
func (t *Table) Define(entries metrics.DelimiterTable) error {
	for code, d := range entries {
		if err := d.Validate(); err != nil {
			tracer().Errorf("delimiter U+%04X: %v", code, err)
			return core.WrapError(err, core.EINVALID, "delimiter U+%04X", code)
		}
	}
	for code, d := range entries {
		t.delims[code] = d.Clone()
	}
	tracer().Debugf("defined %d delimiters", len(entries))
	return nil
}

// Get returns the entry for delimiter code.
func (t *Table) Get(code rune) (metrics.DelimiterEntry, bool) {
	d, ok := t.delims[code]
	if !ok {
		return metrics.DelimiterEntry{}, false
	}
	return d.Clone(), true
}

func (t *Table) lookup(code rune) (metrics.DelimiterEntry, error) {
	if d, ok := t.delims[code]; ok {
		return d, nil
	}
	tracer().Errorf("delimiter U+%04X is not registered", code)
	return metrics.DelimiterEntry{}, core.Error(core.EMISSING, "delimiter U+%04X is not registered", code)
}

// SizeVariant returns the name of the variant supplying size step i of
// delimiter code. If the delimiter has a list of per-size variant indices,
// entry i of that list selects the size variant, otherwise i itself does.
func (t *Table) SizeVariant(code rune, i int) (string, error) {
	d, err := t.lookup(code)
	if err != nil {
		return "", err
	}
	inx := i
	if len(d.Variants) > 0 {
		if i < 0 || i >= len(d.Variants) {
			return "", outOfRange("size step", i, code)
		}
		inx = d.Variants[i]
	}
	if inx < 0 || inx >= len(t.sizeVariants) {
		return "", outOfRange("size variant", inx, code)
	}
	return t.sizeVariants[inx], nil
}

// StretchVariant returns the name of the variant supplying part p of the
// assembly of delimiter code. Without per-part variant indices, all parts
// come from the first stretch variant. It is an error with code core.ERANGE
// to ask for a part beyond the delimiter's list of parts.
func (t *Table) StretchVariant(code rune, p metrics.Part) (string, error) {
	d, err := t.lookup(code)
	if err != nil {
		return "", err
	}
	if int(p) < 0 || int(p) >= len(d.Stretch) {
		return "", outOfRange("part", int(p), code)
	}
	inx := 0
	if len(d.StretchV) > 0 {
		if int(p) < 0 || int(p) >= len(d.StretchV) {
			return "", outOfRange("part", int(p), code)
		}
		inx = d.StretchV[p]
	}
	if inx >= len(t.stretchVariants) {
		return "", outOfRange("stretch variant", inx, code)
	}
	return t.stretchVariants[inx], nil
}

// SizeChar returns the character code to draw for size step i of delimiter
// code.
func (t *Table) SizeChar(code rune, i int) (rune, error) {
	d, err := t.lookup(code)
	if err != nil {
		return 0, err
	}
	if i < 0 || (len(d.Sizes) > 0 && i >= len(d.Sizes)) {
		return 0, outOfRange("size step", i, code)
	}
	return d.SizeChar(code, i), nil
}

func outOfRange(what string, i int, code rune) error {
	tracer().Errorf("%s %d out of range for delimiter U+%04X", what, i, code)
	return core.Error(core.ERANGE, "%s %d out of range for delimiter U+%04X", what, i, code)
}

// Codes returns the codes of all delimiters, in ascending order.
func (t *Table) Codes() []rune {
	set := treeset.NewWithIntComparator()
	for code := range t.delims {
		set.Add(int(code))
	}
	codes := make([]rune, 0, set.Size())
	for _, v := range set.Values() {
		codes = append(codes, rune(v.(int)))
	}
	return codes
}

// Len returns the number of delimiters.
func (t *Table) Len() int {
	return len(t.delims)
}

// SizeVariants returns a copy of the size-variant name list.
func (t *Table) SizeVariants() []string {
	return append([]string(nil), t.sizeVariants...)
}

// StretchVariants returns a copy of the stretch-variant name list.
func (t *Table) StretchVariants() []string {
	return append([]string(nil), t.stretchVariants...)
}
