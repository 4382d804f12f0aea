package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/npillmayer/mathmetrics/core"
)

// Direction is the stretch direction of a delimiter.
type Direction int8

// Delimiters stretch either vertically (parentheses, braces) or horizontally
// (arrows, over-braces). NoStretch marks characters with size steps only.
const (
	NoStretch Direction = iota
	Vertical
	Horizontal
)

func (dir Direction) String() string {
	switch dir {
	case NoStretch:
		return "none"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Direction(%d)", int8(dir))
}

// Part indexes the glyph parts of a stretchy delimiter.
type Part int

// A stretchy delimiter is assembled from a begin piece (top or left), an
// extender which is repeated, an end piece (bottom or right) and an optional
// middle piece.
const (
	Begin Part = iota
	Extender
	End
	Middle
)

func (p Part) String() string {
	switch p {
	case Begin:
		return "begin"
	case Extender:
		return "extender"
	case End:
		return "end"
	case Middle:
		return "middle"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// DelimiterEntry describes how a delimiter is drawn at different sizes.
//
// Sizes holds the extents (em) of the pre-rendered size steps, smallest first.
// Schar optionally holds, per size step, the character code to draw; it
// defaults to C, or the delimiter's own code if C is 0. Variants optionally
// holds, per size step, an index into the font's size-variant list; without
// it, size step i is taken from size variant i.
//
// Stretch holds the character codes of the parts for assembling the
// delimiter (indexed by Part; 0 means "no such part"), StretchV optionally
// the index into the font's stretch-variant list for each part. HDW
// optionally overrides height, depth and width of the assembled glyph.
// Min is the minimum extent of an assembly.
type DelimiterEntry struct {
	Dir      Direction
	Sizes    []float64
	Schar    []rune
	Variants []int
	Stretch  []rune
	StretchV []int
	HDW      []float64
	Min      float64
	C        rune
}

// Validate checks the shape of d. Malformed entries result in an error with
// code core.EINVALID.
func (d DelimiterEntry) Validate() error {
	if d.Dir < NoStretch || d.Dir > Horizontal {
		return core.Error(core.EINVALID, "delimiter has unknown direction %d", d.Dir)
	}
	if n := len(d.Stretch); n != 0 && n != 3 && n != 4 {
		return core.Error(core.EINVALID, "delimiter must have 3 or 4 parts, has %d", n)
	}
	if n := len(d.HDW); n != 0 && n != 3 {
		return core.Error(core.EINVALID, "delimiter box override must have 3 values, has %d", n)
	}
	if len(d.Variants) > 0 && len(d.Variants) != len(d.Sizes) {
		return core.Error(core.EINVALID, "delimiter has %d sizes but %d size variants",
			len(d.Sizes), len(d.Variants))
	}
	if len(d.Schar) > 0 && len(d.Schar) != len(d.Sizes) {
		return core.Error(core.EINVALID, "delimiter has %d sizes but %d size characters",
			len(d.Sizes), len(d.Schar))
	}
	if len(d.StretchV) > 0 && len(d.StretchV) != len(d.Stretch) {
		return core.Error(core.EINVALID, "delimiter has %d parts but %d part variants",
			len(d.Stretch), len(d.StretchV))
	}
	for _, list := range [][]int{d.Variants, d.StretchV} {
		for _, inx := range list {
			if inx < 0 {
				return core.Error(core.EINVALID, "delimiter has negative variant index %d", inx)
			}
		}
	}
	for _, list := range [][]float64{d.Sizes, d.HDW, {d.Min}} {
		for _, v := range list {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return core.Error(core.EINVALID, "delimiter dimension is %v", v)
			}
		}
	}
	return nil
}

// Clone returns a copy of d which does not share slices with d.
func (d DelimiterEntry) Clone() DelimiterEntry {
	d.Sizes = slices.Clone(d.Sizes)
	d.Schar = slices.Clone(d.Schar)
	d.Variants = slices.Clone(d.Variants)
	d.Stretch = slices.Clone(d.Stretch)
	d.StretchV = slices.Clone(d.StretchV)
	d.HDW = slices.Clone(d.HDW)
	return d
}

// IsStretchy is true if d may be assembled from parts.
func (d DelimiterEntry) IsStretchy() bool {
	return d.Dir != NoStretch && len(d.Stretch) > 0
}

// Part returns the character code of part p, or 0 if d has no such part.
func (d DelimiterEntry) Part(p Part) rune {
	if int(p) < 0 || int(p) >= len(d.Stretch) {
		return 0
	}
	return d.Stretch[p]
}

// Box returns the box override of the assembled glyph, if any.
func (d DelimiterEntry) Box() (h, dp, w float64, ok bool) {
	if len(d.HDW) != 3 {
		return 0, 0, 0, false
	}
	return d.HDW[0], d.HDW[1], d.HDW[2], true
}

// SizeChar returns the character code drawn at size step i for delimiter
// code. It does not check i against the number of sizes.
func (d DelimiterEntry) SizeChar(code rune, i int) rune {
	if i >= 0 && i < len(d.Schar) && d.Schar[i] != 0 {
		return d.Schar[i]
	}
	if d.C != 0 {
		return d.C
	}
	return code
}

// DelimiterTable maps character codes to delimiter entries.
type DelimiterTable map[rune]DelimiterEntry

// Clone returns a deep copy of t.
func (t DelimiterTable) Clone() DelimiterTable {
	if t == nil {
		return nil
	}
	c := make(DelimiterTable, len(t))
	for code, entry := range t {
		c[code] = entry.Clone()
	}
	return c
}
