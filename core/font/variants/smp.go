package variants

import "github.com/npillmayer/mathmetrics/core/font/metrics"

// Character ranges mapped to the Mathematical Alphanumeric Symbols block.
const (
	latinUpper = iota
	latinLower
	greekUpper
	greekLower
	digits
)

var smpRanges = [...]struct {
	kind   int
	lo, hi rune
}{
	{latinUpper, 0x41, 0x5A},
	{latinLower, 0x61, 0x7A},
	{greekUpper, 0x391, 0x3A9},
	{greekLower, 0x3B1, 0x3C9},
	{digits, 0x30, 0x39},
}

// variantSMP holds, per variant, the start of each range in the SMP block;
// 0 means the variant does not remap that range.
var variantSMP = map[string][5]rune{
	"bold":                   {0x1D400, 0x1D41A, 0x1D6A8, 0x1D6C2, 0x1D7CE},
	"italic":                 {0x1D434, 0x1D44E, 0x1D6E2, 0x1D6FC, 0},
	"bold-italic":            {0x1D468, 0x1D482, 0x1D71C, 0x1D736, 0},
	"script":                 {0x1D49C, 0x1D4B6, 0, 0, 0},
	"bold-script":            {0x1D4D0, 0x1D4EA, 0, 0, 0},
	"fraktur":                {0x1D504, 0x1D51E, 0, 0, 0},
	"double-struck":          {0x1D538, 0x1D552, 0, 0, 0x1D7D8},
	"bold-fraktur":           {0x1D56C, 0x1D586, 0, 0, 0},
	"sans-serif":             {0x1D5A0, 0x1D5BA, 0, 0, 0x1D7E2},
	"bold-sans-serif":        {0x1D5D4, 0x1D5EE, 0x1D756, 0x1D770, 0x1D7EC},
	"sans-serif-italic":      {0x1D608, 0x1D622, 0, 0, 0},
	"sans-serif-bold-italic": {0x1D63C, 0x1D656, 0x1D790, 0x1D7AA, 0},
	"monospace":              {0x1D670, 0x1D68A, 0, 0, 0x1D7F6},
}

// smpHoles are code points of the SMP block which are unassigned because the
// character already exists in the Letterlike Symbols block.
var smpHoles = map[rune]rune{
	0x1D455: 0x210E, // italic h
	0x1D49D: 0x212C, // script B
	0x1D4A0: 0x2130,
	0x1D4A1: 0x2131,
	0x1D4A3: 0x210B,
	0x1D4A4: 0x2110,
	0x1D4A7: 0x2112,
	0x1D4A8: 0x2133,
	0x1D4AD: 0x211B,
	0x1D4BA: 0x212F, // script e
	0x1D4BC: 0x210A,
	0x1D4C4: 0x2134,
	0x1D506: 0x212D, // fraktur C
	0x1D50B: 0x210C,
	0x1D50C: 0x2111,
	0x1D515: 0x211C,
	0x1D51D: 0x2128,
	0x1D53A: 0x2102, // double-struck C
	0x1D53F: 0x210D,
	0x1D545: 0x2115,
	0x1D547: 0x2119,
	0x1D548: 0x211A,
	0x1D549: 0x211D,
	0x1D551: 0x2124,
}

// Greek symbols outside of the contiguous ranges, with their offset from the
// start of the range.
var smpGreek = map[int]map[rune]rune{
	greekUpper: {0x2207: 0x19, 0x03F4: 0x11},
	greekLower: {0x03D1: 0x1B, 0x03D5: 0x1D, 0x03D6: 0x1F, 0x03F0: 0x1C, 0x03F1: 0x1E, 0x03F5: 0x1A, 0x2202: 0x19},
}

// smpChars returns the placeholder entries for a variant. Variants without
// SMP counterparts get an empty table.
func smpChars(name string) metrics.CharTable {
	chars := make(metrics.CharTable)
	if bases, ok := variantSMP[name]; ok {
		for _, rng := range smpRanges {
			base := bases[rng.kind]
			if base == 0 {
				continue
			}
			for code := rng.lo; code <= rng.hi; code++ {
				if code == 0x3A2 { // unassigned between Ρ and Σ
					continue
				}
				chars[code] = metrics.Placeholder(remapHole(base + code - rng.lo))
			}
			for code, offset := range smpGreek[rng.kind] {
				chars[code] = metrics.Placeholder(base + offset)
			}
		}
	}
	if name == "bold" { // digamma
		chars[0x3DC] = metrics.Placeholder(0x1D7CA)
		chars[0x3DD] = metrics.Placeholder(0x1D7CB)
	}
	return chars
}

func remapHole(smp rune) rune {
	if r, ok := smpHoles[smp]; ok {
		return r
	}
	return smp
}
