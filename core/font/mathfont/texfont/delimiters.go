package texfont

import "github.com/npillmayer/mathmetrics/core/font/metrics"

var (
	sizes5 = []float64{1, 1.2, 1.8, 2.4, 3}
	sizes6 = []float64{.5, .556, 1, 1.444, 1.889, 2.333}
)

// Parts are ordered begin, extender, end, middle; 0 is a missing part.
// Variant indices refer to the size-variant list
// [normal, -smallop, -largeop, -size3, -size4, -tex-variant].
var defaultDelimiters = metrics.DelimiterTable{
	0x28: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x239B, 0x239C, 0x239D}},
	0x29: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x239E, 0x239F, 0x23A0}},
	0x2D: {C: 0x2212, Dir: metrics.Horizontal, Stretch: []rune{0, 0x2212, 0},
		HDW: []float64{.583, .082, .778}},
	0x2F: {Dir: metrics.Vertical, Sizes: sizes5},
	0x3D: {Dir: metrics.Horizontal, Stretch: []rune{0, 0x3D, 0}, HDW: []float64{.367, -.133, .778}},
	0x5B: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23A1, 0x23A2, 0x23A3}},
	0x5C: {Dir: metrics.Vertical, Sizes: sizes5},
	0x5D: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23A4, 0x23A5, 0x23A6}},
	0x7B: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23A7, 0x23AA, 0x23A9, 0x23A8}},
	0x7C: {Dir: metrics.Vertical, Sizes: []float64{.602, 1}, Schar: []rune{0, 0x2223},
		Variants: []int{1, 0}, Stretch: []rune{0, 0x2223, 0}, StretchV: []int{0, 0, 0},
		HDW: []float64{.75, .25, .278}},
	0x7D: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23AB, 0x23AA, 0x23AD, 0x23AC}},
	0x2C6: {Dir: metrics.Horizontal, Sizes: sizes6},
	0x2DC: {Dir: metrics.Horizontal, Sizes: sizes6},
	0x302: {C: 0x2C6, Dir: metrics.Horizontal, Sizes: sizes6},
	0x303: {C: 0x2DC, Dir: metrics.Horizontal, Sizes: sizes6},
	0x2016: {Dir: metrics.Vertical, Sizes: []float64{.602, 1}, Schar: []rune{0, 0x2225},
		Variants: []int{1, 0}, Stretch: []rune{0, 0x2225, 0}, HDW: []float64{.75, .25, .5}},
	0x2190: {Dir: metrics.Horizontal, Sizes: []float64{1}, Stretch: []rune{0x2190, 0x2212, 0},
		HDW: []float64{.511, .011, 1}, Min: 1},
	0x2191: {Dir: metrics.Vertical, Sizes: []float64{.888}, Stretch: []rune{0x2191, 0x23D0, 0}},
	0x2192: {Dir: metrics.Horizontal, Sizes: []float64{1}, Stretch: []rune{0, 0x2212, 0x2192},
		HDW: []float64{.511, .011, 1}, Min: 1},
	0x2193: {Dir: metrics.Vertical, Sizes: []float64{.888}, Stretch: []rune{0, 0x23D0, 0x2193}},
	0x2194: {Dir: metrics.Horizontal, Sizes: []float64{1}, Stretch: []rune{0x2190, 0x2212, 0x2192},
		HDW: []float64{.511, .011, 1}, Min: 1},
	0x2212: {Dir: metrics.Horizontal, Stretch: []rune{0, 0x2212, 0}, HDW: []float64{.583, .082, .778}},
	0x221A: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0xE001, 0xE000, 0x23B7},
		HDW: []float64{.85, .35, 1.056}},
	0x2223: {Dir: metrics.Vertical, Stretch: []rune{0, 0x2223, 0}, HDW: []float64{.75, .25, .278}},
	0x2225: {Dir: metrics.Vertical, Stretch: []rune{0, 0x2225, 0}, HDW: []float64{.75, .25, .5}},
	0x2308: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23A1, 0x23A2, 0}},
	0x2309: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0x23A4, 0x23A5, 0}},
	0x230A: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0, 0x23A2, 0x23A3}},
	0x230B: {Dir: metrics.Vertical, Sizes: sizes5, Stretch: []rune{0, 0x23A5, 0x23A6}},
	0x2329: {C: 0x27E8, Dir: metrics.Vertical, Sizes: sizes5},
	0x232A: {C: 0x27E9, Dir: metrics.Vertical, Sizes: sizes5},
	0x27E8: {Dir: metrics.Vertical, Sizes: sizes5},
	0x27E9: {Dir: metrics.Vertical, Sizes: sizes5},
}
