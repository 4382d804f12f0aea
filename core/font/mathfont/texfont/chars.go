package texfont

import "github.com/npillmayer/mathmetrics/core/font/metrics"

// Character data is [height, depth, width, italic-correction?, skew?] in em.

var normal = mustParse(map[rune][]float64{
	0x20:   {0, 0, .25},
	0x21:   {.716, 0, .278},
	0x28:   {.75, .25, .389},
	0x29:   {.75, .25, .389},
	0x2B:   {.583, .082, .778},
	0x2C:   {.121, .194, .278},
	0x2D:   {.252, -.179, .333},
	0x2E:   {.12, 0, .278},
	0x2F:   {.75, .25, .5},
	0x30:   {.666, .022, .5},
	0x31:   {.666, 0, .5},
	0x32:   {.666, 0, .5},
	0x33:   {.665, .022, .5},
	0x3A:   {.43, 0, .278},
	0x3D:   {.367, -.133, .778},
	0x41:   {.683, 0, .75},
	0x42:   {.683, 0, .708},
	0x43:   {.705, .022, .722},
	0x5B:   {.75, .25, .278},
	0x5C:   {.75, .25, .5},
	0x5D:   {.75, .25, .278},
	0x61:   {.448, .011, .5},
	0x62:   {.694, .011, .556},
	0x78:   {.431, 0, .528},
	0x7B:   {.75, .25, .5},
	0x7C:   {.75, .249, .278},
	0x7D:   {.75, .25, .5},
	0xA8:   {.669, -.554, .5},
	0x2C6:  {.694, -.531, .5},
	0x2C7:  {.644, -.513, .5},
	0x2C9:  {.59, -.544, .5},
	0x2CA:  {.699, -.505, .5},
	0x2CB:  {.699, -.505, .5},
	0x2D8:  {.694, -.515, .5},
	0x2D9:  {.669, -.549, .278},
	0x2DA:  {.715, -.542, .5},
	0x2DC:  {.668, -.565, .5},
	0x2016: {.75, .25, .5},
	0x2032: {.56, -.043, .275},
	0x2190: {.511, .011, 1},
	0x2191: {.694, .193, .5},
	0x2192: {.511, .011, 1},
	0x2193: {.694, .194, .5},
	0x2194: {.511, .011, 1},
	0x2212: {.583, .082, .778},
	0x221A: {.8, .2, .833, .02},
	0x2223: {.75, .249, .278},
	0x2225: {.75, .25, .5},
	0x2308: {.75, .25, .444},
	0x2309: {.75, .25, .444},
	0x230A: {.75, .25, .444},
	0x230B: {.75, .25, .444},
	0x23D0: {.602, 0, .667},
	0x27E8: {.75, .25, .389},
	0x27E9: {.75, .25, .389},
})

var bold = mustParse(map[rune][]float64{
	0x28: {.75, .249, .447},
	0x29: {.75, .249, .447},
	0x30: {.654, .01, .575},
	0x31: {.655, 0, .575},
	0x41: {.698, 0, .869},
	0x42: {.686, 0, .818},
	0x43: {.698, .011, .831},
	0x61: {.453, .006, .559},
	0x62: {.694, .006, .639},
	0x78: {.444, 0, .607},
})

var italic = mustParse(map[rune][]float64{
	0x41: {.716, 0, .75, 0, .139},
	0x42: {.683, 0, .759, 0, .0833},
	0x43: {.705, .022, .715, .045, .0833},
	0x61: {.441, .01, .529},
	0x62: {.694, .011, .429},
	0x66: {.705, .205, .49, .06, .0833},
	0x78: {.442, .011, .572, 0, .0278},
})

var boldItalic = mustParse(map[rune][]float64{
	0x41: {.711, 0, .869, 0, .16},
	0x42: {.686, 0, .866, 0, .0958},
	0x61: {.452, .008, .633},
	0x78: {.452, .008, .659, 0, .0319},
})

var doubleStruck = mustParse(map[rune][]float64{
	0x41: {.701, 0, .722},
	0x43: {.702, .019, .722},
	0x4E: {.683, .02, .722},
	0x51: {.701, .181, .778},
	0x52: {.683, 0, .722},
	0x5A: {.683, 0, .667},
})

var fraktur = mustParse(map[rune][]float64{
	0x41: {.696, .026, .718},
	0x42: {.691, .027, .884},
	0x61: {.47, .035, .5},
})

var script = mustParse(map[rune][]float64{
	0x41: {.717, .008, .803, .213, .389},
	0x42: {.708, .028, .908, 0, .194},
	0x43: {.728, .026, .666, .153, .278},
})

var sansSerif = mustParse(map[rune][]float64{
	0x41: {.694, 0, .667},
	0x42: {.694, 0, .667},
	0x61: {.46, .01, .481},
})

var monospace = mustParse(map[rune][]float64{
	0x30: {.621, .01, .525},
	0x41: {.623, 0, .525},
	0x61: {.439, .006, .525},
})

var smallop = mustParse(map[rune][]float64{
	0x28:   {.85, .349, .458},
	0x29:   {.85, .349, .458},
	0x2F:   {.85, .349, .578},
	0x5B:   {.85, .349, .417},
	0x5C:   {.85, .349, .578},
	0x5D:   {.85, .349, .417},
	0x7B:   {.85, .349, .583},
	0x7C:   {.602, 0, .278},
	0x7D:   {.85, .349, .583},
	0x2C6:  {.744, -.551, .556},
	0x2DC:  {.722, -.597, .556},
	0x2016: {.602, 0, .778},
	0x2211: {.75, .25, 1.056},
	0x221A: {.85, .35, 1},
	0x222B: {.805, .306, .472, .138},
	0x2308: {.85, .349, .472},
	0x2309: {.85, .349, .472},
	0x230A: {.85, .349, .472},
	0x230B: {.85, .349, .472},
	0x27E8: {.85, .35, .472},
	0x27E9: {.85, .35, .472},
})

var largeop = mustParse(map[rune][]float64{
	0x28:   {1.15, .649, .597},
	0x29:   {1.15, .649, .597},
	0x2F:   {1.15, .649, .811},
	0x5B:   {1.15, .649, .472},
	0x5C:   {1.15, .649, .811},
	0x5D:   {1.15, .649, .472},
	0x7B:   {1.15, .649, .667},
	0x7D:   {1.15, .649, .667},
	0x2C6:  {.772, -.565, 1},
	0x2DC:  {.75, -.611, 1},
	0x2211: {.95, .45, 1.444},
	0x221A: {1.15, .65, 1},
	0x222B: {1.36, .862, .556, .388},
	0x2308: {1.15, .649, .528},
	0x2309: {1.15, .649, .528},
	0x230A: {1.15, .649, .528},
	0x230B: {1.15, .649, .528},
	0x27E8: {1.15, .649, .611},
	0x27E9: {1.15, .649, .611},
})

var size3 = mustParse(map[rune][]float64{
	0x28:   {1.45, .949, .736},
	0x29:   {1.45, .949, .736},
	0x2F:   {1.45, .949, 1.044},
	0x5B:   {1.45, .949, .528},
	0x5C:   {1.45, .949, 1.044},
	0x5D:   {1.45, .949, .528},
	0x7B:   {1.45, .949, .75},
	0x7D:   {1.45, .949, .75},
	0x2C6:  {.772, -.564, 1.444},
	0x2DC:  {.749, -.61, 1.444},
	0x221A: {1.45, .95, 1},
	0x2308: {1.45, .949, .583},
	0x2309: {1.45, .949, .583},
	0x230A: {1.45, .949, .583},
	0x230B: {1.45, .949, .583},
	0x27E8: {1.45, .95, .75},
	0x27E9: {1.45, .95, .75},
})

var size4 = mustParse(map[rune][]float64{
	0x28:   {1.75, 1.249, .792},
	0x29:   {1.75, 1.249, .792},
	0x2F:   {1.75, 1.249, 1.278},
	0x5B:   {1.75, 1.249, .583},
	0x5C:   {1.75, 1.249, 1.278},
	0x5D:   {1.75, 1.249, .583},
	0x7B:   {1.75, 1.249, .806},
	0x7D:   {1.75, 1.249, .806},
	0x2C6:  {.845, -.561, 1.889},
	0x2DC:  {.823, -.583, 1.889},
	0x221A: {1.75, 1.25, 1},
	0x2308: {1.75, 1.249, .639},
	0x2309: {1.75, 1.249, .639},
	0x230A: {1.75, 1.249, .639},
	0x230B: {1.75, 1.249, .639},
	0x239B: {1.154, .655, .875},
	0x239C: {.6, 0, .875},
	0x239D: {1.165, .644, .875},
	0x239E: {1.154, .655, .875},
	0x239F: {.6, 0, .875},
	0x23A0: {1.165, .644, .875},
	0x23A1: {1.154, .645, .667},
	0x23A2: {.602, 0, .667},
	0x23A3: {1.155, .644, .667},
	0x23A4: {1.154, .645, .667},
	0x23A5: {.602, 0, .667},
	0x23A6: {1.155, .644, .667},
	0x23A7: {.899, .01, .889},
	0x23A8: {1.16, .66, .889},
	0x23A9: {.01, .899, .889},
	0x23AA: {.29, .015, .889},
	0x23AB: {.899, .01, .889},
	0x23AC: {1.16, .66, .889},
	0x23AD: {.01, .899, .889},
	0x23B7: {.935, .885, 1.056},
	0x27E8: {1.75, 1.248, .806},
	0x27E9: {1.75, 1.248, .806},
	0xE000: {.625, .014, 1.056},
	0xE001: {.605, .014, 1.056},
})

var calligraphic = mustParse(map[rune][]float64{
	0x41: {.728, .05, .798, 0, .194},
	0x42: {.705, .022, .657, 0, .139},
	0x43: {.705, .025, .527, 0, .139},
})

var oldstyle = mustParse(map[rune][]float64{
	0x30: {.452, .022, .5},
	0x31: {.453, 0, .5},
	0x32: {.453, 0, .5},
	0x33: {.452, .216, .5},
})

var texVariant = mustParse(map[rune][]float64{
	0x2C6:  {.845, -.561, 2.333, .013},
	0x2DC:  {.899, -.628, 2.333},
	0x3F0:  {.434, .006, .667, .067},
	0x210F: {.695, .013, .54, .022},
	0x2216: {.43, .023, .778},
})

// mustParse converts static character data. Malformed data is a programming
// error.
func mustParse(raw map[rune][]float64) metrics.CharTable {
	t, err := metrics.ParseCharTable(raw)
	if err != nil {
		panic(err)
	}
	return t
}
