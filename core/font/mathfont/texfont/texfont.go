/*
Package texfont provides the default tables of a math font with the metrics
of the Computer Modern / TeX fonts.

The tables are static data, initialized once and never modified. New copies
them into every font it creates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package texfont

import (
	"github.com/npillmayer/mathmetrics/core/font/mathfont"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/mathmetrics/core/font/variants"
	"github.com/npillmayer/mathmetrics/core/parameters"
)

// New creates a math font with TeX metrics.
func New(opts ...mathfont.Option) (*mathfont.Font, error) {
	return mathfont.New(&defaults, opts...)
}

// Variants returns the variant specs of the TeX font, in creation order.
func Variants() []variants.Spec {
	return append([]variants.Spec(nil), defaultVariants...)
}

var defaults = mathfont.Defaults{
	Params:          parameters.Defaults(),
	SizeVariants:    []string{"normal", "-smallop", "-largeop", "-size3", "-size4", "-tex-variant"},
	StretchVariants: []string{"-size4"},
	Variants:        defaultVariants,
	Delimiters:      defaultDelimiters,
	Chars: map[string]metrics.CharTable{
		"normal":            normal,
		"bold":              bold,
		"italic":            italic,
		"bold-italic":       boldItalic,
		"double-struck":     doubleStruck,
		"fraktur":           fraktur,
		"script":            script,
		"sans-serif":        sansSerif,
		"monospace":         monospace,
		"-smallop":          smallop,
		"-largeop":          largeop,
		"-size3":            size3,
		"-size4":            size4,
		"-tex-calligraphic": calligraphic,
		"-tex-oldstyle":     oldstyle,
		"-tex-variant":      texVariant,
	},
	Remaps: map[string]mathfont.Remap{
		mathfont.RemapAccent: accentMap,
		mathfont.RemapMo:     {0x2D: "−"},
		mathfont.RemapMn:     {0x2D: "−"},
	},
}

var defaultVariants = []variants.Spec{
	{Name: "normal"},
	{Name: "bold", Inherit: "normal"},
	{Name: "italic", Inherit: "normal"},
	{Name: "bold-italic", Inherit: "italic", Link: "bold"},
	{Name: "double-struck", Inherit: "bold"},
	{Name: "fraktur", Inherit: "normal"},
	{Name: "bold-fraktur", Inherit: "bold", Link: "fraktur"},
	{Name: "script", Inherit: "italic"},
	{Name: "bold-script", Inherit: "bold-italic", Link: "script"},
	{Name: "sans-serif", Inherit: "normal"},
	{Name: "bold-sans-serif", Inherit: "bold", Link: "sans-serif"},
	{Name: "sans-serif-italic", Inherit: "italic", Link: "sans-serif"},
	{Name: "sans-serif-bold-italic", Inherit: "bold-italic", Link: "bold-sans-serif"},
	{Name: "monospace", Inherit: "normal"},
	{Name: "-smallop", Inherit: "normal"},
	{Name: "-largeop", Inherit: "normal"},
	{Name: "-size3", Inherit: "normal"},
	{Name: "-size4", Inherit: "normal"},
	{Name: "-tex-calligraphic", Inherit: "italic"},
	{Name: "-tex-bold-calligraphic", Inherit: "bold-italic"},
	{Name: "-tex-oldstyle", Inherit: "normal"},
	{Name: "-tex-bold-oldstyle", Inherit: "bold"},
	{Name: "-tex-mathit", Inherit: "italic"},
	{Name: "-tex-variant", Inherit: "normal"},
}

var accentMap = mathfont.Remap{
	0x0300: "ˋ", // grave
	0x0301: "ˊ", // acute
	0x0302: "ˆ", // circumflex
	0x0303: "˜", // tilde
	0x0304: "ˉ", // macron
	0x0306: "˘", // breve
	0x0307: "˙", // dot
	0x0308: "¨", // diaeresis
	0x030A: "˚", // ring
	0x030C: "ˇ", // caron
	0x2192: "⃗",
	0x2032: "'",
	0x2033: "''",
	0x2034: "'''",
	0x2035: "`",
	0x2036: "``",
	0x2037: "```",
	0x2057: "''''",
	0x20D0: "↼",
	0x20D1: "⇀",
	0x20D6: "←",
	0x20E1: "↔",
	0x20F0: "*",
	0x20DB: "...",
	0x20DC: "....",
	0x20EC: "⇁",
	0x20ED: "↽",
	0x20EE: "←",
	0x20EF: "→",
}
