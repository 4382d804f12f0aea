package variants

import (
	"strings"

	xfont "golang.org/x/image/font"
)

// StyleAndWeight guesses the style and weight of a variant from its name.
// Names are split at dashes, so "bold-italic" is italic and bold, and the
// TeX-internal "-tex-mathit" is italic.
func StyleAndWeight(name string) (xfont.Style, xfont.Weight) {
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	for _, part := range strings.Split(strings.ToLower(name), "-") {
		switch part {
		case "italic", "mathit":
			style = xfont.StyleItalic
		case "oblique", "slanted":
			style = xfont.StyleOblique
		case "bold":
			weight = xfont.WeightBold
		case "light":
			weight = xfont.WeightLight
		}
	}
	return style, weight
}

// StyleAndWeight returns the style and weight of v, derived from its name.
func (v *Variant) StyleAndWeight() (xfont.Style, xfont.Weight) {
	return StyleAndWeight(v.name)
}

// Match returns the names of all variants with a given style and weight, in
// creation order. Oblique matches italic and vice versa.
func (r *Registry) Match(style xfont.Style, weight xfont.Weight) []string {
	var names []string
	for _, name := range r.order {
		s, w := StyleAndWeight(name)
		if matchStyle(s, style) && w == weight {
			names = append(names, name)
		}
	}
	return names
}

func matchStyle(s, style xfont.Style) bool {
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		return s == xfont.StyleItalic || s == xfont.StyleOblique
	}
	return s == style
}
