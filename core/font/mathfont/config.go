package mathfont

import (
	"github.com/npillmayer/mathmetrics/core/dimen"
	"github.com/npillmayer/schuko/gconf"
)

// ConfigFontSize is the configuration key for the default font size.
const ConfigFontSize = "math-font-size"

// DefaultSize returns the configured default font size, or 10pt if no valid
// size is configured.
func DefaultSize() dimen.Dimen {
	fallback := 10 * dimen.PT
	s := gconf.GetString(ConfigFontSize)
	if s == "" {
		return fallback
	}
	size, ispcnt, err := dimen.ParseDimen(s)
	if err != nil || ispcnt || size <= 0 {
		tracer().Errorf("configured %s = %q is not a font size, using %s", ConfigFontSize, s, fallback)
		return fallback
	}
	return size
}
