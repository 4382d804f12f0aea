package metrics

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"strings"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/dimen"
	"golang.org/x/image/math/fixed"
)

// Well-known keys of CharOptions.
const (
	OptFont    = "f"       // font suffix for the CSS/SVG output, a string
	OptSMP     = "smp"     // code point in the Math Alphanumeric block, a rune
	OptFlip    = "flip"    // glyph must be drawn mirrored, a bool
	OptUnknown = "unknown" // metrics are estimated, a bool
)

// CharOptions are sparse rendering hints for a character.
type CharOptions map[string]interface{}

// CharEntry holds the metrics of a single character, in units of em.
// IC (italic correction) and SK (skew) are optional and read as 0 if absent.
type CharEntry struct {
	H, D, W float64
	IC, SK  float64
	Options CharOptions
}

// NewChar creates a character entry from its raw form
//
//	[height, depth, width, italic-correction?, skew?]
//
// as found in font data files. Any other number of values results in an
// error with code core.EINVALID.
func NewChar(data []float64, opts CharOptions) (CharEntry, error) {
	if len(data) < 3 || len(data) > 5 {
		tracer().Errorf("character data has %d values, need 3 to 5", len(data))
		return CharEntry{}, core.Error(core.EINVALID,
			"character data must have 3 to 5 values, has %d", len(data))
	}
	c := CharEntry{H: data[0], D: data[1], W: data[2], Options: maps.Clone(opts)}
	if len(data) > 3 {
		c.IC = data[3]
	}
	if len(data) > 4 {
		c.SK = data[4]
	}
	return c, c.Validate()
}

// Placeholder creates an entry without metrics, which redirects to code
// point smp of the Math Alphanumeric block.
func Placeholder(smp rune) CharEntry {
	return CharEntry{Options: CharOptions{OptSMP: smp}}
}

// Validate checks that all metric values are finite numbers.
func (c CharEntry) Validate() error {
	for i, v := range [...]float64{c.H, c.D, c.W, c.IC, c.SK} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.Error(core.EINVALID, "character metric #%d is %v", i, v)
		}
	}
	return nil
}

// Clone returns a copy of c which does not share its option map with c.
func (c CharEntry) Clone() CharEntry {
	c.Options = maps.Clone(c.Options)
	return c
}

// Option returns the rendering hint stored under key.
func (c CharEntry) Option(key string) (interface{}, bool) {
	v, ok := c.Options[key]
	return v, ok
}

// SMP returns the Math Alphanumeric code point a placeholder redirects to.
func (c CharEntry) SMP() (rune, bool) {
	v, ok := c.Options[OptSMP]
	if !ok {
		return 0, false
	}
	r, ok := v.(rune)
	return r, ok
}

// IsPlaceholder is true for entries without metrics of their own.
func (c CharEntry) IsPlaceholder() bool {
	_, ok := c.SMP()
	return ok && c.H == 0 && c.D == 0 && c.W == 0
}

// Equal reports whether c and other have the same metrics and options.
func (c CharEntry) Equal(other CharEntry) bool {
	if c.H != other.H || c.D != other.D || c.W != other.W || c.IC != other.IC || c.SK != other.SK {
		return false
	}
	if len(c.Options) == 0 && len(other.Options) == 0 {
		return true
	}
	return reflect.DeepEqual(c.Options, other.Options)
}

// Scaled returns height, depth and width for a font of size fontsize.
func (c CharEntry) Scaled(fontsize dimen.Dimen) (h, d, w dimen.Dimen) {
	return dimen.FromEm(c.H, fontsize), dimen.FromEm(c.D, fontsize), dimen.FromEm(c.W, fontsize)
}

// Advance returns the width of c in 26.6 fixed point for a font of size ppem.
func (c CharEntry) Advance(ppem fixed.Int26_6) fixed.Int26_6 {
	return emToFixed(c.W, ppem)
}

// Bounds returns the box of c for a font of size ppem, relative to the glyph
// origin on the baseline. As with golang.org/x/image/font, y grows downwards:
// Min.Y is minus the height, Max.Y is the depth.
func (c CharEntry) Bounds(ppem fixed.Int26_6) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -emToFixed(c.H, ppem)},
		Max: fixed.Point26_6{X: emToFixed(c.W, ppem), Y: emToFixed(c.D, ppem)},
	}
}

func emToFixed(em float64, ppem fixed.Int26_6) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(em * float64(ppem)))
}

func (c CharEntry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%g %g %g", c.H, c.D, c.W)
	if c.IC != 0 || c.SK != 0 {
		fmt.Fprintf(&b, " ic=%g sk=%g", c.IC, c.SK)
	}
	if len(c.Options) > 0 {
		fmt.Fprintf(&b, " %v", map[string]interface{}(c.Options))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Tables ----------------------------------------------------------------

// CharTable maps character codes to character entries.
type CharTable map[rune]CharEntry

// Clone returns a deep copy of t.
func (t CharTable) Clone() CharTable {
	if t == nil {
		return nil
	}
	c := make(CharTable, len(t))
	for code, entry := range t {
		c[code] = entry.Clone()
	}
	return c
}

// Validate checks every entry of t.
func (t CharTable) Validate() error {
	for code, entry := range t {
		if err := entry.Validate(); err != nil {
			return core.WrapError(err, core.EINVALID, "character U+%04X", code)
		}
	}
	return nil
}

// ParseCharTable converts raw character data, keyed by character code, into
// a CharTable.
func ParseCharTable(raw map[rune][]float64) (CharTable, error) {
	t := make(CharTable, len(raw))
	for code, data := range raw {
		c, err := NewChar(data, nil)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "character U+%04X", code)
		}
		t[code] = c
	}
	return t, nil
}
