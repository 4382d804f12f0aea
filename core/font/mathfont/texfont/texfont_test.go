package texfont

import (
	"testing"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/dimen"
	"github.com/npillmayer/mathmetrics/core/font/mathfont"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func TestNewTeXFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New()
	require.NoError(t, err)
	for _, name := range f.SizeVariants() {
		_, ok := f.Variant(name)
		assert.True(t, ok, "size variant %s must exist", name)
	}
	assert.Equal(t, len(Variants()), len(f.VariantNames("")))
	assert.Equal(t, []string{"-tex-calligraphic", "-tex-bold-calligraphic", "-tex-oldstyle",
		"-tex-bold-oldstyle", "-tex-mathit", "-tex-variant"}, f.VariantNames("-tex-"))
}

func TestSizeStepsHaveGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New()
	require.NoError(t, err)
	for _, code := range f.DelimiterCodes() {
		d, _ := f.Delimiter(code)
		for i := range d.Sizes {
			v, c, _, err := f.SizeGlyph(code, i)
			assert.NoError(t, err, "size %d of U+%04X from %s (U+%04X)", i, code, v, c)
		}
		for p := metrics.Begin; p <= metrics.Middle; p++ {
			part := d.Part(p)
			if part == 0 {
				continue
			}
			v, err := f.StretchVariant(code, p)
			require.NoError(t, err)
			_, ok, err := f.Char(v, part)
			require.NoError(t, err)
			assert.True(t, ok, "part U+%04X of U+%04X missing in %s", part, code, v)
		}
	}
}

func TestParenthesis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New()
	require.NoError(t, err)
	name, err := f.SizeVariant(0x28, 1)
	require.NoError(t, err)
	assert.Equal(t, "-smallop", name)
	v, _, m, err := f.SizeGlyph(0x28, 4)
	require.NoError(t, err)
	assert.Equal(t, "-size4", v)
	assert.Equal(t, .792, m.W)
	v, c, m, err := f.SizeGlyph(0x28, 5)
	assert.Equal(t, core.ERANGE, core.Code(err))
	assert.Empty(t, v, "no variant on error")
	assert.Equal(t, rune(0), c)
	assert.Equal(t, metrics.CharEntry{}, m)
	// bar: size step 0 comes from -smallop
	v, c, _, err = f.SizeGlyph(0x7C, 0)
	require.NoError(t, err)
	assert.Equal(t, "-smallop", v)
	assert.Equal(t, rune(0x7C), c)
	v, c, _, err = f.SizeGlyph(0x7C, 1)
	require.NoError(t, err)
	assert.Equal(t, "normal", v)
	assert.Equal(t, rune(0x2223), c)
	// wide hat uses all six size variants
	v, _, m, err = f.SizeGlyph(0x302, 5)
	require.NoError(t, err)
	assert.Equal(t, "-tex-variant", v)
	assert.Equal(t, 2.333, m.W)
}

func TestVariantChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New()
	require.NoError(t, err)
	c, _, err := f.Char("bold-italic", 0x30)
	require.NoError(t, err)
	assert.Equal(t, .575, c.W, "digit from bold via link")
	c, _, _ = f.Char("bold-italic", 0x41)
	assert.Equal(t, .16, c.SK, "own entry wins over link")
	c, _, _ = f.Char("-tex-mathit", 0x66)
	assert.Equal(t, .06, c.IC, "inherited from italic")
	c, _, _ = f.Char("script", 0x78)
	assert.Equal(t, .572, c.W, "inherited from italic")
	_, ok, err := f.Char("monospace", 0x3F0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"bold-italic", "sans-serif-bold-italic"},
		f.MatchVariants(xfont.StyleItalic, xfont.WeightBold))
}

func TestLinkPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New()
	require.NoError(t, err)
	require.NoError(t, f.DefineChars("bold", metrics.CharTable{0x3B1: {H: .452, D: .008, W: .761}}))
	c, ok, err := f.Char("bold-italic", 0x3B1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, .761, c.W)
	g, err := New()
	require.NoError(t, err)
	_, ok, _ = g.Char("bold-italic", 0x3B1)
	assert.False(t, ok, "fonts do not share tables")
}

func TestRemaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(mathfont.WithMathAlphanumerics())
	require.NoError(t, err)
	s, ok := f.RemappedChar(mathfont.RemapAccent, 0x302)
	assert.True(t, ok)
	assert.Equal(t, "ˆ", s)
	s, _ = f.RemappedChar(mathfont.RemapMn, 0x2D)
	assert.Equal(t, "−", s)
}

func TestPlaceholdersNeedMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(mathfont.WithMathAlphanumerics())
	require.NoError(t, err)
	size := 10 * dimen.PT
	_, _, _, err = f.CharScaled("bold", 'Z', size)
	assert.Equal(t, core.EMISSING, core.Code(err), "'Z' maps to U+1D419, which has no metrics")
	_, _, err = f.CharBounds("bold", 'Z', size)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, _, _, err = f.CharScaled("italic", 'h', size)
	assert.Equal(t, core.EMISSING, core.Code(err), "'h' maps to U+210E")
	// defined metrics for the SMP character make the placeholder usable
	require.NoError(t, f.DefineChars("bold", metrics.CharTable{0x1D419: {H: .686, W: .703}}))
	_, _, w, err := f.CharScaled("bold", 'Z', size)
	require.NoError(t, err)
	assert.Equal(t, dimen.FromEm(.703, size), w)
	// characters with own metrics are not redirected
	_, _, w, err = f.CharScaled("bold", 'A', size)
	require.NoError(t, err)
	assert.Equal(t, dimen.FromEm(.869, size), w)
}
