package mathfont

import (
	"testing"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/dimen"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/mathmetrics/core/font/variants"
	"github.com/npillmayer/mathmetrics/core/parameters"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func testDefaults() *Defaults {
	return &Defaults{
		Params:          parameters.Defaults(),
		SizeVariants:    []string{"normal", "-smallop", "-largeop"},
		StretchVariants: []string{"-largeop"},
		Variants: []variants.Spec{
			{Name: "normal"},
			{Name: "bold", Inherit: "normal"},
			{Name: "italic", Inherit: "normal"},
			{Name: "bold-italic", Inherit: "italic", Link: "bold"},
			{Name: "-smallop", Inherit: "normal"},
			{Name: "-largeop", Inherit: "normal"},
		},
		Delimiters: metrics.DelimiterTable{
			0x28: {Dir: metrics.Vertical, Sizes: []float64{1, 1.2, 1.8}, Stretch: []rune{0x239B, 0x239C, 0x239D}},
			0x2016: {Dir: metrics.Vertical, Sizes: []float64{.602, 1}, Schar: []rune{0, 0x2225},
				Variants: []int{1, 0}, Stretch: []rune{0, 0x2225, 0}},
		},
		Chars: map[string]metrics.CharTable{
			"normal":   {0x28: {H: .75, D: .25, W: .389}, 0x41: {H: .683, W: .75}, 0x2225: {H: .75, D: .25, W: .5}},
			"bold":     {0x41: {H: .686, W: .869}},
			"italic":   {0x41: {H: .683, W: .75, SK: .139}},
			"-smallop": {0x28: {H: .85, D: .349, W: .458}, 0x2016: {H: .602, W: .556}},
			"-largeop": {0x28: {H: 1.15, D: .649, W: .597}},
		},
		Remaps: map[string]Remap{
			RemapMo: {0x2D: "−"},
		},
	}
}

func TestConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(testDefaults())
	require.NoError(t, err)
	c, ok, err := f.Char("bold-italic", 0x41)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, .869, c.W, "bold-italic must see bold via its link")
	c, _, _ = f.Char("-largeop", 0x41)
	assert.Equal(t, .75, c.W)
	assert.Equal(t, parameters.Defaults(), f.Params())
	assert.Equal(t, []string{"-smallop", "-largeop"}, f.VariantNames("-"))
	s, ok := f.RemappedChar(RemapMo, 0x2D)
	assert.True(t, ok)
	assert.Equal(t, "−", s)
	_, ok = f.RemappedChar(RemapAccent, 0x300)
	assert.False(t, ok)
}

func TestInstancesAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	defaults := testDefaults()
	f1, err := New(defaults)
	require.NoError(t, err)
	f2, err := New(defaults)
	require.NoError(t, err)
	require.NoError(t, f1.DefineChars("bold", metrics.CharTable{0x41: {H: 1, W: 1}, 0x42: {H: 1, W: 1}}))
	require.NoError(t, f1.CreateVariant("fraktur", "normal", ""))
	require.NoError(t, f1.DefineDelimiters(metrics.DelimiterTable{0x28: {Dir: metrics.Horizontal}}))
	f1.DefineRemap(RemapMo, Remap{0x2A: "∗"})
	//
	c, _, _ := f2.Char("bold-italic", 0x41)
	assert.Equal(t, .869, c.W)
	_, ok, _ := f2.Char("bold", 0x42)
	assert.False(t, ok)
	_, ok = f2.Variant("fraktur")
	assert.False(t, ok)
	d, _ := f2.Delimiter(0x28)
	assert.Equal(t, metrics.Vertical, d.Dir)
	_, ok = f2.RemappedChar(RemapMo, 0x2A)
	assert.False(t, ok)
	// the defaults themselves are untouched
	assert.Equal(t, .869, defaults.Chars["bold"][0x41].W)
	assert.Len(t, defaults.Chars["bold"], 1)
}

func TestSizeVariantsMustExist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	_, err := New(testDefaults(), WithSizeVariants("normal", "-size3"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = New(testDefaults(), WithStretchVariants("-size4"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	d := testDefaults()
	d.Chars["fraktur"] = metrics.CharTable{0x41: {H: 1, W: 1}}
	_, err = New(d)
	assert.Equal(t, core.EMISSING, core.Code(err), "characters for an unknown variant")
	//
	d = testDefaults()
	d.Delimiters[0x5B] = metrics.DelimiterEntry{Dir: metrics.Vertical, HDW: []float64{1}}
	_, err = New(d)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestParameterOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	ps, err := parameters.Defaults().WithOverrides(map[string]float64{"axis_height": .26})
	require.NoError(t, err)
	f, err := New(testDefaults(), WithParameters(ps))
	require.NoError(t, err)
	assert.Equal(t, .26, f.Params().AxisHeight)
	p := f.Params()
	p.AxisHeight = 0
	assert.Equal(t, .26, f.Params().AxisHeight, "params are read-only")
}

func TestDelimiterQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(testDefaults())
	require.NoError(t, err)
	assert.Equal(t, []rune{0x28, 0x2016}, f.DelimiterCodes())
	name, err := f.SizeVariant(0x28, 2)
	require.NoError(t, err)
	assert.Equal(t, "-largeop", name)
	name, err = f.SizeVariant(0x2016, 0)
	require.NoError(t, err)
	assert.Equal(t, "-smallop", name)
	name, err = f.StretchVariant(0x28, metrics.Extender)
	require.NoError(t, err)
	assert.Equal(t, "-largeop", name)
	//
	v, c, m, err := f.SizeGlyph(0x28, 1)
	require.NoError(t, err)
	assert.Equal(t, "-smallop", v)
	assert.Equal(t, rune(0x28), c)
	assert.Equal(t, .458, m.W)
	v, c, m, err = f.SizeGlyph(0x2016, 1)
	require.NoError(t, err)
	assert.Equal(t, "normal", v)
	assert.Equal(t, rune(0x2225), c)
	assert.Equal(t, .5, m.W)
	_, _, _, err = f.SizeGlyph(0x28, 3)
	assert.Equal(t, core.ERANGE, core.Code(err))
	assert.Equal(t, []string{"normal", "-smallop", "-largeop"}, f.SizeVariants())
}

func TestCharScaled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(testDefaults())
	require.NoError(t, err)
	h, d, w, err := f.CharScaled("normal", 0x28, 10*dimen.BP)
	require.NoError(t, err)
	assert.Equal(t, dimen.FromEm(.75, 10*dimen.BP), h)
	assert.Equal(t, dimen.FromEm(.25, 10*dimen.BP), d)
	assert.Equal(t, dimen.FromEm(.389, 10*dimen.BP), w)
	_, _, _, err = f.CharScaled("normal", 0x42, 10*dimen.BP)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, _, _, err = f.CharScaled("gothic", 0x41, 10*dimen.BP)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	box, adv, err := f.CharBounds("normal", 0x28, 10*dimen.BP)
	require.NoError(t, err)
	assert.Equal(t, fixed.Int26_6(249), adv)
	assert.Equal(t, fixed.Int26_6(-480), box.Min.Y)
	assert.Equal(t, fixed.Int26_6(160), box.Max.Y)
	assert.Equal(t, adv, box.Max.X)
	_, _, err = f.CharBounds("normal", 0x42, 10*dimen.BP)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestMathAlphanumericOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathmetrics.font")
	defer teardown()
	//
	f, err := New(testDefaults(), WithMathAlphanumerics())
	require.NoError(t, err)
	c, _, _ := f.Char("bold", 0x42)
	smp, ok := c.SMP()
	assert.True(t, ok)
	assert.Equal(t, rune(0x1D401), smp)
	c, _, _ = f.Char("bold", 0x41)
	assert.False(t, c.IsPlaceholder(), "defined characters replace placeholders")
	_, err = f.Metrics("bold", 0x42)
	assert.Equal(t, core.EMISSING, core.Code(err), "placeholder without metrics")
	m, err := f.Metrics("bold", 0x41)
	require.NoError(t, err)
	assert.Equal(t, .869, m.W)
}

func TestDefaultSize(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		ConfigFontSize: "12pt",
	})
	defer teardown()
	//
	assert.Equal(t, 12*dimen.PT, DefaultSize())
}

func TestDefaultSizeFallback(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		ConfigFontSize: "80%",
	})
	defer teardown()
	//
	assert.Equal(t, 10*dimen.PT, DefaultSize())
}
