package mathfont

import (
	"math"
	"sort"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/dimen"
	"github.com/npillmayer/mathmetrics/core/font/delimiters"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/mathmetrics/core/font/variants"
	"github.com/npillmayer/mathmetrics/core/parameters"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Defaults are the tables a Font is created from. Packages for concrete fonts
// hold them as static data; New copies them, so they are never modified by a
// Font.
type Defaults struct {
	Params          parameters.ParameterSet
	SizeVariants    []string // variants supplying the size steps of delimiters
	StretchVariants []string // variants supplying the parts of delimiters
	Variants        []variants.Spec
	Delimiters      metrics.DelimiterTable
	Chars           map[string]metrics.CharTable // keyed by variant name
	Remaps          map[string]Remap
}

// Font holds the metric tables of a math font.
type Font struct {
	params   parameters.ParameterSet
	registry *variants.Registry
	delims   *delimiters.Table
	remaps   map[string]Remap
}

// Option configures the creation of a Font.
type Option func(*options)

type options struct {
	params          *parameters.ParameterSet
	sizeVariants    []string
	stretchVariants []string
	registryOpts    []variants.Option
}

// WithParameters replaces the default parameter set as a whole.
func WithParameters(ps parameters.ParameterSet) Option {
	return func(o *options) {
		o.params = &ps
	}
}

// WithSizeVariants replaces the default list of size variants.
func WithSizeVariants(names ...string) Option {
	return func(o *options) {
		o.sizeVariants = names
	}
}

// WithStretchVariants replaces the default list of stretch variants.
func WithStretchVariants(names ...string) Option {
	return func(o *options) {
		o.stretchVariants = names
	}
}

// WithMathAlphanumerics lets the standard variants map letters and digits to
// the Mathematical Alphanumeric Symbols block. See variants.WithMathAlphanumerics.
func WithMathAlphanumerics() Option {
	return func(o *options) {
		o.registryOpts = append(o.registryOpts, variants.WithMathAlphanumerics())
	}
}

// New creates a font from a set of default tables. The order of
// initialization is: parameters, size-variant lists, variants, delimiters,
// characters, remaps. Every size and stretch variant must name a variant.
func New(defaults *Defaults, opts ...Option) (*Font, error) {
	if defaults == nil {
		defaults = &Defaults{Params: parameters.Defaults()}
	}
	o := options{
		sizeVariants:    defaults.SizeVariants,
		stretchVariants: defaults.StretchVariants,
	}
	for _, opt := range opts {
		opt(&o)
	}
	f := &Font{
		params:   defaults.Params,
		registry: variants.NewRegistry(o.registryOpts...),
		delims:   delimiters.NewTable(o.sizeVariants, o.stretchVariants),
		remaps:   make(map[string]Remap),
	}
	if o.params != nil {
		f.params = *o.params
	}
	if err := f.registry.CreateAll(defaults.Variants); err != nil {
		return nil, err
	}
	for _, list := range [][]string{o.sizeVariants, o.stretchVariants} {
		for _, name := range list {
			if !f.registry.Has(name) {
				tracer().Errorf("delimiter variant %q is not a variant of the font", name)
				return nil, core.Error(core.EMISSING, "delimiter variant %q is not a variant of the font", name)
			}
		}
	}
	if err := f.delims.Define(defaults.Delimiters); err != nil {
		return nil, err
	}
	for _, name := range sortedKeys(defaults.Chars) {
		if err := f.registry.Define(name, defaults.Chars[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(defaults.Remaps) {
		f.DefineRemap(name, defaults.Remaps[name])
	}
	tracer().Infof("math font created with %d variants and %d delimiters",
		f.registry.Len(), f.delims.Len())
	return f, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Definitions -----------------------------------------------------------

// CreateVariant registers a new variant, see variants.Registry.Create.
func (f *Font) CreateVariant(name, inherit, link string) error {
	return f.registry.Create(name, inherit, link)
}

// CreateVariants registers variants in list order.
func (f *Font) CreateVariants(specs []variants.Spec) error {
	return f.registry.CreateAll(specs)
}

// DefineChars merges characters into a variant and the variants linked to it.
func (f *Font) DefineChars(name string, chars metrics.CharTable) error {
	return f.registry.Define(name, chars)
}

// DefineDelimiters merges delimiter entries into the font.
func (f *Font) DefineDelimiters(entries metrics.DelimiterTable) error {
	return f.delims.Define(entries)
}

// --- Queries ---------------------------------------------------------------

// Char resolves character code in variant name. ok is false if the code is
// not defined anywhere in the variant's fallback chain; it is an error if
// the variant is not registered.
func (f *Font) Char(name string, code rune) (c metrics.CharEntry, ok bool, err error) {
	return f.registry.Char(name, code)
}

// CharScaled returns the metrics of a character for a font of size fontsize.
// Undefined characters are an error, see Metrics.
func (f *Font) CharScaled(name string, code rune, fontsize dimen.Dimen) (h, d, w dimen.Dimen, err error) {
	c, err := f.Metrics(name, code)
	if err != nil {
		return 0, 0, 0, err
	}
	h, d, w = c.Scaled(fontsize)
	return h, d, w, nil
}

// CharBounds returns the box and the advance of a character for a font of
// size fontsize, in 26.6 fixed point pixels (1px = 1bp). Undefined
// characters are an error, see Metrics.
func (f *Font) CharBounds(name string, code rune, fontsize dimen.Dimen) (fixed.Rectangle26_6, fixed.Int26_6, error) {
	c, err := f.Metrics(name, code)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, err
	}
	ppem := fixed.Int26_6(math.Round(float64(fontsize) / float64(dimen.BP) * 64))
	return c.Bounds(ppem), c.Advance(ppem), nil
}

// Metrics resolves a character of variant name to an entry carrying metrics.
// A placeholder for a Mathematical Alphanumeric Symbol is resolved through
// the same variant. It is an error with code core.EMISSING if no metrics
// can be found.
func (f *Font) Metrics(name string, code rune) (metrics.CharEntry, error) {
	c, ok, err := f.registry.Char(name, code)
	if err != nil {
		return metrics.CharEntry{}, err
	}
	if ok && c.IsPlaceholder() {
		smp, _ := c.SMP()
		tracer().Debugf("%s in %s is a placeholder for %s", variants.CharName(code), name, variants.CharName(smp))
		if c, ok, err = f.registry.Char(name, smp); err != nil {
			return metrics.CharEntry{}, err
		}
		code = smp
	}
	if !ok || c.IsPlaceholder() {
		tracer().Errorf("no metrics for %s in variant %s", variants.CharName(code), name)
		return metrics.CharEntry{}, core.Error(core.EMISSING, "no metrics for U+%04X in variant %q", code, name)
	}
	return c, nil
}

// Variant returns a variant for inspection.
func (f *Font) Variant(name string) (*variants.Variant, bool) {
	return f.registry.Variant(name)
}

// VariantNames returns the names of the variants starting with prefix, in
// creation order.
func (f *Font) VariantNames(prefix string) []string {
	return f.registry.Names(prefix)
}

// MatchVariants returns the names of the variants with a given style and
// weight, in creation order.
func (f *Font) MatchVariants(style xfont.Style, weight xfont.Weight) []string {
	return f.registry.Match(style, weight)
}

// Delimiter returns the entry for delimiter code.
func (f *Font) Delimiter(code rune) (metrics.DelimiterEntry, bool) {
	return f.delims.Get(code)
}

// DelimiterCodes returns the codes of all delimiters, in ascending order.
func (f *Font) DelimiterCodes() []rune {
	return f.delims.Codes()
}

// SizeVariant returns the name of the variant supplying size step i of
// delimiter code.
func (f *Font) SizeVariant(code rune, i int) (string, error) {
	return f.delims.SizeVariant(code, i)
}

// StretchVariant returns the name of the variant supplying part p of the
// assembly of delimiter code.
func (f *Font) StretchVariant(code rune, p metrics.Part) (string, error) {
	return f.delims.StretchVariant(code, p)
}

// SizeVariants returns the font's list of size variants.
func (f *Font) SizeVariants() []string {
	return f.delims.SizeVariants()
}

// SizeGlyph resolves the glyph for size step i of delimiter code: the
// variant it is taken from, the character code and its metrics.
func (f *Font) SizeGlyph(code rune, i int) (string, rune, metrics.CharEntry, error) {
	variant, err := f.delims.SizeVariant(code, i)
	if err != nil {
		return "", 0, metrics.CharEntry{}, err
	}
	c, err := f.delims.SizeChar(code, i)
	if err != nil {
		return "", 0, metrics.CharEntry{}, err
	}
	m, err := f.Metrics(variant, c)
	if err != nil {
		return "", 0, metrics.CharEntry{}, err
	}
	return variant, c, m, nil
}

// Params returns the parameter set of the font. It is a copy, changing it
// does not change the font.
func (f *Font) Params() parameters.ParameterSet {
	return f.params
}
