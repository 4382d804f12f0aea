package variants

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/font/metrics"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// Variant is a named character table of a math font.
type Variant struct {
	name       string
	chars      metrics.CharTable // own characters
	linked     metrics.CharTable // copy of link.chars, nil without link
	inherits   *Variant
	link       *Variant
	dependents *arraylist.List // variants linked to this one, in creation order
}

// Name returns the name of v.
func (v *Variant) Name() string {
	return v.name
}

// Inherits returns the variant v falls back to, or nil.
func (v *Variant) Inherits() *Variant {
	return v.inherits
}

// Link returns the variant v has been linked to, or nil.
func (v *Variant) Link() *Variant {
	return v.link
}

// Own returns a character from v's own table, disregarding any fallback.
func (v *Variant) Own(code rune) (metrics.CharEntry, bool) {
	c, ok := v.chars[code]
	if !ok {
		return metrics.CharEntry{}, false
	}
	return c.Clone(), true
}

// Lookup resolves a character: v's own table wins over the linked copy,
// which wins over the inherited chain.
func (v *Variant) Lookup(code rune) (metrics.CharEntry, bool) {
	for x := v; x != nil; x = x.inherits {
		if c, ok := x.chars[code]; ok {
			return c.Clone(), true
		}
		if c, ok := x.linked[code]; ok {
			return c.Clone(), true
		}
	}
	return metrics.CharEntry{}, false
}

// Chain returns the names of the variants consulted for a lookup, in order.
// A linked variant is listed in brackets, e.g. "[bold]".
func (v *Variant) Chain() []string {
	var chain []string
	for x := v; x != nil; x = x.inherits {
		chain = append(chain, x.name)
		if x.link != nil {
			chain = append(chain, "["+x.link.name+"]")
		}
	}
	return chain
}

// Codes returns all character codes v resolves, in ascending order.
func (v *Variant) Codes() []rune {
	codes := treemap.NewWithIntComparator()
	for x := v; x != nil; x = x.inherits {
		for code := range x.chars {
			codes.Put(int(code), struct{}{})
		}
		for code := range x.linked {
			codes.Put(int(code), struct{}{})
		}
	}
	result := make([]rune, 0, codes.Size())
	for _, k := range codes.Keys() {
		result = append(result, rune(k.(int)))
	}
	return result
}

// Dependents returns the names of the variants linked to v.
func (v *Variant) Dependents() []string {
	names := make([]string, 0, v.dependents.Size())
	v.dependents.Each(func(_ int, value interface{}) {
		names = append(names, value.(*Variant).name)
	})
	return names
}

func (v *Variant) String() string {
	return fmt.Sprintf("variant[%s|%d chars]", v.name, len(v.chars))
}

// --- Registry --------------------------------------------------------------

// Registry holds the variants of a math font.
type Registry struct {
	variants map[string]*Variant
	order    []string   // names in creation order
	index    *trie.Trie // names for prefix search
	smp      bool
}

// Option configures a registry.
type Option func(*Registry)

// WithMathAlphanumerics lets the standard variants map Latin and Greek
// letters and digits to the Mathematical Alphanumeric Symbols block
// (U+1D400–U+1D7FF). Variants are created with placeholder entries for these
// characters, see metrics.Placeholder.
func WithMathAlphanumerics() Option {
	return func(r *Registry) {
		r.smp = true
	}
}

// NewRegistry creates an empty variant registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		variants: make(map[string]*Variant),
		index:    trie.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Spec describes a variant to create: its name, and optionally the names
// of the variant to inherit from and of the variant to link to.
type Spec struct {
	Name, Inherit, Link string
}

// Create registers a new, empty variant. If inherit is not empty, lookups
// failing in the new variant continue with variant inherit. If link is not
// empty, the new variant receives a copy of link's own characters and will
// receive every character defined for link later on.
//
// Variants must be created before they are referenced, and a name may be
// registered only once. This keeps the variant graph acyclic.
func (r *Registry) Create(name, inherit, link string) error {
	if name == "" {
		tracer().Errorf("cannot create a variant without a name")
		return core.Error(core.EINVALID, "variant must have a name")
	}
	if _, exists := r.variants[name]; exists {
		tracer().Errorf("variant %s is already registered", name)
		return core.Error(core.EINVALID, "variant %q is already registered", name)
	}
	v := &Variant{
		name:       name,
		chars:      make(metrics.CharTable),
		dependents: arraylist.New(),
	}
	if inherit != "" {
		parent, err := r.lookup(inherit)
		if err != nil {
			return core.WrapError(err, core.EMISSING, "variant %q cannot inherit from %q", name, inherit)
		}
		v.inherits = parent
	}
	if link != "" {
		source, err := r.lookup(link)
		if err != nil {
			return core.WrapError(err, core.EMISSING, "variant %q cannot link to %q", name, link)
		}
		v.link = source
		v.linked = source.chars.Clone()
		source.dependents.Add(v)
	}
	if r.smp {
		for code, c := range smpChars(name) {
			v.chars[code] = c
		}
	}
	r.variants[name] = v
	r.order = append(r.order, name)
	r.index.Add(name, v)
	tracer().Debugf("created variant %s, chain = %v", name, v.Chain())
	return nil
}

// CreateAll creates variants in list order. Later specs may reference
// earlier ones. Creation stops at the first error.
func (r *Registry) CreateAll(specs []Spec) error {
	for _, spec := range specs {
		if err := r.Create(spec.Name, spec.Inherit, spec.Link); err != nil {
			return err
		}
	}
	return nil
}

// Define merges chars into the own table of variant name, overwriting
// existing entries with the same code. The same characters are copied to
// every variant linked to name. If any entry is malformed, nothing is
// defined.
func (r *Registry) Define(name string, chars metrics.CharTable) error {
	v, err := r.lookup(name)
	if err != nil {
		return err
	}
	if err := chars.Validate(); err != nil {
		tracer().Errorf("variant %s: %v", name, err)
		return err
	}
	merge(v.chars, chars)
	v.dependents.Each(func(_ int, value interface{}) {
		dep := value.(*Variant)
		merge(dep.linked, chars)
		tracer().Debugf("propagated %d chars from %s to %s", len(chars), name, dep.name)
	})
	tracer().Debugf("defined %d chars for variant %s", len(chars), name)
	return nil
}

func merge(dest, src metrics.CharTable) {
	for code, c := range src {
		dest[code] = c.Clone()
	}
}

// Char resolves character code in variant name. The boolean result is false
// if no variant in the fallback chain defines code. It is an error if name
// is not registered.
func (r *Registry) Char(name string, code rune) (metrics.CharEntry, bool, error) {
	v, err := r.lookup(name)
	if err != nil {
		return metrics.CharEntry{}, false, err
	}
	c, ok := v.Lookup(code)
	return c, ok, nil
}

// Variant returns the variant registered under name.
func (r *Registry) Variant(name string) (*Variant, bool) {
	v, ok := r.variants[name]
	return v, ok
}

// Has is true if a variant name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.variants[name]
	return ok
}

func (r *Registry) lookup(name string) (*Variant, error) {
	if v, ok := r.variants[name]; ok {
		return v, nil
	}
	tracer().Errorf("variant %q is not registered", name)
	return nil, core.Error(core.EMISSING, "variant %q is not registered", name)
}

// Names returns the names of all variants starting with prefix, in
// creation order. An empty prefix selects all variants.
func (r *Registry) Names(prefix string) []string {
	if prefix == "" {
		return append([]string(nil), r.order...)
	}
	found := r.index.PrefixSearch(prefix)
	pos := make(map[string]int, len(r.order))
	for i, name := range r.order {
		pos[name] = i
	}
	sort.Slice(found, func(i, j int) bool {
		return pos[found[i]] < pos[found[j]]
	})
	return found
}

// Len returns the number of registered variants.
func (r *Registry) Len() int {
	return len(r.variants)
}

// Specs returns the creation specs of all variants, in creation order.
// Replaying them on an empty registry re-creates the variant graph.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, len(r.order))
	for i, name := range r.order {
		v := r.variants[name]
		specs[i].Name = name
		if v.inherits != nil {
			specs[i].Inherit = v.inherits.name
		}
		if v.link != nil {
			specs[i].Link = v.link.name
		}
	}
	return specs
}

// CharName returns a readable description of a character code, like
// "U+0041 LATIN CAPITAL LETTER A".
func CharName(code rune) string {
	if name := runenames.Name(code); name != "" {
		return fmt.Sprintf("U+%04X %s", code, name)
	}
	return fmt.Sprintf("U+%04X", code)
}

// LogVariant is a helper function to dump the characters a variant resolves
// to the trace-file (log-level Info).
func (r *Registry) LogVariant(name string) {
	v, err := r.lookup(name)
	if err != nil {
		return
	}
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- variant %s, chain %v ---", name, v.Chain())
	for _, code := range v.Codes() {
		c, _ := v.Lookup(code)
		tracer().Infof("%-50s = %s", CharName(code), c)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
