/*
Package parameters holds the global typographic constants of a math font.

The constants follow TeX's font dimension parameters (σ and ξ parameters of
"The TeXbook", Appendix G). All values are in units of the font's em-size,
with two exceptions: DelimiterFactor is a per-mille factor, and
MinRuleThickness is given in pixels.

A ParameterSet is read-only after font construction. Fonts wanting different
constants supply a complete set of their own, or a modified copy created by
WithOverrides.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"math"

	"github.com/npillmayer/mathmetrics/core"
	"github.com/npillmayer/mathmetrics/core/dimen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathmetrics.params'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.params")
}

// ParameterSet is the flat table of typographic constants of a math font.
type ParameterSet struct {
	XHeight            float64 // σ5
	Quad               float64 // σ6
	Num1               float64 // σ8
	Num2               float64 // σ9
	Num3               float64 // σ10
	Denom1             float64 // σ11
	Denom2             float64 // σ12
	Sup1               float64 // σ13
	Sup2               float64 // σ14
	Sup3               float64 // σ15
	Sub1               float64 // σ16
	Sub2               float64 // σ17
	SupDrop            float64 // σ18
	SubDrop            float64 // σ19
	Delim1             float64 // σ20
	Delim2             float64 // σ21
	AxisHeight         float64 // σ22
	RuleThickness      float64 // ξ8
	BigOpSpacing1      float64 // ξ9
	BigOpSpacing2      float64 // ξ10
	BigOpSpacing3      float64 // ξ11
	BigOpSpacing4      float64 // ξ12
	BigOpSpacing5      float64 // ξ13
	SurdHeight         float64
	ScriptSpace        float64
	NullDelimiterSpace float64
	DelimiterFactor    float64 // per mille
	DelimiterShortfall float64
	MinRuleThickness   float64 // in pixels
	SeparationFactor   float64
	ExtraIC            float64
}

// Defaults returns the parameters of Computer Modern math fonts.
func Defaults() ParameterSet {
	return ParameterSet{
		XHeight:            .442,
		Quad:               1,
		Num1:               .676,
		Num2:               .394,
		Num3:               .444,
		Denom1:             .686,
		Denom2:             .345,
		Sup1:               .413,
		Sup2:               .363,
		Sup3:               .289,
		Sub1:               .15,
		Sub2:               .247,
		SupDrop:            .386,
		SubDrop:            .05,
		Delim1:             2.39,
		Delim2:             1.0,
		AxisHeight:         .25,
		RuleThickness:      .06,
		BigOpSpacing1:      .111,
		BigOpSpacing2:      .167,
		BigOpSpacing3:      .2,
		BigOpSpacing4:      .6,
		BigOpSpacing5:      .1,
		SurdHeight:         .075,
		ScriptSpace:        .05,
		NullDelimiterSpace: .12,
		DelimiterFactor:    901,
		DelimiterShortfall: .3,
		MinRuleThickness:   1.25,
		SeparationFactor:   1.75,
		ExtraIC:            .033,
	}
}

type unit int8

const (
	em unit = iota
	px
	factor
)

type field struct {
	name string
	unit unit
	ref  func(*ParameterSet) *float64
}

// fields is the closed set of parameter names, in TeX order.
var fields = []field{
	{"x_height", em, func(p *ParameterSet) *float64 { return &p.XHeight }},
	{"quad", em, func(p *ParameterSet) *float64 { return &p.Quad }},
	{"num1", em, func(p *ParameterSet) *float64 { return &p.Num1 }},
	{"num2", em, func(p *ParameterSet) *float64 { return &p.Num2 }},
	{"num3", em, func(p *ParameterSet) *float64 { return &p.Num3 }},
	{"denom1", em, func(p *ParameterSet) *float64 { return &p.Denom1 }},
	{"denom2", em, func(p *ParameterSet) *float64 { return &p.Denom2 }},
	{"sup1", em, func(p *ParameterSet) *float64 { return &p.Sup1 }},
	{"sup2", em, func(p *ParameterSet) *float64 { return &p.Sup2 }},
	{"sup3", em, func(p *ParameterSet) *float64 { return &p.Sup3 }},
	{"sub1", em, func(p *ParameterSet) *float64 { return &p.Sub1 }},
	{"sub2", em, func(p *ParameterSet) *float64 { return &p.Sub2 }},
	{"sup_drop", em, func(p *ParameterSet) *float64 { return &p.SupDrop }},
	{"sub_drop", em, func(p *ParameterSet) *float64 { return &p.SubDrop }},
	{"delim1", em, func(p *ParameterSet) *float64 { return &p.Delim1 }},
	{"delim2", em, func(p *ParameterSet) *float64 { return &p.Delim2 }},
	{"axis_height", em, func(p *ParameterSet) *float64 { return &p.AxisHeight }},
	{"rule_thickness", em, func(p *ParameterSet) *float64 { return &p.RuleThickness }},
	{"big_op_spacing1", em, func(p *ParameterSet) *float64 { return &p.BigOpSpacing1 }},
	{"big_op_spacing2", em, func(p *ParameterSet) *float64 { return &p.BigOpSpacing2 }},
	{"big_op_spacing3", em, func(p *ParameterSet) *float64 { return &p.BigOpSpacing3 }},
	{"big_op_spacing4", em, func(p *ParameterSet) *float64 { return &p.BigOpSpacing4 }},
	{"big_op_spacing5", em, func(p *ParameterSet) *float64 { return &p.BigOpSpacing5 }},
	{"surd_height", em, func(p *ParameterSet) *float64 { return &p.SurdHeight }},
	{"scriptspace", em, func(p *ParameterSet) *float64 { return &p.ScriptSpace }},
	{"nulldelimiterspace", em, func(p *ParameterSet) *float64 { return &p.NullDelimiterSpace }},
	{"delimiterfactor", factor, func(p *ParameterSet) *float64 { return &p.DelimiterFactor }},
	{"delimitershortfall", em, func(p *ParameterSet) *float64 { return &p.DelimiterShortfall }},
	{"min_rule_thickness", px, func(p *ParameterSet) *float64 { return &p.MinRuleThickness }},
	{"separation_factor", factor, func(p *ParameterSet) *float64 { return &p.SeparationFactor }},
	{"extra_ic", em, func(p *ParameterSet) *float64 { return &p.ExtraIC }},
}

func lookup(name string) (field, error) {
	for _, f := range fields {
		if f.name == name {
			return f, nil
		}
	}
	tracer().Errorf("no math parameter named %q", name)
	return field{}, core.Error(core.EMISSING, "no math parameter named %q", name)
}

// Names returns the names of all parameters, in TeX order.
func Names() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Value returns the parameter called name, e.g. "axis_height".
func (ps ParameterSet) Value(name string) (float64, error) {
	f, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return *f.ref(&ps), nil
}

// Dimen returns parameter name scaled for a font of size fontsize.
// min_rule_thickness is converted from pixels. Factors are not dimensions
// and result in an error.
func (ps ParameterSet) Dimen(name string, fontsize dimen.Dimen) (dimen.Dimen, error) {
	f, err := lookup(name)
	if err != nil {
		return 0, err
	}
	v := *f.ref(&ps)
	switch f.unit {
	case px:
		return dimen.Dimen(math.Round(v * float64(dimen.PX))), nil
	case factor:
		return 0, core.Error(core.EINVALID, "math parameter %q is a factor, not a dimension", name)
	}
	return dimen.FromEm(v, fontsize), nil
}

// WithOverrides returns a copy of ps with some parameters replaced.
// Every key of overrides must name a parameter, otherwise no copy is created
// and an error is returned.
func (ps ParameterSet) WithOverrides(overrides map[string]float64) (ParameterSet, error) {
	c := ps
	for name, v := range overrides {
		f, err := lookup(name)
		if err != nil {
			return ps, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ps, core.Error(core.EINVALID, "math parameter %q set to %v", name, v)
		}
		tracer().Debugf("math parameter %s := %g", name, v)
		*f.ref(&c) = v
	}
	return c, nil
}
