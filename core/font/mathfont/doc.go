/*
Package mathfont assembles the metric tables of a math font: the typographic
parameters, the variant character tables and the stretchy delimiters.

A Font is created from a set of default tables, usually supplied by a
package for a concrete font like texfont. Construction copies the defaults,
so every Font owns its tables. Clients may define further characters or
delimiters (e.g., for a supplementary font) before using a Font for layout.
After that, a Font is read-only and may be shared between readers. Fonts do
not synchronize concurrent mutation.

Configuration

	math-font-size   default size for scaled metrics, as a dimension ("10pt")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathfont

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mathmetrics.font'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.font")
}
