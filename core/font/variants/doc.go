/*
Package variants manages the character tables of the rendering variants of a
math font (bold, italic, script, double-struck, …).

Variants form a small DAG. Each variant has a table of its own characters
and may name a variant to inherit from: lookups of characters missing in a
variant continue with the inherited variant, and so on up to the root
variant, usually "normal".

Some variants need to fall back to two parents. "bold-italic" should first
try "bold", then continue with the italic→normal chain. Such a variant is
created with a link to "bold": it receives a copy of the characters "bold"
has at that time, and every character defined for "bold" later on is copied
to it as well. Lookup precedence therefore is

	own table  →  linked copy  →  inherited chain (nearest first)

Registries are not safe for concurrent mutation. Clients build a registry
completely, then may share it between readers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variants

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mathmetrics.variants'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.variants")
}
