/*
Package metrics holds the data model of a math font's metric tables.

A CharEntry describes the box of a single character: height above the
baseline, depth below the baseline and width, all in units of em, plus an
optional italic correction and skew and sparse rendering hints. A
DelimiterEntry describes how a stretchy delimiter is drawn, either from a
list of pre-rendered size steps or assembled from glyph parts.

Entries are plain values. Tables clone slices and option maps when storing
or handing out entries, so clients never alias table internals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package metrics

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mathmetrics.metrics'
func tracer() tracing.Trace {
	return tracing.Select("mathmetrics.metrics")
}
