/*
Package flexbox computes flexbox layout for a single container of child nodes.

Given the container's flex configuration (direction, wrap, alignment, padding)
and an ordered collection of child nodes, an Engine computes a size for the
container and a rectangle for every child. The protocol is the two-phase
"measure, then layout" cycle used by native UI toolkits:

	engine := flexbox.NewEngine(flexbox.Config{Direction: flexbox.Row})
	engine.AddNode(child1)
	engine.AddNode(child2)
	size := engine.Measure(flexbox.NewConstraint(300, flexbox.Exactly),
	    flexbox.NewConstraint(100, flexbox.AtMost))
	engine.Layout(0, 0, size.Width, size.Height)

Measuring happens in four phases: children are grouped into flex lines,
free space on the main axis is distributed by grow and shrink factors,
the cross size of every line is resolved (including align-content and
the baseline strategy) and, finally, Layout converts the resolved sizes
into rectangles, flipping axes for reversed directions and wrap-reverse.

An Engine is not safe for concurrent use. Children are owned by the
client; the engine merely references them while they are part of its
collection. Nested layouts are built by letting a child's Measure and
Layout delegate to an engine of its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flexbox

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexbox'.
func tracer() tracing.Trace {
	return tracing.Select("flexbox")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("flexbox: "+msg, msgargs...)
		panic(msg)
	}
}
