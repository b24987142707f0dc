/*
Package collsh/main provides an interactive command line tool for experiments
with gocoll containers. Users may fill an array list, a linked list and a hash
set with strings, select sub-list views, split cursors and look at the saved state
of a container.

Commands are entered one per line, or several separated by semicolons:

	array> add a b c d; sub 1 3; show
	  >>  [b, c]

Enter 'help' for a list of commands.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// shellTracer is set by main to a console tracer.
var shellTracer tracing.Trace

// tracer traces with key 'gocoll.collsh', unless main installed a console tracer.
func tracer() tracing.Trace {
	if shellTracer != nil {
		return shellTracer
	}
	return tracing.Select("gocoll.collsh")
}
