package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the package's tracer. Production callers may leave the global
// tracer at its default (silent) adapter; tests redirect it with
// gotestingadapter so structural-mutation traces land in t.Log.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
