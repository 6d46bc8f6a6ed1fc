// Package randgraph generates small, random, weakly-connected
// character-labeled graphs for property-based tests of the align package.
//
// Generate emits a charseq.Graph with vertex 0 as source and every other
// vertex reachable from it, built from functional options in the same
// validate-and-panic style used elsewhere in this module's constructors.
package randgraph

import "errors"

// ErrTooFewVertices indicates WithVertexCount was given a value < 1.
var ErrTooFewVertices = errors.New("randgraph: vertex count must be at least 1")
