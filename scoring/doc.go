// Package scoring defines the per-operation cost model used by the
// alignment engine: substitution, deletion, and insertion costs, and the
// sentinel "infinity" value used to seed a layer before any transitions
// have been applied.
package scoring

import "errors"

// Score is the wide integer type used for every cost and layer value
// throughout the alignment engine. A single type is used end to end,
// including in the Navarro oracle, so that costs never silently wrap for
// long queries.
type Score = int64

// Sentinel errors for ScoringConfig validation.
var (
	// ErrInvalidCost indicates a negative substitution, deletion, or
	// insertion cost was supplied.
	ErrInvalidCost = errors.New("scoring: costs must be non-negative")

	// ErrScoreOverflow indicates L*MaxCost+1 does not fit in Score for the
	// given query length.
	ErrScoreOverflow = errors.New("scoring: L*max_cost+1 overflows the score type")
)
