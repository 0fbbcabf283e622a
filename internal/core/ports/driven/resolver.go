package driven

import "github.com/custodia-labs/netdays/internal/core/domain"

// DateValueResolver converts heterogeneous date representations
// (numeric serials, strings, time values) into a CanonicalDate.
type DateValueResolver interface {
	// Resolve converts input to a CanonicalDate.
	// Failures are returned as *domain.DateResolutionError.
	Resolve(input any) (domain.CanonicalDate, error)
}

// ArgumentFlattener flattens variadic, possibly nested, arguments into a
// single ordered sequence of raw inputs.
type ArgumentFlattener interface {
	// Flatten never fails; no arguments yields an empty slice.
	Flatten(args ...any) []any
}
