package datevalue

import (
	"reflect"

	"github.com/custodia-labs/netdays/internal/core/ports/driven"
)

// Ensure Flattener implements the interface.
var _ driven.ArgumentFlattener = (*Flattener)(nil)

// Flattener flattens nested slices and arrays of any element type into one
// ordered sequence. Strings and byte slices are leaves.
type Flattener struct{}

// NewFlattener creates a new flattener.
func NewFlattener() *Flattener {
	return &Flattener{}
}

// Flatten returns every leaf value of args in order.
func (f *Flattener) Flatten(args ...any) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		out = appendLeaves(out, arg)
	}
	return out
}

func appendLeaves(out []any, v any) []any {
	switch v.(type) {
	case nil, string, []byte:
		return append(out, v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return append(out, v)
	}

	for i := 0; i < rv.Len(); i++ {
		out = appendLeaves(out, rv.Index(i).Interface())
	}
	return out
}
