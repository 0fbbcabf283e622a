package datevalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattener_Flatten(t *testing.T) {
	f := NewFlattener()

	tests := []struct {
		name string
		args []any
		want []any
	}{
		{"no arguments", nil, []any{}},
		{"scalars", []any{1, "2023-01-01", 3.5}, []any{1, "2023-01-01", 3.5}},
		{"nested any slices", []any{[]any{1, []any{2, 3}}, 4}, []any{1, 2, 3, 4}},
		{"typed slices", []any{[]float64{1, 2}, []string{"a"}}, []any{1.0, 2.0, "a"}},
		{"two-dimensional range", []any{[][]any{{1, 2}, {3}}}, []any{1, 2, 3}},
		{"array", []any{[2]int{7, 8}}, []any{7, 8}},
		{"strings are leaves", []any{"2023-01-16"}, []any{"2023-01-16"}},
		{"bytes are leaves", []any{[]byte("x")}, []any{[]byte("x")}},
		{"nil kept", []any{nil}, []any{nil}},
		{"empty nested", []any{[]any{}, []any{[]any{}}}, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Flatten(tt.args...))
		})
	}
}

func TestFlattener_PreservesOrder(t *testing.T) {
	f := NewFlattener()

	got := f.Flatten(5, []any{4, []int{3, 2}}, 1)

	assert.Equal(t, []any{5, 4, 3, 2, 1}, got)
}
