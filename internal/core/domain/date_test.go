package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDateRange_Ordered(t *testing.T) {
	r := NewDateRange(10, 20)

	assert.Equal(t, CanonicalDate(10), r.Start)
	assert.Equal(t, CanonicalDate(20), r.End)
	assert.False(t, r.Reversed())
}

func TestNewDateRange_Reversed(t *testing.T) {
	r := NewDateRange(20, 10)

	assert.Equal(t, CanonicalDate(10), r.Start)
	assert.Equal(t, CanonicalDate(20), r.End)
	assert.Equal(t, CanonicalDate(20), r.SignStart)
	assert.Equal(t, CanonicalDate(10), r.SignEnd)
	assert.True(t, r.Reversed())
}

func TestDateRange_Contains(t *testing.T) {
	r := NewDateRange(10, 20)

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(15.5))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(21))
}

func TestCanonicalDate_Day(t *testing.T) {
	assert.Equal(t, int64(44927), CanonicalDate(44927).Day())
	assert.Equal(t, int64(44927), CanonicalDate(44927.9).Day())
}

func TestFormulaResult_Value(t *testing.T) {
	assert.Equal(t, 22, FormulaResult{Days: 22}.Value())
	assert.Equal(t, "#VALUE!", FormulaResult{Err: NewValueError("x", "bad")}.Value())
}
