package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "x", AsString("x", "fb"))
	assert.Equal(t, "fb", AsString(nil, "fb"))
	assert.Equal(t, "fb", AsString(42, "fb"))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(7), AsInt64(int64(7), 0))
	assert.Equal(t, int64(7), AsInt64(7, 0))
	assert.Equal(t, int64(7), AsInt64(7.9, 0), "aggregate sums arrive as float64")
	assert.Equal(t, int64(-1), AsInt64(nil, -1))
	assert.Equal(t, int64(-1), AsInt64("7", -1))
}

func TestAsFloat64(t *testing.T) {
	assert.Equal(t, 1.5, AsFloat64(1.5, 0))
	assert.Equal(t, 7.0, AsFloat64(int64(7), 0))
	assert.Equal(t, 7.0, AsFloat64(7, 0))
	assert.Equal(t, -1.0, AsFloat64(nil, -1))
}

func TestAsStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, AsStringSlice([]any{"a", 1, "b", nil}))
	assert.Nil(t, AsStringSlice(nil))
	assert.Nil(t, AsStringSlice("a"))
	assert.Empty(t, AsStringSlice([]any{}))
}
