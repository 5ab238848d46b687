package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Nil", nil, 0},
		{"Int", 7, 7},
		{"Float", 3.9, 3},
		{"NegativeFloat", -2.5, -2},
		{"JSONNumber", json.Number("12"), 12},
		{"JSONNumberFraction", json.Number("12.000"), 12},
		{"NumericString", " 42 ", 42},
		{"DecimalString", "5.75", 5},
		{"Garbage", "n/a", 0},
		{"Empty", "", 0},
		{"Bool", true, 0},
		{"Map", map[string]any{"a": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "123", ToString(json.Number("123")))
	assert.Equal(t, "10", ToString(float64(10)))
	assert.Equal(t, "1.5", ToString(1.5))
	assert.Equal(t, "true", ToString(true))
}
