package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "empty", input: "", expected: 0},
		{name: "whole", input: "25", expected: 2500},
		{name: "two decimals", input: "19.99", expected: 1999},
		{name: "rounds half up", input: "12.345", expected: 1235},
		{name: "rounds down", input: "12.344", expected: 1234},
		{name: "classic float drift", input: "0.285", expected: 29},
		{name: "padded", input: "  7.5 ", expected: 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToMinorUnits_Rejects(t *testing.T) {
	for _, in := range []string{"-1", "abc", "1.2.3"} {
		_, err := ToMinorUnits(in)
		assert.ErrorIs(t, err, ErrValidation, in)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	code, err := NormalizeCurrency("zar")
	require.NoError(t, err)
	assert.Equal(t, "ZAR", code)

	code, err = NormalizeCurrency("")
	require.NoError(t, err)
	assert.Empty(t, code)

	_, err = NormalizeCurrency("XXQ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "0.00", FormatMinorUnits(0))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "12.35", FormatMinorUnits(1235))
	assert.Equal(t, "1500.00", FormatMinorUnits(150000))
}
