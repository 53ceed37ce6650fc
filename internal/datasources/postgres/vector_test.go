package postgres

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVector_ParseVector(t *testing.T) {
	cases := []struct {
		name    string
		vector  []float32
		literal string
	}{
		{
			name:    "empty",
			vector:  []float32{},
			literal: "[]",
		},
		{
			name:    "mixed",
			vector:  []float32{1, 0.5, -2},
			literal: "[1,0.5,-2]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.literal, formatVector(tc.vector))

			got, err := parseVector(tc.literal)
			require.NoError(t, err)
			assert.Equal(t, tc.vector, got)
		})
	}
}

func TestParseVector_Malformed(t *testing.T) {
	for _, literal := range []string{"", "1,2", "[1,x]"} {
		_, err := parseVector(literal)
		assert.Error(t, err, literal)
	}
}

func TestClampSimilarity(t *testing.T) {
	assert.Equal(t, 0.0, clampSimilarity(math.NaN()))
	assert.Equal(t, 0.0, clampSimilarity(-0.3))
	assert.Equal(t, 1.0, clampSimilarity(1.0000001))
	assert.Equal(t, 0.42, clampSimilarity(0.42))
}
