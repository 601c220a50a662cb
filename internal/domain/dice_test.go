package domain

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollReturnsRequestedCountInRange(t *testing.T) {
	tests := []struct {
		count int
		sides int
	}{
		{count: 1, sides: 1},
		{count: 1, sides: 20},
		{count: 4, sides: 6},
		{count: 10, sides: 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dd%d", tt.count, tt.sides), func(t *testing.T) {
			results, err := Roll(fmt.Sprintf("%dd%d", tt.count, tt.sides))
			require.NoError(t, err)
			require.Len(t, results, tt.count)

			for _, value := range results {
				assert.GreaterOrEqual(t, value, 1)
				assert.LessOrEqual(t, value, tt.sides)
			}
		})
	}
}

func TestRollOneSidedDieAlwaysRollsOne(t *testing.T) {
	results, err := Roll("3d1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, results)
}

func TestRollExpressionIsCaseInsensitive(t *testing.T) {
	results, err := Roll("2D6")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRollRejectsMalformedExpressions(t *testing.T) {
	tests := []string{"d20", "2d", "2x20", "-1d6", "2d0", "0d6", "", "2d3d4", "two d six"}

	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			_, err := Roll(expression)
			require.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}

func TestRollWithRandIsDeterministic(t *testing.T) {
	first, err := RollWithRand(rand.New(rand.NewSource(42)), "5d8")
	require.NoError(t, err)

	second, err := RollWithRand(rand.New(rand.NewSource(42)), "5d8")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatRolls(t *testing.T) {
	assert.Equal(t, "3+5+1 = 9", FormatRolls([]int{3, 5, 1}))
	assert.Equal(t, "7 = 7", FormatRolls([]int{7}))
}
