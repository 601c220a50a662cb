package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Roll parses an NdM expression (e.g. "2d20", case-insensitive) and returns
// the individual die results. N and M must both be positive.
func Roll(expression string) ([]int, error) {
	count, sides, err := parseDiceExpression(expression)
	if err != nil {
		return nil, err
	}

	results := make([]int, count)
	for i := range results {
		results[i] = rand.Intn(sides) + 1
	}

	return results, nil
}

// RollWithRand rolls using a provided random source. This is useful when the
// caller wants deterministic results.
func RollWithRand(rng *rand.Rand, expression string) ([]int, error) {
	count, sides, err := parseDiceExpression(expression)
	if err != nil {
		return nil, err
	}

	results := make([]int, count)
	for i := range results {
		results[i] = rng.Intn(sides) + 1
	}

	return results, nil
}

// FormatRolls renders results the way replies show them: "3+5 = 8".
func FormatRolls(results []int) string {
	parts := make([]string, len(results))
	total := 0
	for i, value := range results {
		parts[i] = strconv.Itoa(value)
		total += value
	}

	return fmt.Sprintf("%s = %d", strings.Join(parts, "+"), total)
}

func parseDiceExpression(expression string) (count, sides int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(expression)), "d")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: must be in NdM format", ErrInvalidExpression)
	}

	count, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: must be in NdM format", ErrInvalidExpression)
	}

	sides, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: must be in NdM format", ErrInvalidExpression)
	}

	if count <= 0 || sides <= 0 {
		return 0, 0, fmt.Errorf("%w: number of dice and sides must be positive", ErrInvalidExpression)
	}

	return count, sides, nil
}
