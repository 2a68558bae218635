package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// stepCalculator moves a fixed point from loser to winner and records calls.
type stepCalculator struct {
	calls []GameResult
}

func (c *stepCalculator) Calculate(one, two Rating, result GameResult) (Rating, Rating) {
	c.calls = append(c.calls, result)
	sa, sb := result.Scores()
	return one.Add(sa.Sub(sb)), two.Add(sb.Sub(sa))
}

func TestCalculateMultiple(t *testing.T) {
	c := &stepCalculator{}
	results := []GameResult{Win, Win, Draw, Loss}

	a, b := CalculateMultiple(c, FromInt(100), FromInt(100), results)

	assert.Equal(t, results, c.calls)
	assert.True(t, a.Equal(FromInt(101)))
	assert.True(t, b.Equal(FromInt(99)))
}

func TestCalculateMultipleEmpty(t *testing.T) {
	c := &stepCalculator{}
	one := New(decimal.RequireFromString("1500.25"))
	two := FromInt(1400)

	a, b := CalculateMultiple(c, one, two, nil)

	assert.Empty(t, c.calls)
	assert.True(t, a.Equal(one))
	assert.True(t, b.Equal(two))
}
