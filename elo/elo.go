// Package elo implements the classical Elo rating calculation for
// head-to-head games.
package elo

import (
	"math"

	"github.com/goserg/rating"
	"github.com/shopspring/decimal"
)

var (
	one       = decimal.NewFromInt(1)
	deviation = decimal.NewFromInt(400)
)

// Strategy calculates new ratings with a fixed k-factor.
// The higher k is, the more a single result moves the ratings.
// A Strategy is immutable and safe for concurrent use.
type Strategy struct {
	k decimal.Decimal
}

var _ rating.MultiCalculator = Strategy{}

func New(k int64) Strategy {
	return Strategy{k: decimal.NewFromInt(k)}
}

func NewFromDecimal(k decimal.Decimal) Strategy {
	return Strategy{k: k}
}

func (s Strategy) K() decimal.Decimal {
	return s.k
}

// Calculate new ratings. It panics if result is not Win, Loss or Draw.
// Ra' = Ra + K * (Sa - Ea), Rb' = Rb + K * (Sb - Eb), with Eb = 1 - Ea.
// Sa, Sb - points: 1 for win; 0.5 for draw; 0 for loss.
func (s Strategy) Calculate(playerOne, playerTwo rating.Rating, result rating.GameResult) (rating.Rating, rating.Rating) {
	ea := Expected(playerOne, playerTwo)
	eb := one.Sub(ea)
	sa, sb := result.Scores()

	return playerOne.Add(s.k.Mul(sa.Sub(ea))), playerTwo.Add(s.k.Mul(sb.Sub(eb)))
}

func (s Strategy) CalculateMultiple(playerOne, playerTwo rating.Rating, results []rating.GameResult) (rating.Rating, rating.Rating) {
	return rating.CalculateMultiple(s, playerOne, playerTwo, results)
}

// Expected returns the expected score of player against opponent:
// 1 / (1 + 10^((Rb - Ra) / 400)).
// 10^x is evaluated in float64, so the result carries about 15 significant
// digits; the division keeps decimal.DivisionPrecision places. Gaps that
// overflow float64 (over ~123000 points) give exactly 0 or 1.
func Expected(player, opponent rating.Rating) decimal.Decimal {
	exp := opponent.Decimal().Sub(player.Decimal()).Div(deviation)
	p := math.Pow(10, exp.InexactFloat64())
	if math.IsInf(p, 1) {
		return decimal.Zero
	}
	return one.Div(one.Add(decimal.NewFromFloat(p)))
}

// KFactor picks k the way FIDE does: 40 for the first 30 games,
// 10 once the rating reaches 2400, 20 otherwise.
func KFactor(gamesPlayed int, r rating.Rating) int64 {
	if gamesPlayed <= 30 {
		return 40
	}
	if r.Decimal().GreaterThanOrEqual(decimal.NewFromInt(2400)) {
		return 10
	}
	return 20
}
