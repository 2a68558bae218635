// Package rating holds the rating value type, game results and the
// calculator capability shared by rating strategies such as elo.
package rating

// Calculator computes new ratings of two players after a single game.
// The result is seen from the first player's perspective.
type Calculator interface {
	Calculate(one, two Rating, result GameResult) (Rating, Rating)
}

type MultiCalculator interface {
	Calculator
	CalculateMultiple(one, two Rating, results []GameResult) (Rating, Rating)
}

// CalculateMultiple applies results in order, feeding the ratings produced
// by each game into the next one. No results means no change.
func CalculateMultiple(c Calculator, one, two Rating, results []GameResult) (Rating, Rating) {
	for _, result := range results {
		one, two = c.Calculate(one, two, result)
	}
	return one, two
}
