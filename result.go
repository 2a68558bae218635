package rating

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidGameResult = errors.New("invalid game result")

// GameResult is the outcome of a game from the first player's perspective.
type GameResult int

const (
	Win GameResult = iota + 1
	Loss
	Draw
)

var (
	scoreWin  = decimal.NewFromInt(1)
	scoreLoss = decimal.Zero
	scoreDraw = decimal.RequireFromString("0.5")
)

func (g GameResult) Valid() bool {
	return g == Win || g == Loss || g == Draw
}

// Scores returns the actual scores of the first and the second player.
// It panics on anything but Win, Loss or Draw.
func (g GameResult) Scores() (decimal.Decimal, decimal.Decimal) {
	switch g {
	case Win:
		return scoreWin, scoreLoss
	case Loss:
		return scoreLoss, scoreWin
	case Draw:
		return scoreDraw, scoreDraw
	}
	panic(fmt.Sprintf("rating: invalid game result %d", int(g)))
}

func (g GameResult) String() string {
	switch g {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	}
	return "unknown"
}

func ParseGameResult(s string) (GameResult, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w", "1":
		return Win, nil
	case "loss", "lose", "l", "0":
		return Loss, nil
	case "draw", "d", "0.5":
		return Draw, nil
	}
	return 0, errors.Wrapf(ErrInvalidGameResult, "%q", s)
}

func (g GameResult) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, errors.Wrapf(ErrInvalidGameResult, "%d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *GameResult) UnmarshalText(text []byte) error {
	parsed, err := ParseGameResult(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
