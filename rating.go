package rating

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidRating = errors.New("invalid rating")

// Rating is an immutable competitive strength score.
// All adjustments return a new Rating.
type Rating struct {
	d decimal.Decimal
}

// New wraps d as is. Any decimal is accepted, negative ones included.
func New(d decimal.Decimal) Rating {
	return Rating{d: d}
}

// FromInt is lossless.
func FromInt(v int64) Rating {
	return Rating{d: decimal.NewFromInt(v)}
}

// FromFloat rejects NaN and infinities.
func FromFloat(v float64) (Rating, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rating{}, errors.Wrapf(ErrInvalidRating, "non-finite value %v", v)
	}
	return Rating{d: decimal.NewFromFloat(v)}, nil
}

// Parse reads decimal text such as "1453.25".
// Malformed text yields ErrInvalidRating.
func Parse(s string) (Rating, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rating{}, errors.Wrapf(ErrInvalidRating, "parse %q: %v", s, err)
	}
	return Rating{d: d}, nil
}

// Decimal returns the raw unrounded score.
func (r Rating) Decimal() decimal.Decimal {
	return r.d
}

// Value is the score rounded to one decimal place.
func (r Rating) Value() float64 {
	return r.Rounded(1)
}

// Rounded rounds half away from zero to the given number of decimal places.
func (r Rating) Rounded(places int32) float64 {
	return r.d.Round(places).InexactFloat64()
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// RoundToInteger rounds half away from zero. Scores outside the int64
// range saturate to math.MaxInt64 or math.MinInt64.
func (r Rating) RoundToInteger() int64 {
	i := r.d.Round(0)
	switch {
	case i.GreaterThan(maxInt64):
		return math.MaxInt64
	case i.LessThan(minInt64):
		return math.MinInt64
	}
	return i.IntPart()
}

// Add returns a new Rating; r itself is left untouched.
func (r Rating) Add(delta decimal.Decimal) Rating {
	return Rating{d: r.d.Add(delta)}
}

func (r Rating) Sub(delta decimal.Decimal) Rating {
	return Rating{d: r.d.Sub(delta)}
}

// Equal compares by value, so 1000 and 1000.00 are equal.
func (r Rating) Equal(other Rating) bool {
	return r.d.Equal(other.d)
}

// Cmp returns -1, 0 or 1 as r is lower than, equal to or higher than other.
func (r Rating) Cmp(other Rating) int {
	return r.d.Cmp(other.d)
}

func (r Rating) String() string {
	return r.d.String()
}

func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.d.String()), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalTOML takes bare TOML numbers at full precision. Decoding them
// through UnmarshalText would cut floats to six decimal places.
func (r *Rating) UnmarshalTOML(v interface{}) error {
	var (
		parsed Rating
		err    error
	)
	switch value := v.(type) {
	case int64:
		parsed = FromInt(value)
	case float64:
		parsed, err = FromFloat(value)
	case string:
		parsed, err = Parse(value)
	default:
		return errors.Wrapf(ErrInvalidRating, "unsupported TOML value %v (%T)", v, v)
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
