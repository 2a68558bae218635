package config

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goserg/rating"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const envKFactor = "RATING_K_FACTOR"

// KFactor decodes bare TOML numbers without going through text, which
// would cut floats to six decimal places.
type KFactor struct {
	decimal.Decimal
}

func (k *KFactor) UnmarshalTOML(v interface{}) error {
	switch value := v.(type) {
	case int64:
		k.Decimal = decimal.NewFromInt(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return errors.Errorf("k_factor must be finite, got %v", value)
		}
		k.Decimal = decimal.NewFromFloat(value)
	case string:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return errors.Wrapf(err, "k_factor %q", value)
		}
		k.Decimal = d
	default:
		return errors.Errorf("unsupported k_factor %v (%T)", v, v)
	}
	return nil
}

type Calculation struct {
	KFactor   KFactor             `toml:"k_factor"`
	PlayerOne rating.Rating       `toml:"player_one"`
	PlayerTwo rating.Rating       `toml:"player_two"`
	Results   []rating.GameResult `toml:"results"`
}

type Output struct {
	Precision int32 `toml:"precision"`
	Debug     bool  `toml:"debug_mode"`
}

type Config struct {
	Calculation Calculation `toml:"calculation"`
	Output      Output      `toml:"output"`
}

func Default() Config {
	return Config{
		Calculation: Calculation{
			KFactor:   KFactor{decimal.NewFromInt(16)},
			PlayerOne: rating.FromInt(1000),
			PlayerTwo: rating.FromInt(1000),
		},
		Output: Output{
			Precision: 1,
		},
	}
}

// New reads the TOML file at path over the defaults.
// An empty path skips the file. RATING_K_FACTOR overrides k_factor.
func New(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	}
	k := os.Getenv(envKFactor)
	if k != "" {
		d, err := decimal.NewFromString(k)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s=%q", envKFactor, k)
		}
		cfg.Calculation.KFactor.Decimal = d
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Calculation.Results) == 0 {
		return errors.New("at least one game result is required")
	}
	for i, result := range c.Calculation.Results {
		if !result.Valid() {
			return errors.Wrapf(rating.ErrInvalidGameResult, "result #%d", i+1)
		}
	}
	if c.Output.Precision < 0 {
		return errors.Errorf("precision must not be negative, got %d", c.Output.Precision)
	}
	return nil
}
