package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goserg/rating"
	"github.com/goserg/rating/elo"
	"github.com/goserg/rating/internal/config"
	"github.com/goserg/rating/internal/logger"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rating", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to TOML config")
	fs.String("k", "", "k-factor")
	fs.String("one", "", "rating of player one")
	fs.String("two", "", "rating of player two")
	fs.String("results", "", "comma separated results from player one's view: win,loss,draw")
	fs.Int("precision", 1, "decimal places of the rounded output")
	fs.Bool("debug", false, "log every game")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	// flags given explicitly win over the config file
	fs.Visit(func(f *flag.Flag) {
		if err == nil {
			err = applyFlag(&cfg, f.Name, f.Value.String())
		}
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(stderr, cfg.Output.Debug)
	a, b := calculate(log, cfg.Calculation)

	p := cfg.Output.Precision
	fmt.Fprintf(stdout, "player one: %s (%s)\n", a, a.Decimal().Round(p).StringFixed(p))
	fmt.Fprintf(stdout, "player two: %s (%s)\n", b, b.Decimal().Round(p).StringFixed(p))
	return nil
}

func calculate(log logrus.FieldLogger, c config.Calculation) (rating.Rating, rating.Rating) {
	s := elo.NewFromDecimal(c.KFactor.Decimal)
	log.WithFields(logrus.Fields{
		"k":     s.K().String(),
		"one":   c.PlayerOne.String(),
		"two":   c.PlayerTwo.String(),
		"games": len(c.Results),
	}).Info("calculating ratings")

	return rating.CalculateMultiple(&loggingCalculator{next: s, log: log}, c.PlayerOne, c.PlayerTwo, c.Results)
}

// loggingCalculator logs every game it passes on to next.
type loggingCalculator struct {
	next  rating.Calculator
	log   logrus.FieldLogger
	games int
}

func (l *loggingCalculator) Calculate(one, two rating.Rating, result rating.GameResult) (rating.Rating, rating.Rating) {
	a, b := l.next.Calculate(one, two, result)
	l.games++
	l.log.WithFields(logrus.Fields{
		"game":   l.games,
		"result": result.String(),
		"one":    a.Value(),
		"two":    b.Value(),
	}).Debug("game applied")
	return a, b
}

func applyFlag(cfg *config.Config, name, value string) error {
	var err error
	switch name {
	case "k":
		cfg.Calculation.KFactor.Decimal, err = decimal.NewFromString(value)
	case "one":
		cfg.Calculation.PlayerOne, err = rating.Parse(value)
	case "two":
		cfg.Calculation.PlayerTwo, err = rating.Parse(value)
	case "results":
		cfg.Calculation.Results, err = parseResults(value)
	case "precision":
		var p int64
		p, err = strconv.ParseInt(value, 10, 32)
		cfg.Output.Precision = int32(p)
	case "debug":
		cfg.Output.Debug, err = strconv.ParseBool(value)
	}
	return errors.Wrapf(err, "-%s", name)
}

func parseResults(s string) ([]rating.GameResult, error) {
	var results []rating.GameResult
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := rating.ParseGameResult(part)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
