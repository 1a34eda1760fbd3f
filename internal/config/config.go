package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Default values for configuration
const (
	DefaultPoints    = 10
	DefaultTimeLimit = 10 * time.Minute
)

// Config holds the application configuration.
type Config struct {
	Demo      bool
	LeftKind  string // human | ai
	RightKind string // human | ai
	Points    int
	TimeLimit time.Duration

	TuningPath string
	PersistURL string
	RecordPath string
	Debug      bool
}

// ParseArgs parses command line arguments and returns a Config.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pongcore", flag.ContinueOnError)

	demo := fs.Bool("demo", false, "run the ambient demo mode (two background paddles)")
	left := fs.String("left", "human", "left player kind: human or ai")
	right := fs.String("right", "ai", "right player kind: human or ai")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	limit := fs.Duration("time-limit", DefaultTimeLimit, "match time limit, 0 to disable")
	tuning := fs.String("tuning", "", "path to a YAML tuning file")
	persist := fs.String("persist", "", "base URL of the match persistence API")
	record := fs.String("record", "", "write a match replay to this file")
	debug := fs.Bool("debug", false, "write debug logs to a file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}
	if *limit < 0 {
		return nil, errors.New("time-limit cannot be negative")
	}
	if !validKind(*left) || !validKind(*right) {
		return nil, fmt.Errorf("player kind must be human or ai, got %q/%q", *left, *right)
	}

	cfg := &Config{
		Demo:       *demo,
		LeftKind:   *left,
		RightKind:  *right,
		Points:     *points,
		TimeLimit:  *limit,
		TuningPath: *tuning,
		PersistURL: *persist,
		RecordPath: *record,
		Debug:      *debug,
	}

	return cfg, nil
}

func validKind(k string) bool {
	return k == "human" || k == "ai"
}
