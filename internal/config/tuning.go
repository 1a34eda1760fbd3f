package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lromero/pongcore/internal/game"
)

// Tuning is the optional YAML overlay over the built-in physics and
// pacing defaults. Zero/absent fields keep the default value, so a
// tuning file only needs to name the knobs it changes.
type Tuning struct {
	BaseSpeedFrac    float64 `yaml:"baseSpeedFrac"`
	BallRadiusFrac   float64 `yaml:"ballRadiusFrac"`
	PaddleWidthFrac  float64 `yaml:"paddleWidthFrac"`
	PaddleHeightFrac float64 `yaml:"paddleHeightFrac"`
	PaddleSpeedFrac  float64 `yaml:"paddleSpeedFrac"`

	AccelRate float64 `yaml:"accelRate"`
	AccelMax  float64 `yaml:"accelMax"`

	PredictDebounce float64 `yaml:"predictDebounce"`
	AIRecedeTime    float64 `yaml:"aiRecedeTime"`

	CountdownFrom int           `yaml:"countdownFrom"`
	CountdownStep time.Duration `yaml:"countdownStep"`
}

// LoadParams returns the simulation parameters, overlaying the tuning
// file at path when one is given.
func LoadParams(path string) (game.Params, error) {
	params := game.DefaultParams()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return params, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	t.apply(&params)
	if err := validate(params); err != nil {
		return params, err
	}
	return params, nil
}

func (t Tuning) apply(p *game.Params) {
	if t.BaseSpeedFrac > 0 {
		p.BaseSpeedFrac = t.BaseSpeedFrac
	}
	if t.BallRadiusFrac > 0 {
		p.BallRadiusFrac = t.BallRadiusFrac
	}
	if t.PaddleWidthFrac > 0 {
		p.PaddleWidthFrac = t.PaddleWidthFrac
	}
	if t.PaddleHeightFrac > 0 {
		p.PaddleHeightFrac = t.PaddleHeightFrac
	}
	if t.PaddleSpeedFrac > 0 {
		p.PaddleSpeedFrac = t.PaddleSpeedFrac
	}
	if t.AccelRate > 0 {
		p.AccelRate = t.AccelRate
	}
	if t.AccelMax > 0 {
		p.AccelMax = t.AccelMax
	}
	if t.PredictDebounce > 0 {
		p.PredictDebounce = t.PredictDebounce
	}
	if t.AIRecedeTime > 0 {
		p.AIRecedeTime = t.AIRecedeTime
	}
	if t.CountdownFrom > 0 {
		p.CountdownFrom = t.CountdownFrom
	}
	if t.CountdownStep > 0 {
		p.CountdownStep = t.CountdownStep
	}
}

func validate(p game.Params) error {
	if p.AccelMax < game.InitialMultiplier {
		return fmt.Errorf("accelMax %f below the initial multiplier", p.AccelMax)
	}
	if p.PaddleHeightFrac >= 1 {
		return fmt.Errorf("paddleHeightFrac %f must be below 1", p.PaddleHeightFrac)
	}
	return nil
}
