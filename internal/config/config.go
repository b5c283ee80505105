// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration.
type Config struct {
	Host    string `env:"HOST"`
	Port    string `env:"PORT"     envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// AttachGrace is how long a rendered page waits for its live connection
	// before its components are discarded.
	AttachGrace time.Duration `env:"MOTIONFOLIO_ATTACH_GRACE" envDefault:"30s"`
	// MaxPending caps rendered pages still waiting for their live connection.
	MaxPending int `env:"MOTIONFOLIO_MAX_PENDING" envDefault:"1024"`
	// LogSalt is mixed into hashed client addresses. A random salt is used when empty.
	LogSalt string `env:"MOTIONFOLIO_LOG_SALT"`

	Timing Timing `envPrefix:"MOTIONFOLIO_"`
}

// Timing holds the choreography constants of the interactive components.
type Timing struct {
	SubmitLatency   time.Duration `env:"SUBMIT_LATENCY"   envDefault:"2s"`
	SubmittedHold   time.Duration `env:"SUBMITTED_HOLD"   envDefault:"3s"`
	DemoTick        time.Duration `env:"DEMO_TICK"        envDefault:"30ms"`
	DemoStep        int           `env:"DEMO_STEP"        envDefault:"3"`
	Markers         int           `env:"MARKERS"          envDefault:"8"`
	MarkerStagger   time.Duration `env:"MARKER_STAGGER"   envDefault:"200ms"`
	CelebrationHold time.Duration `env:"CELEBRATION_HOLD" envDefault:"3s"`
	TooltipDelay    time.Duration `env:"TOOLTIP_DELAY"    envDefault:"2s"`
	TooltipTimeout  time.Duration `env:"TOOLTIP_TIMEOUT"  envDefault:"7s"`
}

// DefaultTiming returns the timings used when nothing is overridden.
func DefaultTiming() Timing {
	return Timing{
		SubmitLatency:   2 * time.Second,
		SubmittedHold:   3 * time.Second,
		DemoTick:        30 * time.Millisecond,
		DemoStep:        3,
		Markers:         8,
		MarkerStagger:   200 * time.Millisecond,
		CelebrationHold: 3 * time.Second,
		TooltipDelay:    2 * time.Second,
		TooltipTimeout:  7 * time.Second,
	}
}

var ErrInvalid = errors.New("invalid config")

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects timings the components cannot run with.
func (c Config) Validate() error {
	t := c.Timing
	switch {
	case c.Port == "":
		return fmt.Errorf("%w: PORT is empty", ErrInvalid)
	case t.DemoTick <= 0:
		return fmt.Errorf("%w: demo tick must be positive", ErrInvalid)
	case t.DemoStep <= 0:
		return fmt.Errorf("%w: demo step must be positive", ErrInvalid)
	case t.Markers < 0:
		return fmt.Errorf("%w: marker count is negative", ErrInvalid)
	case t.TooltipTimeout < t.TooltipDelay:
		return fmt.Errorf("%w: tooltip timeout precedes its delay", ErrInvalid)
	case c.AttachGrace <= 0:
		return fmt.Errorf("%w: attach grace must be positive", ErrInvalid)
	case c.MaxPending <= 0:
		return fmt.Errorf("%w: max pending must be positive", ErrInvalid)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
