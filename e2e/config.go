package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_RING_DELAY shortens the audio admission grace period so the
	// scenarios do not sit through the production four seconds.
	RingDelay time.Duration `envconfig:"E2E_RING_DELAY" default:"100ms"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_STATS_INTERVAL drives the telemetry worker during the run
	StatsInterval time.Duration `envconfig:"E2E_STATS_INTERVAL" default:"50ms"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
