// Package config loads runtime settings from the environment. CLI flags
// default to these values and override them when set.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the scrape, weather, and serve commands need.
// The default coordinates point at the Belmont Abbey campus.
type Config struct {
	DBPath       string  `env:"CAMPUS_EVENTS_DB" envDefault:"campusconnect.db"`
	ListenAddr   string  `env:"CAMPUS_EVENTS_ADDR" envDefault:":8080"`
	AcademicURL  string  `env:"CAMPUS_EVENTS_ACADEMIC_URL"`
	AthleticsURL string  `env:"CAMPUS_EVENTS_ATHLETICS_URL"`
	Latitude     float64 `env:"CAMPUS_EVENTS_LAT" envDefault:"35.26143"`
	Longitude    float64 `env:"CAMPUS_EVENTS_LON" envDefault:"-81.036361"`
	Timezone     string  `env:"CAMPUS_EVENTS_TZ" envDefault:"America/New_York"`
	LogLevel     string  `env:"CAMPUS_EVENTS_LOG_LEVEL" envDefault:"INFO"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
