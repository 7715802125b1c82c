// Package config assembles the client's runtime settings from defaults, an
// optional JSON file, environment variables and command-line flags, in that
// order of precedence (later sources win).
package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultEndpointURL is the production script endpoint backing the idea bank.
const defaultEndpointURL = "https://script.google.com/macros/s/AKfycbwLHz4q-vCrb7Li6lpfk-klHk17tBsU7jToNRdTLnmgg-EbjSyQwP-om0-5PzbGG_bq/exec"

// Config holds the runtime settings of the idea-bank client.
//
// Durations carry the timing contract of the interaction layer: how often
// the bank view polls, how long notifications and vote highlights stay
// visible, the two transition phases, and the pause before auto-navigating
// to the bank view after a successful submit.
type Config struct {
	EndpointURL     string        `envconfig:"ENDPOINT_URL"`
	DatabasePath    string        `envconfig:"DATABASE_PATH"`
	SessionFilePath string        `envconfig:"SESSION_FILE"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL"`
	NotificationTTL time.Duration `envconfig:"NOTIFICATION_TTL"`
	HighlightWindow time.Duration `envconfig:"HIGHLIGHT_WINDOW"`
	TransitionOut   time.Duration `envconfig:"TRANSITION_OUT"`
	TransitionIn    time.Duration `envconfig:"TRANSITION_IN"`
	NavigateDelay   time.Duration `envconfig:"NAVIGATE_DELAY"`
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.EndpointURL = defaultEndpointURL
	c.DatabasePath = "startup.db"
	c.SessionFilePath = filepath.Join(os.TempDir(), "startup-app-session.json")
	c.RefreshInterval = 30 * time.Second
	c.NotificationTTL = 3 * time.Second
	c.HighlightWindow = 500 * time.Millisecond
	c.TransitionOut = 200 * time.Millisecond
	c.TransitionIn = 250 * time.Millisecond
	c.NavigateDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays the JSON
// file (if given via -c/-config), the environment and the command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
