package config

import (
	"encoding/json"
	"os"

	"github.com/dgidpl/startup-app/internal/flagx"
	"github.com/dgidpl/startup-app/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Durations may be
// given as strings ("30s") or integer nanoseconds; see timex.Duration.
// Zero-value fields leave the current Config value in place.
type JsonConfig struct {
	EndpointURL     string         `json:"endpoint_url"`
	DatabasePath    string         `json:"database_path"`
	SessionFilePath string         `json:"session_file"`
	RefreshInterval timex.Duration `json:"refresh_interval"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
	HighlightWindow timex.Duration `json:"highlight_window"`
	TransitionOut   timex.Duration `json:"transition_out"`
	TransitionIn    timex.Duration `json:"transition_in"`
	NavigateDelay   timex.Duration `json:"navigate_delay"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag means no JSON is loaded. Read or unmarshal errors panic; the
// caller asked for a specific file and silently ignoring it would hide a
// misconfiguration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionFilePath != "" {
		cfg.SessionFilePath = jc.SessionFilePath
	}
	if jc.RefreshInterval.Duration != 0 {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.HighlightWindow.Duration != 0 {
		cfg.HighlightWindow = jc.HighlightWindow.Duration
	}
	if jc.TransitionOut.Duration != 0 {
		cfg.TransitionOut = jc.TransitionOut.Duration
	}
	if jc.TransitionIn.Duration != 0 {
		cfg.TransitionIn = jc.TransitionIn.Duration
	}
	if jc.NavigateDelay.Duration != 0 {
		cfg.NavigateDelay = jc.NavigateDelay.Duration
	}
}
