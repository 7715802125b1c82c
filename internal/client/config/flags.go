package config

import (
	"flag"
	"os"
	"time"

	"github.com/dgidpl/startup-app/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed
// below are consumed; anything else on the command line is left for other
// flag sets (see flagx.FilterArgs).
func parseFlags(cfg *Config) {
	var (
		endpoint string
		dbPath   string
		session  string
		refresh  time.Duration
	)

	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-d", "-s", "-r"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&endpoint, "e", "", "idea-bank endpoint URL")
	fs.StringVar(&dbPath, "d", "", "path to the local vote database")
	fs.StringVar(&session, "s", "", "path to the session file")
	fs.DurationVar(&refresh, "r", 0, "bank view refresh interval")
	_ = fs.Parse(args)

	if endpoint != "" {
		cfg.EndpointURL = endpoint
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if session != "" {
		cfg.SessionFilePath = session
	}
	if refresh != 0 {
		cfg.RefreshInterval = refresh
	}
}
