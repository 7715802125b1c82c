package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the client's environment variables, e.g.
// STARTUP_ENDPOINT_URL or STARTUP_REFRESH_INTERVAL=45s.
const envPrefix = "startup"

// parseEnv overlays cfg from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win
// over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		panic(err)
	}
}
