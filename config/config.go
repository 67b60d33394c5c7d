package config

import (
	"github.com/lambda-feedback/bff/internal/server"
	"github.com/lambda-feedback/bff/util/conf"
)

// DefaultConfig holds the defaults for every config key,
// shared by the global and the command configs.
var DefaultConfig = conf.DefaultConfig{
	"log_format":          "production",
	"bind_addr":           server.DefaultBindAddr,
	"lambda_proxy_source": "API_GW_V2",
}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// ConfigFile is an optional json or dotenv file with
	// additional configuration
	ConfigFile string `conf:"config_file"`
}
