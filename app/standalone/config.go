package standalone

import "github.com/lambda-feedback/bff/internal/server"

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

func (c Config) Validate() error {
	return c.HttpConfig.Validate()
}
