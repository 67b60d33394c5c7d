package server

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/bff/util/logging"
)

// Module serves the `handlers` group on config.BindAddr for the
// lifetime of the fx app.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		logging.DecorateLogger("http"),
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		// force construction, the server has no consumers
		fx.Invoke(func(*HttpServer) {}),
	)
}
