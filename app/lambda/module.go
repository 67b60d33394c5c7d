package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/bff/handler"
	"github.com/lambda-feedback/bff/util/logging"
)

// Module serves the handler routes from AWS Lambda proxy events.
func Module(config Config) fx.Option {
	return fx.Module("lambda",
		logging.DecorateLogger("lambda"),
		fx.Supply(config),
		handler.Module(),
		// nothing consumes the handler, constructing it registers the hooks
		fx.Invoke(NewLifecycleHandler),
	)
}
