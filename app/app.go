package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/bff/config"
	"github.com/lambda-feedback/bff/internal/shell"
	"github.com/lambda-feedback/bff/util/conf"
	"github.com/lambda-feedback/bff/util/logging"
)

// New creates the shell shared by all commands, providing the
// logger and the global config stored in the cli context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
	)

	return shell.New(log, sharedModule), nil
}
