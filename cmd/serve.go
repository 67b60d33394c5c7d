package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/bff/app"
	"github.com/lambda-feedback/bff/app/standalone"
	"github.com/lambda-feedback/bff/internal/server"
)

var (
	serveCmdDescription = `The serve command starts a http server on the bind address
and blocks indefinitely, processing incoming http requests.

The bind address must be a literal ip:port socket address,
e.g. 0.0.0.0:8080 or [::1]:8080. Startup fails if the address
is invalid or cannot be bound.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bind-addr",
				Aliases:  []string{"b"},
				Usage:    "The ip:port address to listen on.",
				Value:    server.DefaultBindAddr,
				Category: "http",
				EnvVars:  []string{"BIND_ADDR"},
			},
			&cli.BoolFlag{
				Name:     "http-h2c",
				Aliases:  []string{"h2c"},
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	cfg, err := parseCommandConfig[standalone.Config](ctx)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
