package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/bff/app"
	"github.com/lambda-feedback/bff/app/lambda"
)

var lambdaCmd = &cli.Command{
	Name:  "lambda",
	Usage: "Serve the routes from AWS Lambda proxy events.",
	Description: `The lambda command runs the AWS Lambda runtime interface client
instead of a tcp listener. Every proxy event is translated into
a http request against the same routes the serve command exposes.

The event shape depends on what invokes the function: API
Gateway REST (API_GW_V1), API Gateway HTTP (API_GW_V2) or an
Application Load Balancer target group (ALB).`,
	Action: lambdaAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "lambda-proxy-source",
			Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
			Value:    lambda.ProxySourceApiGatewayV2.String(),
			EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
			Category: "lambda",
		},
	},
}

func lambdaAction(ctx *cli.Context) error {
	cfg, err := parseCommandConfig[lambda.Config](ctx)
	if err != nil {
		return err
	}

	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	return shell.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
