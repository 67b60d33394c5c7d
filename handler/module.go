package handler

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("handler",
		fx.Provide(NewHandler),
		fx.Provide(NewRootRoute),
		fx.Provide(NewHealthRoute),
		fx.Provide(NewEchoRoute),
	)
}
