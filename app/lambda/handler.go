package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/bff/internal/server"
)

type LambdaHandlerParams struct {
	fx.In

	Context  context.Context
	Config   Config
	Handlers []*server.HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

// LambdaHandler translates AWS Lambda proxy events into requests
// against the same router the tcp server uses.
type LambdaHandler struct {
	source ProxySource
	router http.Handler
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		source: params.Config.ProxySource,
		router: server.NewRouter(params.Handlers, params.Logger),
		ctx:    ctx,
		cancel: cancel,
		log:    params.Logger,
	}
}

// NewLifecycleHandler starts the runtime client with the fx app and
// cancels it on stop. An unknown proxy source fails startup.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.StartStopHook(handler.Start, handler.Shutdown))
	return handler
}

// Start runs the runtime client in the background.
func (s *LambdaHandler) Start() error {
	proxy, err := s.ProxyFunction()
	if err != nil {
		s.log.Error("failed to start lambda handler", zap.Error(err))
		return err
	}

	s.log.Info("handling lambda events", zap.Stringer("proxy_source", s.source))

	go lambda.StartWithOptions(proxy, lambda.WithContext(s.ctx))

	return nil
}

func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// ProxyFunction returns the event handler for the configured source,
// in the shape lambda.StartWithOptions expects.
func (s *LambdaHandler) ProxyFunction() (any, error) {
	if err := (Config{ProxySource: s.source}).Validate(); err != nil {
		return nil, err
	}

	switch s.source {
	case ProxySourceApiGatewayV1:
		return httpadapter.New(s.router).ProxyWithContext, nil
	case ProxySourceAlb:
		return httpadapter.NewALB(s.router).ProxyWithContext, nil
	default:
		return httpadapter.NewV2(s.router).ProxyWithContext, nil
	}
}
