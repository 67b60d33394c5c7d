package server

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// HttpHandler binds a handler to a http.ServeMux pattern,
// e.g. "GET /healthz".
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

// AsHttpHandler contributes a handler to the `handlers` group
// that all servers mount.
func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// NewServeMux mounts all handlers on a fresh mux. Requests that
// match no pattern get the mux's default 404.
func NewServeMux(handlers []*HttpHandler) *http.ServeMux {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Pattern, handler.Handler)
	}

	return mux
}

// NewRouter mounts all handlers and logs every request at debug level.
// Both the tcp server and the lambda handler serve through it.
func NewRouter(handlers []*HttpHandler, log *zap.Logger) http.Handler {
	return withLogging(log, NewServeMux(handlers))
}
