package handler

import (
	"net/http"

	"github.com/lambda-feedback/bff/internal/server"
)

// "/{$}" only matches the root path, not every path below it.
func NewRootRoute(handler *Handler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /{$}", http.HandlerFunc(handler.Root))
}

func NewHealthRoute(handler *Handler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /healthz", http.HandlerFunc(handler.Health))
}

func NewEchoRoute(handler *Handler) server.HttpHandlerResult {
	return server.AsHttpHandler("POST /echo", http.HandlerFunc(handler.Echo))
}
