package handler

import (
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	headerContentType = "Content-Type"

	// contentTypeText matches what net/http sniffs for the root body.
	contentTypeText = "text/plain; charset=utf-8"

	// contentTypeOctetStream is used by Echo when the request
	// carries no content type.
	contentTypeOctetStream = "application/octet-stream"
)

var rootBody = []byte("ok\n")

type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		log: params.Log,
	}
}

// Handler serves the status, health and echo endpoints.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	log *zap.Logger
}

// Root answers with a fixed status message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(headerContentType, contentTypeText)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(rootBody); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}
}

// Health answers 200 with an empty body, ignoring query and headers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Echo writes the request body back unchanged. The request's
// content type is copied verbatim, all other headers are ignored.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	// Read the body
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	contentType := contentTypeOctetStream
	if values := r.Header.Values(headerContentType); len(values) > 0 {
		contentType = values[0]
	}

	w.Header().Set(headerContentType, contentType)
	w.WriteHeader(http.StatusOK)

	// Write response body
	if _, err := w.Write(body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
