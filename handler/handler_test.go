package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/lambda-feedback/bff/internal/server"
)

func newTestHandler() *Handler {
	return NewHandler(HandlerParams{Log: zap.NewNop()})
}

// newTestMux wires the handler module the way the servers do.
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	var handlers []*server.HttpHandler

	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		Module(),
		fx.Invoke(fx.Annotate(func(h []*server.HttpHandler) {
			handlers = h
		}, fx.ParamTags(`group:"handlers"`))),
	)
	app.RequireStart()
	t.Cleanup(func() { app.RequireStop() })

	require.Len(t, handlers, 3)

	return server.NewServeMux(handlers)
}

func readBody(t *testing.T, res *http.Response) []byte {
	t.Helper()

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return body
}

func TestRoot(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler().Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, []byte("ok\n"), readBody(t, res))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header http.Header
	}{
		{"plain", "/healthz", nil},
		{"query", "/healthz?verbose=1&probe=liveness", nil},
		{"headers", "/healthz", http.Header{"Accept": {"application/json"}, "X-Probe": {"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header[k] = v
			}

			w := httptest.NewRecorder()
			newTestHandler().Health(w, req)

			res := w.Result()
			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Empty(t, readBody(t, res))
		})
	}
}

func TestEcho(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{"json", []byte(`{"hello":"world"}`), "application/json", "application/json"},
		{"text with params", []byte("hi"), "text/plain; charset=latin1", "text/plain; charset=latin1"},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}, "image/png", "image/png"},
		{"no content type", []byte("raw bytes"), "", "application/octet-stream"},
		{"empty body", []byte{}, "text/plain", "text/plain"},
		{"empty body without content type", nil, "", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			w := httptest.NewRecorder()
			newTestHandler().Echo(w, req)

			res := w.Result()
			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, tt.want, res.Header.Get("Content-Type"))

			body := readBody(t, res)
			assert.Len(t, body, len(tt.body))
			assert.True(t, bytes.Equal(tt.body, body))
		})
	}
}

func TestEcho_IgnoresOtherHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("x")))
	req.Header.Set("X-Custom", "value")
	req.Header.Set("Authorization", "Bearer token")

	w := httptest.NewRecorder()
	newTestHandler().Echo(w, req)

	res := w.Result()
	assert.Empty(t, res.Header.Get("X-Custom"))
	assert.Empty(t, res.Header.Get("Authorization"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestEcho_ReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/echo", failingReader{})

	w := httptest.NewRecorder()
	newTestHandler().Echo(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	t.Cleanup(srv.Close)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "ok\n"},
		{"health", http.MethodGet, "/healthz", http.StatusOK, ""},
		{"health with query", http.MethodGet, "/healthz?x=1", http.StatusOK, ""},
		{"echo", http.MethodPost, "/echo", http.StatusOK, "payload"},
		{"unknown", http.MethodGet, "/does-not-exist", http.StatusNotFound, ""},
		{"below root", http.MethodGet, "/healthz/extra", http.StatusNotFound, ""},
		{"echo with get", http.MethodGet, "/echo", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.method == http.MethodPost {
				body = bytes.NewReader([]byte(tt.body))
			}

			req, err := http.NewRequest(tt.method, srv.URL+tt.path, body)
			require.NoError(t, err)

			res, err := srv.Client().Do(req)
			require.NoError(t, err)

			resBody := readBody(t, res)
			assert.Equal(t, tt.status, res.StatusCode)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, string(resBody))
			}
		})
	}
}

func TestRoutes_EchoHeaderCaseInsensitive(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	t.Cleanup(srv.Close)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/echo", bytes.NewReader([]byte("<a/>")))
	require.NoError(t, err)

	// bypass canonicalization so the wire carries a lowercase name
	req.Header["content-type"] = []string{"application/xml"}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)

	assert.Equal(t, "<a/>", string(readBody(t, res)))
	assert.Equal(t, "application/xml", res.Header.Get("Content-Type"))
}

func TestRoutes_UncleanPathRedirects(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	tests := map[string]string{
		"//healthz":     "/healthz",
		"/./healthz":    "/healthz",
		"/x/../healthz": "/healthz",
	}

	for path, location := range tests {
		t.Run(path, func(t *testing.T) {
			res, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			readBody(t, res)

			assert.Equal(t, http.StatusMovedPermanently, res.StatusCode)
			assert.Equal(t, location, res.Header.Get("Location"))
		})
	}
}
