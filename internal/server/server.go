package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/netip"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

type HttpServer struct {
	addr     string
	addrPort netip.AddrPort
	addrErr  error
	server   *http.Server
	log      *zap.Logger
	mu       sync.Mutex
	listener net.Listener
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	// h2c must see the connection before the logging wrapper,
	// which cannot be hijacked
	handler := NewRouter(params.Handlers, params.Logger)
	if params.Config.H2c {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	server := &http.Server{
		Addr:    params.Config.BindAddr,
		Handler: handler,
	}

	// derive request contexts from the app context
	if params.Context != nil {
		server.BaseContext = func(net.Listener) context.Context {
			return params.Context
		}
	}

	addrPort, err := ParseBindAddr(params.Config.BindAddr)

	return &HttpServer{
		addr:     params.Config.BindAddr,
		addrPort: addrPort,
		addrErr:  err,
		server:   server,
		log:      params.Logger,
	}
}

// NewLifecycleServer binds the listener when the fx app starts,
// so that a bind failure aborts startup.
func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// Start binds the listener and serves in the background.
func (s *HttpServer) Start(ctx context.Context) error {
	listener, err := s.Listen(ctx)
	if err != nil {
		return err
	}

	go s.Serve(listener)

	return nil
}

// Listen binds the configured address.
func (s *HttpServer) Listen(ctx context.Context) (net.Listener, error) {
	if s.addrErr != nil {
		s.log.Error("failed to listen", zap.String("address", s.addr), zap.Error(s.addrErr))
		return nil, s.addrErr
	}

	// bind only the configured address family, "tcp" would open
	// a dual-stack socket for 0.0.0.0
	network := "tcp6"
	if s.addrPort.Addr().Is4() {
		network = "tcp4"
	}

	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, network, s.addrPort.String())
	if err != nil {
		s.log.Error("failed to listen", zap.String("address", s.addr), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	url := "http://" + listener.Addr().String()
	s.log.Info("listening on "+url, zap.String("url", url))

	return listener, nil
}

// Serve blocks until the server is shut down.
func (s *HttpServer) Serve(listener net.Listener) error {
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("failed to serve", zap.Error(err))
		return err
	}

	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *HttpServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("failed to shutdown", zap.Error(err))
		return err
	}

	return nil
}
