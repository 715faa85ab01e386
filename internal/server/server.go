// Package server exposes the room registry over HTTP. It is the thin
// transport shell around internal/game: routing, request decoding,
// error-to-status mapping and a websocket state feed. All game
// invariants live in the core; nothing here mutates a room except
// through its operations.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/cardtable/blackjack/internal/game"
)

// Server serves the blackjack room API.
type Server struct {
	registry *game.Registry
	logger   *log.Logger
	clock    quartz.Clock
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the clock driving the watch feed. Tests pass
// quartz.NewMock.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// NewServer creates a server around an existing registry.
func NewServer(registry *game.Registry, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		registry: registry,
		logger:   logger.WithPrefix("server"),
		clock:    quartz.NewReal(),
		upgrader: websocket.Upgrader{
			// The table UI is served from elsewhere during development.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the route table. Split out from Start so tests can
// drive it through httptest.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/rooms", s.handleCreateRoom).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{code}/join", s.handleJoinRoom).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{code}/start", s.handleStartRoom).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{code}/action", s.handleAction).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{code}/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{code}/watch", s.handleWatch).Methods(http.MethodGet)
	return r
}

// Start listens on addr until the context is cancelled, then drains
// in-flight requests.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // the watch feed holds its connection open
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}
