// Package webhook receives Telegram webhook updates over HTTP and
// drives the inline query service with them.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/tolarian-archive/scryglass/internal/core/ports/driven"
	"github.com/tolarian-archive/scryglass/internal/core/ports/driving"
	"github.com/tolarian-archive/scryglass/internal/logger"
)

// DefaultListenAddr is the default listen address.
const DefaultListenAddr = ":8080"

// Server is the webhook HTTP server.
type Server struct {
	addr      string
	service   driving.InlineQueryService
	responder driven.InlineResponder
	server    *http.Server
	listener  net.Listener
}

// NewServer creates a webhook server answering inline queries through
// service and delivering the answers through responder.
func NewServer(addr string, service driving.InlineQueryService, responder driven.InlineResponder) *Server {
	if addr == "" {
		addr = DefaultListenAddr
	}

	s := &Server{
		addr:      addr,
		service:   service,
		responder: responder,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", s.handleUpdate)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins listening and serving in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("webhook: listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("webhook server: %v", err)
		}
	}()

	logger.Info("webhook server listening on %s", listener.Addr())
	return nil
}

// Addr returns the bound listen address. Only valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server, waiting for in-flight updates.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
