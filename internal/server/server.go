// Package server wires the MCP surface of the service: the send_email tool,
// the property inquiry template resource, and the streamable HTTP transport
// they ride on. The server itself holds no per-request state; credentials
// travel through the request context and die with it.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mailgate/resend-mcp/pkg/logger"
	"github.com/mailgate/resend-mcp/pkg/mailer"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// Dispatcher issues a single email dispatch to the provider.
type Dispatcher interface {
	Send(ctx context.Context, apiKey string, msg *mailer.Message) (*mailer.SendResult, error)
}

// Config holds server configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Addr            string        `env:"ADDRESS" envDefault:":8080"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Server hosts the MCP endpoint over HTTP.
type Server struct {
	log        *slog.Logger
	dispatcher Dispatcher
	renderer   *mailer.Renderer
	handler    http.Handler
	cfg        Config
}

// New assembles the MCP server and its HTTP handler.
func New(cfg Config, dispatcher Dispatcher, renderer *mailer.Renderer, log *slog.Logger) *Server {
	if log == nil {
		log = logger.NewNope()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}

	s := &Server{
		log:        log,
		dispatcher: dispatcher,
		renderer:   renderer,
		cfg:        cfg,
	}

	m := server.NewMCPServer(
		"Resend Email",
		Version,
		server.WithResourceCapabilities(false, true),
		server.WithLogging(),
	)
	m.AddTool(newSendEmailTool(), s.handleSendEmail)
	m.AddResourceTemplate(newPropertyInquiryResource(), s.handlePropertyInquiry)

	// Stateless: every MCP call is independent, no sessions to resume.
	streamable := server.NewStreamableHTTPServer(m,
		server.WithHTTPContextFunc(withInboundHeaders),
		server.WithStateLess(true),
	)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type", "Mcp-Session-Id",
			"X-Api-Key", "X-Resend-Api-Key", "X-Sender-Email",
		},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/mcp", streamable)

	s.handler = r
	return s
}

// Handler exposes the HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run starts the HTTP server and blocks until shutdown.
// It handles SIGINT and SIGTERM for graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.log.Info("shutdown completed")
	return nil
}
