package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ormanli/atm-aspects/internal/app/atm"
	"github.com/ormanli/atm-aspects/internal/app/notification"
	"github.com/ormanli/atm-aspects/internal/config"
	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// Service defines the ATM operations served over HTTP.
type Service interface {
	Withdraw(ctx context.Context, amount int) (string, error)
	Deposit(ctx context.Context, amount int) error
	Balance(ctx context.Context) (string, error)
}

// Notifier defines notification delivery served over HTTP.
type Notifier interface {
	Notify(ctx context.Context, message string) (string, error)
}

// Server exposes the operations as plain text HTTP endpoints.
type Server struct {
	cfg      config.Config
	service  Service
	notifier Notifier
	router   chi.Router
	logger   *slog.Logger
}

// NewServer creates the HTTP server. metrics is mounted on /metrics when not nil.
func NewServer(cfg config.Config, service Service, notifier Notifier, metrics http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		service:  service,
		notifier: notifier,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Route("/atm", func(r chi.Router) {
		r.Get("/withdraw", s.withdraw)
		r.Get("/deposit", s.deposit)
		r.Get("/balance", s.balance)
	})
	r.Get("/send", s.send)

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	s.router = r

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens for requests until ctx is cancelled, then drains in-flight requests
// for at most the graceful shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.cfg.HTTPHost, s.cfg.HTTPPort))
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Serve(listener)
	}()

	s.logger.Info("HTTP server started", "port", s.cfg.HTTPPort)
	defer s.logger.Info("HTTP server stopped")

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ServerGracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	amount, err := amountParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.service.Withdraw(r.Context(), amount)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, result)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	amount, err := amountParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.service.Deposit(r.Context(), amount); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Deposit initiated")
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Balance(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, result)
}

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("msg") {
		s.writeError(w, r, atm.ErrInvalidRequest)
		return
	}

	result, err := s.notifier.Notify(r.Context(), r.URL.Query().Get("msg"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, result)
}

func amountParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return 0, atm.ErrInvalidRequest
	}

	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, atm.ErrInvalidAmount
	}

	return amount, nil
}

// statusCode maps a failure to the HTTP status returned to the caller.
func statusCode(err error) int {
	switch {
	case errors.Is(err, atm.ErrInvalidRequest),
		errors.Is(err, atm.ErrInvalidAmount),
		errors.Is(err, notification.ErrInvalidMessage),
		errors.Is(err, pipeline.ErrInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, pipeline.ErrPolicyViolation):
		return http.StatusForbidden
	case errors.Is(err, pipeline.ErrUnknownOperation):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	}

	writeText(w, code, err.Error())
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
