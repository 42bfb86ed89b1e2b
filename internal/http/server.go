package http

import (
	"context"
	"errors"
	"net/http"

	"bankledger/internal/core"
)

func loggingMiddleware(logger core.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer *http.Server
	handler    Handler
	logger     core.Logger
}

func NewServer(teller Teller, logger core.Logger, config Config) *Server {
	handler := NewHandler(teller, logger)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      loggingMiddleware(logger, Routes(handler)),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		logger:     logger,
	}
}

func Routes(h Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /customers", h.PostCustomers)
	mux.HandleFunc("POST /customers/{name}/accounts", h.PostAccounts)
	mux.HandleFunc("POST /customers/{name}/accounts/{number}/deposits", h.PostDeposits)
	mux.HandleFunc("POST /customers/{name}/accounts/{number}/withdrawals", h.PostWithdrawals)
	mux.HandleFunc("GET /customers/{name}/accounts/{number}/statement", h.GetStatement)

	return mux
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
