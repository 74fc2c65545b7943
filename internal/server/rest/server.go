// Package rest exposes the development API server over HTTP/JSON using the
// same routes and status codes as the hosted Pesca API.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/dmitrijs2005/moneyboy/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address  string
	users    *services.UserService
	payments *services.PaymentService
	logger   logging.Logger
	router   *mux.Router
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ps *services.PaymentService) *HTTPServer {
	s := &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		payments: ps,
	}
	s.router = s.routes()
	return s
}

func (s *HTTPServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", s.refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)

	auth := s.accessTokenMiddleware
	r.Handle("/auth/logout", auth(http.HandlerFunc(s.logout))).Methods(http.MethodDelete)
	r.Handle("/users/profile", auth(http.HandlerFunc(s.profile))).Methods(http.MethodGet)
	r.Handle("/users", auth(http.HandlerFunc(s.listUsers))).Methods(http.MethodGet)
	r.Handle("/payments", auth(http.HandlerFunc(s.listPayments))).Methods(http.MethodGet)
	r.Handle("/payments", auth(http.HandlerFunc(s.createPayment))).Methods(http.MethodPost)

	return r
}

// Handler returns the router, mainly for httptest servers.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
