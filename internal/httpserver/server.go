package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
)

type Server struct {
	injector *do.Injector
	router   *gin.Engine
	server   http.Server

	mu    sync.RWMutex
	error error

	logger logrus.FieldLogger
}

func NewRouter(logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(JSONRecovery(logger))
	router.Use(LoggingMiddleware(logger))
	router.Use(JSONErrorHandler(logger))

	return router
}

// NewServer creates a new Server instance.
func NewServer(injector *do.Injector, component string, port int) (*Server, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", component)

	router := NewRouter(logger)

	defer logger.Info("Server created.")

	return &Server{
		injector: injector,
		router:   router,
		server: http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", port),
			ReadHeaderTimeout: ReadHeaderTimeout,
			Handler:           router,
		},
		logger: logger,
	}, nil
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Logger() logrus.FieldLogger {
	return s.logger
}

func (s *Server) Injector() *do.Injector {
	return s.injector
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) HealthCheck() error {
	s.logger.Debug("Server health check.")

	err := s.Err()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Err returns why the server stopped, nil while it is running.
func (s *Server) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.error
}

func (s *Server) setErr(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.error = err

	return err
}

func (s *Server) Shutdown() error {
	s.logger.Debug("Server shutting down...")
	defer s.logger.Debug("Server shot down.")

	err := s.server.Shutdown(context.Background())
	if err != nil {
		return fmt.Errorf("failed to shut down the http server: %w", err)
	}

	return nil
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("Starting server at: ", s.server.Addr)

	return s.setErr(s.server.ListenAndServe())
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting server at: ", ln.Addr())

	return s.setErr(s.server.Serve(ln))
}
