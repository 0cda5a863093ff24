// Package webui serves the admin UI during development: static assets, the
// /api proxy to the admin API and a health endpoint.
package webui

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/httpserver"
)

type Server struct {
	*httpserver.Server

	backend *url.URL
}

// NewServer creates a new Server instance.
func NewServer(injector *do.Injector) (*Server, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	backend, err := url.Parse(config.BackendURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend url: %w", err)
	}

	server, err := httpserver.NewServer(injector, "webui.Server", config.HTTPPort())
	if err != nil {
		return nil, fmt.Errorf("failed to create a new http server: %w", err)
	}

	srv := &Server{
		Server:  server,
		backend: backend,
	}

	router := srv.Router()

	router.GET("/healthz", srv.HealthHandler)
	router.Any(core.APIPathPrefix+"/*path", gin.WrapH(NewProxy(backend, srv.Logger())))

	if dir := config.AssetsDir(); dir != "" {
		router.NoRoute(spaHandler(os.DirFS(dir)))
	} else {
		router.NoRoute(httpserver.NotFoundHandler)
	}

	srv.Logger().WithField("backend", backend.String()).Info("Proxying API requests.")

	return srv, nil
}

func (s *Server) Backend() *url.URL {
	return s.backend
}

func (s *Server) HealthHandler(c *gin.Context) {
	errs := lo.OmitByValues(s.Injector().HealthCheck(), []error{nil})

	if len(errs) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "FAIL",
			"errors": lo.MapValues(errs, func(err error, _ string) string { return err.Error() }),
		})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
