package webui

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zhulik/ccpadmin/internal/httpserver"
)

// spaHandler serves static assets and falls back to index.html so the
// client-side router can handle the path.
func spaHandler(assets fs.FS) gin.HandlerFunc {
	fileServer := http.FileServer(http.FS(assets))

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			httpserver.NotFoundHandler(c)

			return
		}

		path := strings.TrimPrefix(c.Request.URL.Path, "/")

		if _, err := fs.Stat(assets, path); errors.Is(err, fs.ErrNotExist) {
			c.Request.URL.Path = "/"
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
