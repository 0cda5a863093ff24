package webui

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/httpserver"
)

// NewProxy forwards /api/* to target with the /api prefix stripped. The Host
// header is rewritten to the target's.
func NewProxy(target *url.URL, logger logrus.FieldLogger) http.Handler {
	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WithError(err).WithField("path", r.URL.Path).Warn("Backend is unreachable.")

			w.Header().Set(core.HeaderContentType, "application/json")

			httpserver.WriteJSON(httpserver.ErrorBody{Error: "Bad gateway"}, w, http.StatusBadGateway) //nolint:errcheck
		},
	}

	return http.StripPrefix(core.APIPathPrefix, proxy)
}
