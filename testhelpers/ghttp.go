package testhelpers

import (
	"net/http"

	"github.com/onsi/gomega/ghttp"
	"github.com/zhulik/ccpadmin/internal/core"
)

// RespondWithJSON replies with body as application/json, the content type
// connect expects on unary responses.
func RespondWithJSON(status int, body string) http.HandlerFunc {
	return ghttp.RespondWith(status, body, http.Header{
		core.HeaderContentType: []string{"application/json"},
	})
}
