package core

const (
	APIPathPrefix = "/api"

	DefaultOrigin     = "http://127.0.0.1:8080"
	DefaultBackendURL = "http://127.0.0.1:63030"
	DefaultHTTPPort   = 8080
	DefaultUsername   = "test"
	DefaultAPIKey     = "test"

	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-Id"
	HeaderContentType   = "Content-Type"

	ComponentNameWebUI = "webui"
)
