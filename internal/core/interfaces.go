package core

import (
	"github.com/samber/do"
)

type ServiceDependency interface {
	do.Healthcheckable
	do.Shutdownable
}

type Config interface {
	Origin() string // Page location the client derives its base URL from.

	AuthEnabled() bool
	Username() string
	APIKey() string

	BackendURL() string // For the dev web server
	HTTPPort() int
	AssetsDir() string

	LogLevel() string
}
