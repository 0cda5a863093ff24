// Package app builds the transport and the admin client once per process and
// publishes them to consumers.
package app

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/location"
	"github.com/zhulik/ccpadmin/internal/rpc"
)

// Context carries everything a consumer needs to talk to the admin API.
// It is built once at startup and passed by reference.
type Context struct {
	Config    core.Config
	Logger    logrus.FieldLogger
	Location  location.Location
	Transport *rpc.Transport
	Client    *admin.Client
}

// New derives the page location from the config and builds the transport and client.
func New(config core.Config, logger logrus.FieldLogger) (*Context, error) {
	loc, err := location.Parse(config.Origin())
	if err != nil {
		return nil, fmt.Errorf("failed to parse origin: %w", err)
	}

	var credentials rpc.CredentialProvider
	if config.AuthEnabled() {
		credentials = rpc.APIKeyCredential(config.Username(), config.APIKey())
	}

	logger = logger.WithField("component", "app.Context")

	transport := NewTransport(loc, credentials,
		rpc.RequestIDInterceptor(),
		rpc.LoggingInterceptor(logger),
	)

	logger.WithField("baseURL", transport.BaseURL()).Debug("Transport created.")

	return &Context{
		Config:    config,
		Logger:    logger,
		Location:  loc,
		Transport: transport,
		Client:    admin.NewClient(transport),
	}, nil
}

// NewTransport builds a transport for {loc}/api. When credentials is not nil the
// authorization interceptor runs first, followed by extra.
func NewTransport(loc location.Location, credentials rpc.CredentialProvider, extra ...connect.Interceptor) *rpc.Transport {
	var interceptors []connect.Interceptor

	if credentials != nil {
		interceptors = append(interceptors, rpc.AuthInterceptor(credentials))
	}

	interceptors = append(interceptors, extra...)

	return rpc.NewTransport(loc.BaseURL(), rpc.WithInterceptors(interceptors...))
}
