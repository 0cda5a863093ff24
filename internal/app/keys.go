package app

import (
	"errors"

	"github.com/zhulik/ccpadmin/internal/admin"
	"github.com/zhulik/ccpadmin/internal/registry"
	"github.com/zhulik/ccpadmin/internal/rpc"
)

var ErrNoContext = errors.New("application context is nil")

//nolint:gochecknoglobals
var (
	TransportKey   = registry.NewKey[*rpc.Transport]("transport")
	AdminClientKey = registry.NewKey[*admin.Client]("adminClient")
	ContextKey     = registry.NewKey[*Context]("appContext")
)

// Provide publishes the transport, the client and the context itself.
func Provide(r *registry.Registry, ctx *Context) error {
	if ctx == nil {
		return ErrNoContext
	}

	registry.Register(r, TransportKey, ctx.Transport)
	registry.Register(r, AdminClientKey, ctx.Client)
	registry.Register(r, ContextKey, ctx)

	return nil
}

func UseTransport(r *registry.Registry) (*rpc.Transport, error) {
	return registry.Resolve(r, TransportKey) //nolint:wrapcheck
}

func UseAdminClient(r *registry.Registry) (*admin.Client, error) {
	return registry.Resolve(r, AdminClientKey) //nolint:wrapcheck
}

func UseContext(r *registry.Registry) (*Context, error) {
	return registry.Resolve(r, ContextKey) //nolint:wrapcheck
}
