package rpc

import (
	"context"
	"fmt"

	"github.com/zhulik/ccpadmin/internal/core"
)

// CredentialProvider yields the Authorization header value for outgoing calls.
type CredentialProvider interface {
	Credential(ctx context.Context) (string, error)
}

type CredentialFunc func(ctx context.Context) (string, error)

func (f CredentialFunc) Credential(ctx context.Context) (string, error) {
	return f(ctx)
}

type StaticCredential string

func (s StaticCredential) Credential(_ context.Context) (string, error) {
	return string(s), nil
}

func APIKeyCredential(username, key string) StaticCredential {
	return StaticCredential(fmt.Sprintf("ApiKey %s:%s", username, key))
}

// DefaultCredential is a placeholder until the admin UI gets a login flow.
var DefaultCredential = APIKeyCredential(core.DefaultUsername, core.DefaultAPIKey) //nolint:gochecknoglobals
