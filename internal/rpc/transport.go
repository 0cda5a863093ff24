// Package rpc binds connect clients to the admin API base URL.
package rpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/zhulik/ccpadmin/internal/codec"
)

type Option func(t *Transport)

func WithHTTPClient(client connect.HTTPClient) Option {
	return func(t *Transport) {
		t.client = client
	}
}

func WithInterceptors(interceptors ...connect.Interceptor) Option {
	return func(t *Transport) {
		t.interceptors = append(t.interceptors, interceptors...)
	}
}

// Transport holds what every connect client of a service shares: the base URL,
// the HTTP client and the interceptors. It is immutable once built.
type Transport struct {
	baseURL      string
	client       connect.HTTPClient
	interceptors []connect.Interceptor
}

// NewTransport builds a transport. No I/O happens until the first call.
func NewTransport(baseURL string, opts ...Option) *Transport {
	t := &Transport{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.interceptors = append([]connect.Interceptor(nil), t.interceptors...)

	return t
}

func (t *Transport) BaseURL() string {
	return t.baseURL
}

// NewClient returns a connect client for procedure that speaks JSON through the
// transport's interceptors.
func NewClient[Req, Res any](t *Transport, procedure string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](
		t.client,
		t.baseURL+procedure,
		connect.WithCodec(codec.JSON{}),
		connect.WithInterceptors(t.interceptors...),
	)
}

// Unary performs a unary call and returns the response message.
func Unary[Req, Res any](ctx context.Context, client *connect.Client[Req, Res], msg *Req) (*Res, error) {
	resp, err := client.CallUnary(ctx, connect.NewRequest(msg))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return resp.Msg, nil
}

// Call invokes method of service with untyped messages. A nil in is sent as
// an empty object and the reply is decoded into out unless it is nil.
func (t *Transport) Call(ctx context.Context, service ServiceDescriptor, method string, in, out any) error {
	desc, ok := service.Method(method)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProcedure, service.Procedure(method))
	}

	if desc.StreamType != connect.StreamTypeUnary {
		return fmt.Errorf("%w: %s is not unary", ErrUnsupportedStreamType, service.Procedure(method))
	}

	body := codec.RawMessage("{}")

	if in != nil {
		data, err := codec.Marshal(in)
		if err != nil {
			return err //nolint:wrapcheck
		}

		body = data
	}

	client := NewClient[codec.RawMessage, codec.RawMessage](t, service.Procedure(method))

	reply, err := Unary(ctx, client, &body)
	if err != nil {
		return err
	}

	if out == nil || len(*reply) == 0 {
		return nil
	}

	return codec.UnmarshalInto(*reply, out) //nolint:wrapcheck
}
