// Package admin is the typed client of the CCP admin service.
package admin

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/rpc"
)

// Client exposes one method per remote procedure. It is bound to a single
// transport for its whole lifetime; a new transport needs a new client.
type Client struct {
	transport *rpc.Transport

	createPackage           *connect.Client[CreatePackageRequest, CreatePackageResponse]
	readPackage             *connect.Client[ReadPackageRequest, ReadPackageResponse]
	listActivePackages      *connect.Client[ListActivePackagesRequest, ListActivePackagesResponse]
	listAwaitingDecisions   *connect.Client[ListAwaitingDecisionsRequest, ListAwaitingDecisionsResponse]
	resolveAwaitingDecision *connect.Client[ResolveAwaitingDecisionRequest, ResolveAwaitingDecisionResponse]
	approveTransfer         *connect.Client[ApproveTransferRequest, ApproveTransferResponse]
	approveJob              *connect.Client[ApproveJobRequest, ApproveJobResponse]
	approveTransferByPath   *connect.Client[ApproveTransferByPathRequest, ApproveTransferByPathResponse]
	approvePartialReingest  *connect.Client[ApprovePartialReingestRequest, ApprovePartialReingestResponse]
}

func NewClient(transport *rpc.Transport) *Client {
	procedure := ServiceDescriptor.Procedure

	return &Client{
		transport: transport,

		createPackage: rpc.NewClient[CreatePackageRequest, CreatePackageResponse](
			transport, procedure(MethodCreatePackage)),
		readPackage: rpc.NewClient[ReadPackageRequest, ReadPackageResponse](
			transport, procedure(MethodReadPackage)),
		listActivePackages: rpc.NewClient[ListActivePackagesRequest, ListActivePackagesResponse](
			transport, procedure(MethodListActivePackages)),
		listAwaitingDecisions: rpc.NewClient[ListAwaitingDecisionsRequest, ListAwaitingDecisionsResponse](
			transport, procedure(MethodListAwaitingDecisions)),
		resolveAwaitingDecision: rpc.NewClient[ResolveAwaitingDecisionRequest, ResolveAwaitingDecisionResponse](
			transport, procedure(MethodResolveAwaitingDecision)),
		approveTransfer: rpc.NewClient[ApproveTransferRequest, ApproveTransferResponse](
			transport, procedure(MethodApproveTransfer)),
		approveJob: rpc.NewClient[ApproveJobRequest, ApproveJobResponse](
			transport, procedure(MethodApproveJob)),
		approveTransferByPath: rpc.NewClient[ApproveTransferByPathRequest, ApproveTransferByPathResponse](
			transport, procedure(MethodApproveTransferByPath)),
		approvePartialReingest: rpc.NewClient[ApprovePartialReingestRequest, ApprovePartialReingestResponse](
			transport, procedure(MethodApprovePartialReingest)),
	}
}

func (c *Client) Transport() *rpc.Transport {
	return c.transport
}

// Call invokes any method of the service by name.
func (c *Client) Call(ctx context.Context, method string, in, out any) error {
	if _, ok := ServiceDescriptor.Method(method); !ok {
		return fmt.Errorf("%w: %s, known methods are %v", core.ErrUnknownMethod, method, ServiceDescriptor.MethodNames())
	}

	return c.transport.Call(ctx, ServiceDescriptor, method, in, out) //nolint:wrapcheck
}

func (c *Client) CreatePackage(ctx context.Context, req *CreatePackageRequest) (*CreatePackageResponse, error) {
	if err := ValidateCreatePackageRequest(req); err != nil {
		return nil, err
	}

	return rpc.Unary(ctx, c.createPackage, req) //nolint:wrapcheck
}

func (c *Client) ReadPackage(ctx context.Context, req *ReadPackageRequest) (*ReadPackageResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is empty", core.ErrInvalidRequest)
	}

	return rpc.Unary(ctx, c.readPackage, req) //nolint:wrapcheck
}

func (c *Client) ListActivePackages(ctx context.Context, req *ListActivePackagesRequest) (*ListActivePackagesResponse, error) {
	return rpc.Unary(ctx, c.listActivePackages, req) //nolint:wrapcheck
}

func (c *Client) ListAwaitingDecisions(ctx context.Context, req *ListAwaitingDecisionsRequest) (*ListAwaitingDecisionsResponse, error) { //nolint:lll
	return rpc.Unary(ctx, c.listAwaitingDecisions, req) //nolint:wrapcheck
}

func (c *Client) ResolveAwaitingDecision(ctx context.Context, req *ResolveAwaitingDecisionRequest) (*ResolveAwaitingDecisionResponse, error) { //nolint:lll
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is empty", core.ErrInvalidRequest)
	}

	return rpc.Unary(ctx, c.resolveAwaitingDecision, req) //nolint:wrapcheck
}

func (c *Client) ApproveTransfer(ctx context.Context, req *ApproveTransferRequest) (*ApproveTransferResponse, error) {
	return rpc.Unary(ctx, c.approveTransfer, req) //nolint:wrapcheck
}

// ApproveJob is kept for the legacy dashboard.
func (c *Client) ApproveJob(ctx context.Context, req *ApproveJobRequest) (*ApproveJobResponse, error) {
	return rpc.Unary(ctx, c.approveJob, req) //nolint:wrapcheck
}

// ApproveTransferByPath is kept for the legacy dashboard.
func (c *Client) ApproveTransferByPath(ctx context.Context, req *ApproveTransferByPathRequest) (*ApproveTransferByPathResponse, error) { //nolint:lll
	return rpc.Unary(ctx, c.approveTransferByPath, req) //nolint:wrapcheck
}

// ApprovePartialReingest is kept for the legacy dashboard.
func (c *Client) ApprovePartialReingest(ctx context.Context, req *ApprovePartialReingestRequest) (*ApprovePartialReingestResponse, error) { //nolint:lll
	return rpc.Unary(ctx, c.approvePartialReingest, req) //nolint:wrapcheck
}

// ValidateCreatePackageRequest applies the checks the server would reject the request for.
func ValidateCreatePackageRequest(req *CreatePackageRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is empty", core.ErrInvalidRequest)
	}

	if !lo.SomeBy(req.Path, func(p string) bool { return p != "" }) {
		return fmt.Errorf("%w: path is empty", core.ErrInvalidRequest)
	}

	if req.Type == "" || req.Type == TransferTypeUnspecified {
		return fmt.Errorf("%w: type is unspecified", core.ErrInvalidRequest)
	}

	return nil
}
