package admin

import (
	"connectrpc.com/connect"
	"github.com/zhulik/ccpadmin/internal/rpc"
)

const ServiceName = "archivematica.ccp.admin.v1beta1.AdminService"

const (
	MethodCreatePackage           = "CreatePackage"
	MethodReadPackage             = "ReadPackage"
	MethodListActivePackages      = "ListActivePackages"
	MethodListAwaitingDecisions   = "ListAwaitingDecisions"
	MethodResolveAwaitingDecision = "ResolveAwaitingDecision"
	MethodApproveTransfer         = "ApproveTransfer"
	MethodApproveJob              = "ApproveJob"
	MethodApproveTransferByPath   = "ApproveTransferByPath"
	MethodApprovePartialReingest  = "ApprovePartialReingest"
)

// ServiceDescriptor lists the remote procedures of the admin service.
var ServiceDescriptor = rpc.ServiceDescriptor{ //nolint:gochecknoglobals
	Name: ServiceName,
	Methods: []rpc.MethodDescriptor{
		{Name: MethodCreatePackage, StreamType: connect.StreamTypeUnary},
		{Name: MethodReadPackage, StreamType: connect.StreamTypeUnary},
		{Name: MethodListActivePackages, StreamType: connect.StreamTypeUnary},
		{Name: MethodListAwaitingDecisions, StreamType: connect.StreamTypeUnary},
		{Name: MethodResolveAwaitingDecision, StreamType: connect.StreamTypeUnary},
		{Name: MethodApproveTransfer, StreamType: connect.StreamTypeUnary},
		{Name: MethodApproveJob, StreamType: connect.StreamTypeUnary},
		{Name: MethodApproveTransferByPath, StreamType: connect.StreamTypeUnary},
		{Name: MethodApprovePartialReingest, StreamType: connect.StreamTypeUnary},
	},
}
