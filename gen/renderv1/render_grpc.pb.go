// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: render/v1/render.proto

package renderv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RenderAdminService_GetQuoteRenderState_FullMethodName = "/render.v1.RenderAdminService/GetQuoteRenderState"
	RenderAdminService_ListRenderJobs_FullMethodName      = "/render.v1.RenderAdminService/ListRenderJobs"
	RenderAdminService_ExportUsageReport_FullMethodName   = "/render.v1.RenderAdminService/ExportUsageReport"
)

// RenderAdminServiceClient is the client API for RenderAdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RenderAdminService is the operator-facing read surface over render state.
type RenderAdminServiceClient interface {
	GetQuoteRenderState(ctx context.Context, in *GetQuoteRenderStateRequest, opts ...grpc.CallOption) (*GetQuoteRenderStateResponse, error)
	ListRenderJobs(ctx context.Context, in *ListRenderJobsRequest, opts ...grpc.CallOption) (*ListRenderJobsResponse, error)
	ExportUsageReport(ctx context.Context, in *ExportUsageReportRequest, opts ...grpc.CallOption) (*ExportUsageReportResponse, error)
}

type renderAdminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRenderAdminServiceClient(cc grpc.ClientConnInterface) RenderAdminServiceClient {
	return &renderAdminServiceClient{cc}
}

func (c *renderAdminServiceClient) GetQuoteRenderState(ctx context.Context, in *GetQuoteRenderStateRequest, opts ...grpc.CallOption) (*GetQuoteRenderStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQuoteRenderStateResponse)
	err := c.cc.Invoke(ctx, RenderAdminService_GetQuoteRenderState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *renderAdminServiceClient) ListRenderJobs(ctx context.Context, in *ListRenderJobsRequest, opts ...grpc.CallOption) (*ListRenderJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRenderJobsResponse)
	err := c.cc.Invoke(ctx, RenderAdminService_ListRenderJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *renderAdminServiceClient) ExportUsageReport(ctx context.Context, in *ExportUsageReportRequest, opts ...grpc.CallOption) (*ExportUsageReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportUsageReportResponse)
	err := c.cc.Invoke(ctx, RenderAdminService_ExportUsageReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RenderAdminServiceServer is the server API for RenderAdminService service.
// All implementations must embed UnimplementedRenderAdminServiceServer
// for forward compatibility.
//
// RenderAdminService is the operator-facing read surface over render state.
type RenderAdminServiceServer interface {
	GetQuoteRenderState(context.Context, *GetQuoteRenderStateRequest) (*GetQuoteRenderStateResponse, error)
	ListRenderJobs(context.Context, *ListRenderJobsRequest) (*ListRenderJobsResponse, error)
	ExportUsageReport(context.Context, *ExportUsageReportRequest) (*ExportUsageReportResponse, error)
	mustEmbedUnimplementedRenderAdminServiceServer()
}

// UnimplementedRenderAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRenderAdminServiceServer struct{}

func (UnimplementedRenderAdminServiceServer) GetQuoteRenderState(context.Context, *GetQuoteRenderStateRequest) (*GetQuoteRenderStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuoteRenderState not implemented")
}
func (UnimplementedRenderAdminServiceServer) ListRenderJobs(context.Context, *ListRenderJobsRequest) (*ListRenderJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRenderJobs not implemented")
}
func (UnimplementedRenderAdminServiceServer) ExportUsageReport(context.Context, *ExportUsageReportRequest) (*ExportUsageReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportUsageReport not implemented")
}
func (UnimplementedRenderAdminServiceServer) mustEmbedUnimplementedRenderAdminServiceServer() {}
func (UnimplementedRenderAdminServiceServer) testEmbeddedByValue()                            {}

// UnsafeRenderAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RenderAdminServiceServer will
// result in compilation errors.
type UnsafeRenderAdminServiceServer interface {
	mustEmbedUnimplementedRenderAdminServiceServer()
}

func RegisterRenderAdminServiceServer(s grpc.ServiceRegistrar, srv RenderAdminServiceServer) {
	// If the following call panics, it indicates UnimplementedRenderAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RenderAdminService_ServiceDesc, srv)
}

func _RenderAdminService_GetQuoteRenderState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuoteRenderStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RenderAdminServiceServer).GetQuoteRenderState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RenderAdminService_GetQuoteRenderState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RenderAdminServiceServer).GetQuoteRenderState(ctx, req.(*GetQuoteRenderStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RenderAdminService_ListRenderJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRenderJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RenderAdminServiceServer).ListRenderJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RenderAdminService_ListRenderJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RenderAdminServiceServer).ListRenderJobs(ctx, req.(*ListRenderJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RenderAdminService_ExportUsageReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportUsageReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RenderAdminServiceServer).ExportUsageReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RenderAdminService_ExportUsageReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RenderAdminServiceServer).ExportUsageReport(ctx, req.(*ExportUsageReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RenderAdminService_ServiceDesc is the grpc.ServiceDesc for RenderAdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RenderAdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "render.v1.RenderAdminService",
	HandlerType: (*RenderAdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetQuoteRenderState",
			Handler:    _RenderAdminService_GetQuoteRenderState_Handler,
		},
		{
			MethodName: "ListRenderJobs",
			Handler:    _RenderAdminService_ListRenderJobs_Handler,
		},
		{
			MethodName: "ExportUsageReport",
			Handler:    _RenderAdminService_ExportUsageReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "render/v1/render.proto",
}
