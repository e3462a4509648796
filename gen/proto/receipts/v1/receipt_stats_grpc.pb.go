// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: receipts/v1/receipt_stats.proto

package receiptspb

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
	ReceiptStatsService_ListExtractions_FullMethodName = "/receipts.v1.ReceiptStatsService/ListExtractions"
	ReceiptStatsService_ListItems_FullMethodName       = "/receipts.v1.ReceiptStatsService/ListItems"
	ReceiptStatsService_ListItemStats_FullMethodName   = "/receipts.v1.ReceiptStatsService/ListItemStats"
	ReceiptStatsService_ExportItemStats_FullMethodName = "/receipts.v1.ReceiptStatsService/ExportItemStats"
)

// ReceiptStatsServiceClient is the client API for ReceiptStatsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Read-only query surface over the collections the pipeline produces.
type ReceiptStatsServiceClient interface {
	ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	ListItemStats(ctx context.Context, in *ListItemStatsRequest, opts ...grpc.CallOption) (*ListItemStatsResponse, error)
	ExportItemStats(ctx context.Context, in *ExportItemStatsRequest, opts ...grpc.CallOption) (*ExportItemStatsResponse, error)
}

type receiptStatsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReceiptStatsServiceClient(cc grpc.ClientConnInterface) ReceiptStatsServiceClient {
	return &receiptStatsServiceClient{cc}
}

func (c *receiptStatsServiceClient) ListExtractions(ctx context.Context, in *ListExtractionsRequest, opts ...grpc.CallOption) (*ListExtractionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExtractionsResponse)
	err := c.cc.Invoke(ctx, ReceiptStatsService_ListExtractions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptStatsServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListItemsResponse)
	err := c.cc.Invoke(ctx, ReceiptStatsService_ListItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptStatsServiceClient) ListItemStats(ctx context.Context, in *ListItemStatsRequest, opts ...grpc.CallOption) (*ListItemStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListItemStatsResponse)
	err := c.cc.Invoke(ctx, ReceiptStatsService_ListItemStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptStatsServiceClient) ExportItemStats(ctx context.Context, in *ExportItemStatsRequest, opts ...grpc.CallOption) (*ExportItemStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportItemStatsResponse)
	err := c.cc.Invoke(ctx, ReceiptStatsService_ExportItemStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiptStatsServiceServer is the server API for ReceiptStatsService service.
// All implementations must embed UnimplementedReceiptStatsServiceServer
// for forward compatibility.
//
// Read-only query surface over the collections the pipeline produces.
type ReceiptStatsServiceServer interface {
	ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ListItemStats(context.Context, *ListItemStatsRequest) (*ListItemStatsResponse, error)
	ExportItemStats(context.Context, *ExportItemStatsRequest) (*ExportItemStatsResponse, error)
	mustEmbedUnimplementedReceiptStatsServiceServer()
}

// UnimplementedReceiptStatsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReceiptStatsServiceServer struct{}

func (UnimplementedReceiptStatsServiceServer) ListExtractions(context.Context, *ListExtractionsRequest) (*ListExtractionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExtractions not implemented")
}
func (UnimplementedReceiptStatsServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedReceiptStatsServiceServer) ListItemStats(context.Context, *ListItemStatsRequest) (*ListItemStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListItemStats not implemented")
}
func (UnimplementedReceiptStatsServiceServer) ExportItemStats(context.Context, *ExportItemStatsRequest) (*ExportItemStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportItemStats not implemented")
}
func (UnimplementedReceiptStatsServiceServer) mustEmbedUnimplementedReceiptStatsServiceServer() {}
func (UnimplementedReceiptStatsServiceServer) testEmbeddedByValue()                             {}

// UnsafeReceiptStatsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReceiptStatsServiceServer will
// result in compilation errors.
type UnsafeReceiptStatsServiceServer interface {
	mustEmbedUnimplementedReceiptStatsServiceServer()
}

func RegisterReceiptStatsServiceServer(s grpc.ServiceRegistrar, srv ReceiptStatsServiceServer) {
	// If the following call pancis, it indicates UnimplementedReceiptStatsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReceiptStatsService_ServiceDesc, srv)
}

func _ReceiptStatsService_ListExtractions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExtractionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptStatsServiceServer).ListExtractions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptStatsService_ListExtractions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptStatsServiceServer).ListExtractions(ctx, req.(*ListExtractionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptStatsService_ListItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptStatsServiceServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptStatsService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptStatsServiceServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptStatsService_ListItemStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListItemStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptStatsServiceServer).ListItemStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptStatsService_ListItemStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptStatsServiceServer).ListItemStats(ctx, req.(*ListItemStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptStatsService_ExportItemStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportItemStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptStatsServiceServer).ExportItemStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptStatsService_ExportItemStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptStatsServiceServer).ExportItemStats(ctx, req.(*ExportItemStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReceiptStatsService_ServiceDesc is the grpc.ServiceDesc for ReceiptStatsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReceiptStatsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receipts.v1.ReceiptStatsService",
	HandlerType: (*ReceiptStatsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListExtractions",
			Handler:    _ReceiptStatsService_ListExtractions_Handler,
		},
		{
			MethodName: "ListItems",
			Handler:    _ReceiptStatsService_ListItems_Handler,
		},
		{
			MethodName: "ListItemStats",
			Handler:    _ReceiptStatsService_ListItemStats_Handler,
		},
		{
			MethodName: "ExportItemStats",
			Handler:    _ReceiptStatsService_ExportItemStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receipts/v1/receipt_stats.proto",
}
