// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The messages of the Store service are all well-known types, so the service
// descriptor below is maintained by hand rather than generated.  It follows
// proto/store.proto.

const (
	Store_Insert_FullMethodName      = "/ordtree.Store/Insert"
	Store_Put_FullMethodName         = "/ordtree.Store/Put"
	Store_Get_FullMethodName         = "/ordtree.Store/Get"
	Store_Delete_FullMethodName      = "/ordtree.Store/Delete"
	Store_Scan_FullMethodName        = "/ordtree.Store/Scan"
	Store_DeleteRange_FullMethodName = "/ordtree.Store/DeleteRange"
	Store_Len_FullMethodName         = "/ordtree.Store/Len"
	Store_Clear_FullMethodName       = "/ordtree.Store/Clear"
	Store_Snapshot_FullMethodName    = "/ordtree.Store/Snapshot"
	Store_Restore_FullMethodName     = "/ordtree.Store/Restore"
	Store_Stats_FullMethodName       = "/ordtree.Store/Stats"
	Store_Finalize_FullMethodName    = "/ordtree.Store/Finalize"
)

// StoreClient is the client API for Store service.
type StoreClient interface {
	// Insert adds an entry {key, value} unless the key is present.
	Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	// Put adds or overwrites an entry {key, value}.
	Put(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Value, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	// Scan lists the entries within {from, to} in key order, or reversed.
	Scan(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	DeleteRange(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Len(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Clear(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error)
	Snapshot(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Restore(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Stats(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Finalize terminates the server.
	Finalize(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error)
}

type storeClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreClient(cc grpc.ClientConnInterface) StoreClient {
	return &storeClient{cc}
}

// invoke performs a unary call and decodes the reply into a new Out.
func invoke[Out any, POut interface {
	*Out
	proto.Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, opts []grpc.CallOption) (*Out, error) {
	out := POut(new(Out))
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storeClient) Insert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, Store_Insert_FullMethodName, in, opts)
}

func (c *storeClient) Put(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, Store_Put_FullMethodName, in, opts)
}

func (c *storeClient) Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Value, error) {
	return invoke[structpb.Value](ctx, c.cc, Store_Get_FullMethodName, in, opts)
}

func (c *storeClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, Store_Delete_FullMethodName, in, opts)
}

func (c *storeClient) Scan(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, Store_Scan_FullMethodName, in, opts)
}

func (c *storeClient) DeleteRange(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, Store_DeleteRange_FullMethodName, in, opts)
}

func (c *storeClient) Len(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, Store_Len_FullMethodName, in, opts)
}

func (c *storeClient) Clear(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, Store_Clear_FullMethodName, in, opts)
}

func (c *storeClient) Snapshot(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, Store_Snapshot_FullMethodName, in, opts)
}

func (c *storeClient) Restore(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, Store_Restore_FullMethodName, in, opts)
}

func (c *storeClient) Stats(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, Store_Stats_FullMethodName, in, opts)
}

func (c *storeClient) Finalize(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, Store_Finalize_FullMethodName, in, opts)
}

// StoreServer is the server API for Store service.
// All implementations must embed UnimplementedStoreServer
// for forward compatibility
type StoreServer interface {
	Insert(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Put(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	Get(context.Context, *wrapperspb.StringValue) (*structpb.Value, error)
	Delete(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Scan(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	DeleteRange(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	Len(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error)
	Clear(context.Context, *empty.Empty) (*empty.Empty, error)
	Snapshot(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error)
	Restore(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error)
	Stats(context.Context, *empty.Empty) (*structpb.Struct, error)
	Finalize(context.Context, *empty.Empty) (*empty.Empty, error)
	mustEmbedUnimplementedStoreServer()
}

// UnimplementedStoreServer must be embedded to have forward compatible implementations.
type UnimplementedStoreServer struct {
}

func (UnimplementedStoreServer) Insert(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedStoreServer) Put(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedStoreServer) Get(context.Context, *wrapperspb.StringValue) (*structpb.Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedStoreServer) Delete(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedStoreServer) Scan(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Scan not implemented")
}
func (UnimplementedStoreServer) DeleteRange(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRange not implemented")
}
func (UnimplementedStoreServer) Len(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Len not implemented")
}
func (UnimplementedStoreServer) Clear(context.Context, *empty.Empty) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedStoreServer) Snapshot(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Snapshot not implemented")
}
func (UnimplementedStoreServer) Restore(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Restore not implemented")
}
func (UnimplementedStoreServer) Stats(context.Context, *empty.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stats not implemented")
}
func (UnimplementedStoreServer) Finalize(context.Context, *empty.Empty) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedStoreServer) mustEmbedUnimplementedStoreServer() {}

func RegisterStoreServer(s grpc.ServiceRegistrar, srv StoreServer) {
	s.RegisterService(&Store_ServiceDesc, srv)
}

// unaryHandler adapts a StoreServer method to a grpc method handler, running
// it through the interceptor chain if there is one.
func unaryHandler[In any, PIn interface {
	*In
	proto.Message
}, Out any](fullMethod string, call func(StoreServer, context.Context, PIn) (Out, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := PIn(new(In))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StoreServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(StoreServer), ctx, req.(PIn))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Store_ServiceDesc is the grpc.ServiceDesc for Store service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Store_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ordtree.Store",
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Insert",
			Handler:    unaryHandler[structpb.Struct](Store_Insert_FullMethodName, StoreServer.Insert),
		},
		{
			MethodName: "Put",
			Handler:    unaryHandler[structpb.Struct](Store_Put_FullMethodName, StoreServer.Put),
		},
		{
			MethodName: "Get",
			Handler:    unaryHandler[wrapperspb.StringValue](Store_Get_FullMethodName, StoreServer.Get),
		},
		{
			MethodName: "Delete",
			Handler:    unaryHandler[wrapperspb.StringValue](Store_Delete_FullMethodName, StoreServer.Delete),
		},
		{
			MethodName: "Scan",
			Handler:    unaryHandler[structpb.Struct](Store_Scan_FullMethodName, StoreServer.Scan),
		},
		{
			MethodName: "DeleteRange",
			Handler:    unaryHandler[structpb.Struct](Store_DeleteRange_FullMethodName, StoreServer.DeleteRange),
		},
		{
			MethodName: "Len",
			Handler:    unaryHandler[empty.Empty](Store_Len_FullMethodName, StoreServer.Len),
		},
		{
			MethodName: "Clear",
			Handler:    unaryHandler[empty.Empty](Store_Clear_FullMethodName, StoreServer.Clear),
		},
		{
			MethodName: "Snapshot",
			Handler:    unaryHandler[empty.Empty](Store_Snapshot_FullMethodName, StoreServer.Snapshot),
		},
		{
			MethodName: "Restore",
			Handler:    unaryHandler[empty.Empty](Store_Restore_FullMethodName, StoreServer.Restore),
		},
		{
			MethodName: "Stats",
			Handler:    unaryHandler[empty.Empty](Store_Stats_FullMethodName, StoreServer.Stats),
		},
		{
			MethodName: "Finalize",
			Handler:    unaryHandler[empty.Empty](Store_Finalize_FullMethodName, StoreServer.Finalize),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "store.proto",
}
