package employeelistv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "employeelist.v1.EmployeeListService"

const (
	EmployeeListService_AddEmployee_FullMethodName     = "/employeelist.v1.EmployeeListService/AddEmployee"
	EmployeeListService_RemoveEmployee_FullMethodName  = "/employeelist.v1.EmployeeListService/RemoveEmployee"
	EmployeeListService_UpdateEmployee_FullMethodName  = "/employeelist.v1.EmployeeListService/UpdateEmployee"
	EmployeeListService_ListEmployees_FullMethodName   = "/employeelist.v1.EmployeeListService/ListEmployees"
	EmployeeListService_ExportEmployees_FullMethodName = "/employeelist.v1.EmployeeListService/ExportEmployees"
)

// EmployeeListServiceClient は EmployeeListService のクライアントです。
type EmployeeListServiceClient interface {
	AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error)
	RemoveEmployee(ctx context.Context, in *RemoveEmployeeRequest, opts ...grpc.CallOption) (*RemoveEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error)
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error)
	ExportEmployees(ctx context.Context, in *ExportEmployeesRequest, opts ...grpc.CallOption) (*ExportEmployeesResponse, error)
}

type employeeListServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeListServiceClient は JSON コーデックで呼び出すクライアントを返します。
func NewEmployeeListServiceClient(cc grpc.ClientConnInterface) EmployeeListServiceClient {
	return &employeeListServiceClient{cc}
}

func (c *employeeListServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *employeeListServiceClient) AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error) {
	out := new(AddEmployeeResponse)
	if err := c.invoke(ctx, EmployeeListService_AddEmployee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeListServiceClient) RemoveEmployee(ctx context.Context, in *RemoveEmployeeRequest, opts ...grpc.CallOption) (*RemoveEmployeeResponse, error) {
	out := new(RemoveEmployeeResponse)
	if err := c.invoke(ctx, EmployeeListService_RemoveEmployee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeListServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error) {
	out := new(UpdateEmployeeResponse)
	if err := c.invoke(ctx, EmployeeListService_UpdateEmployee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeListServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	out := new(ListEmployeesResponse)
	if err := c.invoke(ctx, EmployeeListService_ListEmployees_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeListServiceClient) ExportEmployees(ctx context.Context, in *ExportEmployeesRequest, opts ...grpc.CallOption) (*ExportEmployeesResponse, error) {
	out := new(ExportEmployeesResponse)
	if err := c.invoke(ctx, EmployeeListService_ExportEmployees_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeListServiceServer はサーバー側の実装が満たすインターフェースです。
type EmployeeListServiceServer interface {
	AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error)
	RemoveEmployee(context.Context, *RemoveEmployeeRequest) (*RemoveEmployeeResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	ExportEmployees(context.Context, *ExportEmployeesRequest) (*ExportEmployeesResponse, error)
	mustEmbedUnimplementedEmployeeListServiceServer()
}

// UnimplementedEmployeeListServiceServer は前方互換のために埋め込みます。
type UnimplementedEmployeeListServiceServer struct{}

func (UnimplementedEmployeeListServiceServer) AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddEmployee not implemented")
}

func (UnimplementedEmployeeListServiceServer) RemoveEmployee(context.Context, *RemoveEmployeeRequest) (*RemoveEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveEmployee not implemented")
}

func (UnimplementedEmployeeListServiceServer) UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployee not implemented")
}

func (UnimplementedEmployeeListServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedEmployeeListServiceServer) ExportEmployees(context.Context, *ExportEmployeesRequest) (*ExportEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportEmployees not implemented")
}

func (UnimplementedEmployeeListServiceServer) mustEmbedUnimplementedEmployeeListServiceServer() {}

// RegisterEmployeeListServiceServer は srv を s に登録します。
func RegisterEmployeeListServiceServer(s grpc.ServiceRegistrar, srv EmployeeListServiceServer) {
	s.RegisterService(&EmployeeListService_ServiceDesc, srv)
}

func _EmployeeListService_AddEmployee_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeListServiceServer).AddEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EmployeeListService_AddEmployee_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeListServiceServer).AddEmployee(ctx, req.(*AddEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmployeeListService_RemoveEmployee_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeListServiceServer).RemoveEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EmployeeListService_RemoveEmployee_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeListServiceServer).RemoveEmployee(ctx, req.(*RemoveEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmployeeListService_UpdateEmployee_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeListServiceServer).UpdateEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EmployeeListService_UpdateEmployee_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeListServiceServer).UpdateEmployee(ctx, req.(*UpdateEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmployeeListService_ListEmployees_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListEmployeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeListServiceServer).ListEmployees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EmployeeListService_ListEmployees_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeListServiceServer).ListEmployees(ctx, req.(*ListEmployeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EmployeeListService_ExportEmployees_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExportEmployeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeListServiceServer).ExportEmployees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EmployeeListService_ExportEmployees_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeListServiceServer).ExportEmployees(ctx, req.(*ExportEmployeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EmployeeListService_ServiceDesc は EmployeeListService の grpc.ServiceDesc です。
var EmployeeListService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeListServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddEmployee", Handler: _EmployeeListService_AddEmployee_Handler},
		{MethodName: "RemoveEmployee", Handler: _EmployeeListService_RemoveEmployee_Handler},
		{MethodName: "UpdateEmployee", Handler: _EmployeeListService_UpdateEmployee_Handler},
		{MethodName: "ListEmployees", Handler: _EmployeeListService_ListEmployees_Handler},
		{MethodName: "ExportEmployees", Handler: _EmployeeListService_ExportEmployees_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "employeelist/v1",
}
