package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "todokeeper.v1.TodoKeeperService"

// Full method names, as seen by interceptors in grpc.UnaryServerInfo.
const (
	TodoKeeperService_Register_FullMethodName       = "/" + ServiceName + "/Register"
	TodoKeeperService_Login_FullMethodName          = "/" + ServiceName + "/Login"
	TodoKeeperService_Me_FullMethodName             = "/" + ServiceName + "/Me"
	TodoKeeperService_Logout_FullMethodName         = "/" + ServiceName + "/Logout"
	TodoKeeperService_LogoutAll_FullMethodName      = "/" + ServiceName + "/LogoutAll"
	TodoKeeperService_ChangePassword_FullMethodName = "/" + ServiceName + "/ChangePassword"
	TodoKeeperService_DeleteAccount_FullMethodName  = "/" + ServiceName + "/DeleteAccount"
	TodoKeeperService_CreateTodo_FullMethodName     = "/" + ServiceName + "/CreateTodo"
	TodoKeeperService_ListTodos_FullMethodName      = "/" + ServiceName + "/ListTodos"
	TodoKeeperService_GetTodo_FullMethodName        = "/" + ServiceName + "/GetTodo"
	TodoKeeperService_UpdateTodo_FullMethodName     = "/" + ServiceName + "/UpdateTodo"
	TodoKeeperService_DeleteTodo_FullMethodName     = "/" + ServiceName + "/DeleteTodo"
	TodoKeeperService_Ping_FullMethodName           = "/" + ServiceName + "/Ping"
)

// TodoKeeperServiceServer is the server API for TodoKeeperService.
// Implementations must embed UnimplementedTodoKeeperServiceServer.
type TodoKeeperServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Me(context.Context, *Empty) (*MeResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
	LogoutAll(context.Context, *Empty) (*Empty, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*AuthResponse, error)
	DeleteAccount(context.Context, *DeleteAccountRequest) (*Empty, error)
	CreateTodo(context.Context, *CreateTodoRequest) (*TodoResponse, error)
	ListTodos(context.Context, *Empty) (*ListTodosResponse, error)
	GetTodo(context.Context, *GetTodoRequest) (*TodoResponse, error)
	UpdateTodo(context.Context, *UpdateTodoRequest) (*TodoResponse, error)
	DeleteTodo(context.Context, *DeleteTodoRequest) (*TodoResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedTodoKeeperServiceServer()
}

// UnimplementedTodoKeeperServiceServer answers every method with
// codes.Unimplemented.
type UnimplementedTodoKeeperServiceServer struct{}

func (UnimplementedTodoKeeperServiceServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedTodoKeeperServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedTodoKeeperServiceServer) Me(context.Context, *Empty) (*MeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Me not implemented")
}
func (UnimplementedTodoKeeperServiceServer) Logout(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedTodoKeeperServiceServer) LogoutAll(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LogoutAll not implemented")
}
func (UnimplementedTodoKeeperServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePassword not implemented")
}
func (UnimplementedTodoKeeperServiceServer) DeleteAccount(context.Context, *DeleteAccountRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAccount not implemented")
}
func (UnimplementedTodoKeeperServiceServer) CreateTodo(context.Context, *CreateTodoRequest) (*TodoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTodo not implemented")
}
func (UnimplementedTodoKeeperServiceServer) ListTodos(context.Context, *Empty) (*ListTodosResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTodos not implemented")
}
func (UnimplementedTodoKeeperServiceServer) GetTodo(context.Context, *GetTodoRequest) (*TodoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTodo not implemented")
}
func (UnimplementedTodoKeeperServiceServer) UpdateTodo(context.Context, *UpdateTodoRequest) (*TodoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTodo not implemented")
}
func (UnimplementedTodoKeeperServiceServer) DeleteTodo(context.Context, *DeleteTodoRequest) (*TodoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTodo not implemented")
}
func (UnimplementedTodoKeeperServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedTodoKeeperServiceServer) mustEmbedUnimplementedTodoKeeperServiceServer() {}

// unary builds the MethodDesc for one request/response method.
func unary[Req, Resp any](name string, call func(TodoKeeperServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TodoKeeperServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TodoKeeperServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TodoKeeperService_ServiceDesc is the grpc.ServiceDesc for TodoKeeperService.
var TodoKeeperService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TodoKeeperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", TodoKeeperServiceServer.Register),
		unary("Login", TodoKeeperServiceServer.Login),
		unary("Me", TodoKeeperServiceServer.Me),
		unary("Logout", TodoKeeperServiceServer.Logout),
		unary("LogoutAll", TodoKeeperServiceServer.LogoutAll),
		unary("ChangePassword", TodoKeeperServiceServer.ChangePassword),
		unary("DeleteAccount", TodoKeeperServiceServer.DeleteAccount),
		unary("CreateTodo", TodoKeeperServiceServer.CreateTodo),
		unary("ListTodos", TodoKeeperServiceServer.ListTodos),
		unary("GetTodo", TodoKeeperServiceServer.GetTodo),
		unary("UpdateTodo", TodoKeeperServiceServer.UpdateTodo),
		unary("DeleteTodo", TodoKeeperServiceServer.DeleteTodo),
		unary("Ping", TodoKeeperServiceServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todokeeper/v1/service",
}

func RegisterTodoKeeperServiceServer(s grpc.ServiceRegistrar, srv TodoKeeperServiceServer) {
	s.RegisterService(&TodoKeeperService_ServiceDesc, srv)
}
