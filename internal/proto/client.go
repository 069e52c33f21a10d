package proto

import (
	"context"

	"google.golang.org/grpc"
)

// TodoKeeperServiceClient is the client API for TodoKeeperService.
type TodoKeeperServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Me(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MeResponse, error)
	Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	LogoutAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*Empty, error)
	CreateTodo(ctx context.Context, in *CreateTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error)
	ListTodos(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListTodosResponse, error)
	GetTodo(ctx context.Context, in *GetTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error)
	UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, in *DeleteTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type todoKeeperServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTodoKeeperServiceClient(cc grpc.ClientConnInterface) TodoKeeperServiceClient {
	return &todoKeeperServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoKeeperServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, TodoKeeperService_Register_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, TodoKeeperService_Login_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) Me(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MeResponse, error) {
	return invoke[MeResponse](ctx, c.cc, TodoKeeperService_Me_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TodoKeeperService_Logout_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) LogoutAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TodoKeeperService_LogoutAll_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, TodoKeeperService_ChangePassword_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TodoKeeperService_DeleteAccount_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) CreateTodo(ctx context.Context, in *CreateTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error) {
	return invoke[TodoResponse](ctx, c.cc, TodoKeeperService_CreateTodo_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) ListTodos(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListTodosResponse, error) {
	return invoke[ListTodosResponse](ctx, c.cc, TodoKeeperService_ListTodos_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) GetTodo(ctx context.Context, in *GetTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error) {
	return invoke[TodoResponse](ctx, c.cc, TodoKeeperService_GetTodo_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error) {
	return invoke[TodoResponse](ctx, c.cc, TodoKeeperService_UpdateTodo_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) DeleteTodo(ctx context.Context, in *DeleteTodoRequest, opts ...grpc.CallOption) (*TodoResponse, error) {
	return invoke[TodoResponse](ctx, c.cc, TodoKeeperService_DeleteTodo_FullMethodName, in, opts)
}

func (c *todoKeeperServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, TodoKeeperService_Ping_FullMethodName, in, opts)
}
