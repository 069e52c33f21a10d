package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// unauthenticatedMessage is what the server answers for a missing, expired
// or revoked token, as opposed to "invalid credentials" for a bad password.
const unauthenticatedMessage = "unauthenticated"

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.TodoKeeperServiceClient
	tokens      TokenStore

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) error {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()

	if token == "" {
		return s.tokens.Clear()
	}
	return s.tokens.Save(token)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	token := s.token()
	if token != "" {
		ctx = withAccessToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || token == "" {
		return err
	}

	// the session is gone on the server side, so the local copy is useless
	if st, ok := status.FromError(err); ok && st.Code() == codes.Unauthenticated && st.Message() == unauthenticatedMessage {
		if s.token() == token {
			_ = s.setToken("")
		}
	}
	return err
}

// NewTodoKeeperClientService connects to endpointURL and restores the token
// kept in store. A nil store keeps the token in memory only.
func NewTodoKeeperClientService(endpointURL string, store TokenStore, timeout time.Duration) (*GRPCClient, error) {
	if store == nil {
		store = &memoryTokenStore{}
	}
	c := &GRPCClient{endpointURL: endpointURL, tokens: store, timeout: timeout}

	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	c.accessToken = token

	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewTodoKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) startSession(resp *pb.AuthResponse) (*models.User, error) {
	if err := s.setToken(resp.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return userFromPb(resp.User), nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.startSession(resp)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.startSession(resp)
}

func (s *GRPCClient) Me(ctx context.Context) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Me(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return userFromPb(resp.User), nil
}

// Logout revokes the current token and forgets it locally. A token the
// server no longer accepts is forgotten too.
func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.Empty{})
	if err = s.mapError(err); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	return s.setToken("")
}

func (s *GRPCClient) LogoutAll(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.LogoutAll(ctx, &pb.Empty{})
	if err = s.mapError(err); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	return s.setToken("")
}

// ChangePassword replaces the stored token with the fresh one the server
// issues; every other session of the account is revoked.
func (s *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	if err != nil {
		return s.mapError(err)
	}
	_, err = s.startSession(resp)
	return err
}

func (s *GRPCClient) DeleteAccount(ctx context.Context, password string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{Password: password}); err != nil {
		return s.mapError(err)
	}
	return s.setToken("")
}

func (s *GRPCClient) CreateTodo(ctx context.Context, text string) (*models.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateTodo(ctx, &pb.CreateTodoRequest{Text: text})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromPb(resp.Todo), nil
}

func (s *GRPCClient) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListTodos(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	todos := make([]*models.Todo, 0, len(resp.Todos))
	for _, t := range resp.Todos {
		todos = append(todos, todoFromPb(t))
	}
	return todos, nil
}

func (s *GRPCClient) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetTodo(ctx, &pb.GetTodoRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromPb(resp.Todo), nil
}

func (s *GRPCClient) UpdateTodo(ctx context.Context, id string, text *string, completed *bool) (*models.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateTodo(ctx, &pb.UpdateTodoRequest{Id: id, Text: text, Completed: completed})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromPb(resp.Todo), nil
}

func (s *GRPCClient) DeleteTodo(ctx context.Context, id string) (*models.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.DeleteTodo(ctx, &pb.DeleteTodoRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromPb(resp.Todo), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == unauthenticatedMessage {
			return ErrUnauthorized
		}
		return ErrInvalidCredentials
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return ErrInvalidInput
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromPb(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{ID: u.Id, Email: u.Email, CreatedAt: time.UnixMilli(u.CreatedAt)}
}

func todoFromPb(t *pb.Todo) *models.Todo {
	if t == nil {
		return nil
	}
	todo := &models.Todo{ID: t.Id, Text: t.Text, Completed: t.Completed}
	if t.CompletedAt != nil {
		at := time.UnixMilli(*t.CompletedAt)
		todo.CompletedAt = &at
	}
	return todo
}
