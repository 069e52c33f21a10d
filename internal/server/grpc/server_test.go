package grpc

import (
	"context"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func requireCode(t *testing.T, want codes.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "error: %v", err)
}

func TestServer_PingAndHealth(t *testing.T) {
	h := newHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	resp, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)

	hc := grpc_health_v1.NewHealthClient(h.conn)
	hr, err := hc.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, hr.Status)
}

func TestServer_ServeReturnsOnListenerError(t *testing.T) {
	h := newHarness(t)

	lis := bufconn.Listen(1 << 10)
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.srv.Serve(ctx, lis) }()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.NoError(t, ctx.Err(), "context still live")
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after the listener failed")
	}
}

func TestServer_AccountFlow(t *testing.T) {
	h := newHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, &pb.RegisterRequest{Email: " Ann@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.Equal(t, "Ann@Example.com", reg.User.Email)

	_, err = c.Register(ctx, &pb.RegisterRequest{Email: "Ann@Example.com", Password: "secret2"})
	requireCode(t, codes.AlreadyExists, err)

	_, err = c.Register(ctx, &pb.RegisterRequest{Email: "not-an-email", Password: "secret1"})
	requireCode(t, codes.InvalidArgument, err)

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "Ann@Example.com", Password: "wrong-pw"})
	requireCode(t, codes.Unauthenticated, err)
	assert.Equal(t, "invalid credentials", status.Convert(err).Message())

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	requireCode(t, codes.Unauthenticated, err)
	assert.Equal(t, "invalid credentials", status.Convert(err).Message())

	login, err := c.Login(ctx, &pb.LoginRequest{Email: "Ann@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, login.Token)

	me, err := c.Me(withToken(ctx, login.Token), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, reg.User.Id, me.User.Id)

	_, err = c.Me(ctx, &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)

	// logout only revokes the presented token
	_, err = c.Logout(withToken(ctx, login.Token), &pb.Empty{})
	require.NoError(t, err)
	_, err = c.Me(withToken(ctx, login.Token), &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)
	_, err = c.Me(withToken(ctx, reg.Token), &pb.Empty{})
	require.NoError(t, err)

	changed, err := c.ChangePassword(withToken(ctx, reg.Token),
		&pb.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret9"})
	require.NoError(t, err)
	_, err = c.Me(withToken(ctx, reg.Token), &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)
	_, err = c.Me(withToken(ctx, changed.Token), &pb.Empty{})
	require.NoError(t, err)

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "Ann@Example.com", Password: "secret1"})
	requireCode(t, codes.Unauthenticated, err)
	second, err := c.Login(ctx, &pb.LoginRequest{Email: "Ann@Example.com", Password: "secret9"})
	require.NoError(t, err)

	_, err = c.LogoutAll(withToken(ctx, second.Token), &pb.Empty{})
	require.NoError(t, err)
	_, err = c.Me(withToken(ctx, changed.Token), &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)
	_, err = c.Me(withToken(ctx, second.Token), &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)

	assert.Equal(t, 0, h.repos.SessionsRepo.Count(reg.User.Id))
	assert.GreaterOrEqual(t, counterValue(t, h.reg, "todokeeper_auth_failures_total",
		map[string]string{"method": pb.TodoKeeperService_Me_FullMethodName}), 1.0)
}

func TestServer_DeleteAccount(t *testing.T) {
	h := newHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, &pb.RegisterRequest{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = c.CreateTodo(withToken(ctx, reg.Token), &pb.CreateTodoRequest{Text: "milk"})
	require.NoError(t, err)

	_, err = c.DeleteAccount(withToken(ctx, reg.Token), &pb.DeleteAccountRequest{Password: "nope123"})
	requireCode(t, codes.Unauthenticated, err)

	_, err = c.DeleteAccount(withToken(ctx, reg.Token), &pb.DeleteAccountRequest{Password: "secret1"})
	require.NoError(t, err)

	_, err = c.Me(withToken(ctx, reg.Token), &pb.Empty{})
	requireCode(t, codes.Unauthenticated, err)
	_, err = c.Login(ctx, &pb.LoginRequest{Email: "bob@example.com", Password: "secret1"})
	requireCode(t, codes.Unauthenticated, err)

	// the address is free again
	_, err = c.Register(ctx, &pb.RegisterRequest{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
}

func TestServer_TodoFlow(t *testing.T) {
	h := newHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	ann, err := c.Register(ctx, &pb.RegisterRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	bob, err := c.Register(ctx, &pb.RegisterRequest{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	annCtx := withToken(ctx, ann.Token)
	bobCtx := withToken(ctx, bob.Token)

	_, err = c.CreateTodo(ctx, &pb.CreateTodoRequest{Text: "milk"})
	requireCode(t, codes.Unauthenticated, err)

	_, err = c.CreateTodo(annCtx, &pb.CreateTodoRequest{Text: "   "})
	requireCode(t, codes.InvalidArgument, err)

	first, err := c.CreateTodo(annCtx, &pb.CreateTodoRequest{Text: "  milk "})
	require.NoError(t, err)
	assert.Equal(t, "milk", first.Todo.Text)
	assert.Equal(t, ann.User.Id, first.Todo.CreatorId)
	assert.False(t, first.Todo.Completed)
	assert.Nil(t, first.Todo.CompletedAt)

	second, err := c.CreateTodo(annCtx, &pb.CreateTodoRequest{Text: "eggs", Completed: true})
	require.NoError(t, err)
	assert.True(t, second.Todo.Completed)
	assert.NotNil(t, second.Todo.CompletedAt)

	list, err := c.ListTodos(annCtx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Todos, 2)
	assert.Equal(t, first.Todo.Id, list.Todos[0].Id)
	assert.Equal(t, second.Todo.Id, list.Todos[1].Id)

	other, err := c.ListTodos(bobCtx, &pb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, other.Todos)

	// foreign and malformed ids look the same as missing ones
	_, err = c.GetTodo(bobCtx, &pb.GetTodoRequest{Id: first.Todo.Id})
	requireCode(t, codes.NotFound, err)
	_, err = c.GetTodo(annCtx, &pb.GetTodoRequest{Id: "nope"})
	requireCode(t, codes.NotFound, err)
	text := "stolen"
	_, err = c.UpdateTodo(bobCtx, &pb.UpdateTodoRequest{Id: first.Todo.Id, Text: &text})
	requireCode(t, codes.NotFound, err)
	_, err = c.DeleteTodo(bobCtx, &pb.DeleteTodoRequest{Id: first.Todo.Id})
	requireCode(t, codes.NotFound, err)

	done := true
	upd, err := c.UpdateTodo(annCtx, &pb.UpdateTodoRequest{Id: first.Todo.Id, Completed: &done})
	require.NoError(t, err)
	assert.True(t, upd.Todo.Completed)
	assert.NotNil(t, upd.Todo.CompletedAt)
	assert.Equal(t, "milk", upd.Todo.Text)

	text = "oat milk"
	upd, err = c.UpdateTodo(annCtx, &pb.UpdateTodoRequest{Id: first.Todo.Id, Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "oat milk", upd.Todo.Text)
	assert.False(t, upd.Todo.Completed)
	assert.Nil(t, upd.Todo.CompletedAt)

	got, err := c.GetTodo(annCtx, &pb.GetTodoRequest{Id: first.Todo.Id})
	require.NoError(t, err)
	assert.Equal(t, "oat milk", got.Todo.Text)

	del, err := c.DeleteTodo(annCtx, &pb.DeleteTodoRequest{Id: first.Todo.Id})
	require.NoError(t, err)
	assert.Equal(t, first.Todo.Id, del.Todo.Id)

	_, err = c.GetTodo(annCtx, &pb.GetTodoRequest{Id: first.Todo.Id})
	requireCode(t, codes.NotFound, err)
	_, err = c.DeleteTodo(annCtx, &pb.DeleteTodoRequest{Id: first.Todo.Id})
	requireCode(t, codes.NotFound, err)
}
