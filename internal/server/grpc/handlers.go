package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
)

func userToPb(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Email: u.Email, CreatedAt: u.CreatedAt.UnixMilli()}
}

func todoToPb(t *models.Todo) *pb.Todo {
	return &pb.Todo{
		Id:          t.ID,
		CreatorId:   t.CreatorID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

func authResponse(p *services.Principal) *pb.AuthResponse {
	return &pb.AuthResponse{User: userToPb(p.User), Token: p.Token}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	p, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return authResponse(p), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	p, err := s.authn.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return authResponse(p), nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.Empty) (*pb.MeResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Me(ctx, p)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MeResponse{User: userToPb(u)}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, p); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) LogoutAll(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.LogoutAll(ctx, p); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.AuthResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	np, err := s.users.ChangePassword(ctx, p, req.OldPassword, req.NewPassword)
	if err != nil {
		return nil, toStatus(err)
	}
	return authResponse(np), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.Empty, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteAccount(ctx, p, req.Password); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) CreateTodo(ctx context.Context, req *pb.CreateTodoRequest) (*pb.TodoResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Create(ctx, p, req.Text, req.Completed)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: todoToPb(t)}, nil
}

func (s *GRPCServer) ListTodos(ctx context.Context, _ *pb.Empty) (*pb.ListTodosResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.todos.List(ctx, p)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListTodosResponse{Todos: make([]*pb.Todo, 0, len(list))}
	for _, t := range list {
		resp.Todos = append(resp.Todos, todoToPb(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTodo(ctx context.Context, req *pb.GetTodoRequest) (*pb.TodoResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Get(ctx, p, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: todoToPb(t)}, nil
}

func (s *GRPCServer) UpdateTodo(ctx context.Context, req *pb.UpdateTodoRequest) (*pb.TodoResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Update(ctx, p, req.Id, models.TodoPatch{Text: req.Text, Completed: req.Completed})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: todoToPb(t)}, nil
}

func (s *GRPCServer) DeleteTodo(ctx context.Context, req *pb.DeleteTodoRequest) (*pb.TodoResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.todos.Delete(ctx, p, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TodoResponse{Todo: todoToPb(t)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
