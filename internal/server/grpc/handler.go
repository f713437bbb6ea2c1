package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/api"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func decode(in *structpb.Struct, v any) error {
	if err := api.Decode(in, v); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func reply(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, api.ToStatus(err)
	}
	out, err := api.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// ownUser resolves the user a task request acts for: the token's user,
// which an explicit userId in the request must match.
func ownUser(ctx context.Context, requested string) (string, error) {
	tokenUser := userIDFrom(ctx)
	if requested != "" && requested != tokenUser {
		return "", status.Error(codes.PermissionDenied, "token does not belong to the requested user")
	}
	return tokenUser, nil
}

func (s *GRPCServer) Ping(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return reply(api.PingResponse{Status: "OK"}, nil)
}

func (s *GRPCServer) Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.RegisterRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	sess, err := s.auth.Register(ctx, req.Username, req.FullName, req.Password)
	if err == nil {
		s.logger.Info(ctx, "Registered", "username", req.Username)
	}
	return reply(api.SessionResponse{Session: sess}, err)
}

func (s *GRPCServer) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.LoginRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	sess, err := s.auth.Login(ctx, req.Username, req.Password)
	return reply(api.SessionResponse{Session: sess}, err)
}

func (s *GRPCServer) GetSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.auth.GetSession(ctx)
	return reply(api.SessionResponse{Session: sess}, err)
}

func (s *GRPCServer) Logout(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return reply(api.Empty{}, s.auth.Logout(ctx))
}

func (s *GRPCServer) ListTasks(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.ListTasksRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	userID, err := ownUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	mode, err := models.ParseFilterMode(req.Filter)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return reply(nil, err)
	}
	return reply(api.TasksResponse{Tasks: models.Filter(tasks, mode)}, nil)
}

func (s *GRPCServer) CreateTask(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.CreateTaskRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	userID, err := ownUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Create(ctx, userID, req.NewTask())
	if err != nil {
		return reply(nil, err)
	}
	return reply(api.TaskResponse{Task: *task}, nil)
}

func (s *GRPCServer) UpdateTask(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req models.TaskUpdate
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	task, err := s.tasks.UpdateOwned(ctx, userIDFrom(ctx), req)
	if err != nil {
		return reply(nil, err)
	}
	return reply(api.TaskResponse{Task: *task}, nil)
}

func (s *GRPCServer) DeleteTask(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.DeleteTaskRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	return reply(api.Empty{}, s.tasks.DeleteOwned(ctx, userIDFrom(ctx), req.ID))
}

func (s *GRPCServer) SuggestDescription(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req api.SuggestRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	return reply(api.SuggestResponse{Description: s.suggester.Suggest(ctx, req.Title)}, nil)
}
