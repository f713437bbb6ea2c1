package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/api"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      *api.TaskBoardClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if t := s.token(); t != "" {
		ctx = withAccessToken(ctx, t)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; extra dial options are appended
// to the defaults (insecure transport, token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewTaskBoardClient(conn)
	return c, nil
}

func (s *GRPCClient) call(ctx context.Context, method string, in, out any) error {
	return api.FromStatus(s.client.Call(ctx, method, in, out))
}

func (s *GRPCClient) session(ctx context.Context, method string, in any) (*models.Session, error) {
	var resp api.SessionResponse
	if err := s.call(ctx, method, in, &resp); err != nil {
		return nil, err
	}
	token := ""
	if resp.Session != nil {
		token = resp.Session.Token
	}
	s.setToken(token)
	return resp.Session, nil
}

func (s *GRPCClient) Register(ctx context.Context, username, fullName, password string) (*models.Session, error) {
	return s.session(ctx, api.MethodRegister, api.RegisterRequest{Username: username, FullName: fullName, Password: password})
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	return s.session(ctx, api.MethodLogin, api.LoginRequest{Username: username, Password: password})
}

// GetSession also adopts the token of the server's active session, or
// drops the local one when the server has none.
func (s *GRPCClient) GetSession(ctx context.Context) (*models.Session, error) {
	return s.session(ctx, api.MethodGetSession, api.Empty{})
}

func (s *GRPCClient) Logout(ctx context.Context) error {
	if err := s.call(ctx, api.MethodLogout, api.Empty{}, nil); err != nil {
		return err
	}
	s.setToken("")
	return nil
}

func (s *GRPCClient) List(ctx context.Context, userID string) ([]models.Task, error) {
	var resp api.TasksResponse
	if err := s.call(ctx, api.MethodListTasks, api.ListTasksRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) Create(ctx context.Context, userID string, in models.NewTask) (*models.Task, error) {
	req := api.CreateTaskRequest{UserID: userID, Title: in.Title, Description: in.Description, Status: in.Status}
	var resp api.TaskResponse
	if err := s.call(ctx, api.MethodCreateTask, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

func (s *GRPCClient) Update(ctx context.Context, in models.TaskUpdate) (*models.Task, error) {
	var resp api.TaskResponse
	if err := s.call(ctx, api.MethodUpdateTask, in, &resp); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

func (s *GRPCClient) Delete(ctx context.Context, taskID string) error {
	return s.call(ctx, api.MethodDeleteTask, api.DeleteTaskRequest{ID: taskID}, nil)
}

func (s *GRPCClient) Suggest(ctx context.Context, title string) (string, error) {
	var resp api.SuggestResponse
	if err := s.call(ctx, api.MethodSuggestDescription, api.SuggestRequest{Title: title}, &resp); err != nil {
		return "", err
	}
	return resp.Description, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	var resp api.PingResponse
	if err := s.call(ctx, api.MethodPing, api.Empty{}, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return common.ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

var (
	_ Client = (*GRPCClient)(nil)
	_ Client = (*LocalClient)(nil)
)
