package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "taskboard.v1.TaskBoard"

// Full method names, as seen by interceptors.
const (
	MethodPing               = "/" + ServiceName + "/Ping"
	MethodRegister           = "/" + ServiceName + "/Register"
	MethodLogin              = "/" + ServiceName + "/Login"
	MethodGetSession         = "/" + ServiceName + "/GetSession"
	MethodLogout             = "/" + ServiceName + "/Logout"
	MethodListTasks          = "/" + ServiceName + "/ListTasks"
	MethodCreateTask         = "/" + ServiceName + "/CreateTask"
	MethodUpdateTask         = "/" + ServiceName + "/UpdateTask"
	MethodDeleteTask         = "/" + ServiceName + "/DeleteTask"
	MethodSuggestDescription = "/" + ServiceName + "/SuggestDescription"
)

// TaskBoardServer is implemented by the gRPC front end.
type TaskBoardServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTasks(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteTask(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SuggestDescription(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type call func(TaskBoardServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func handler(fullMethod string, fn call) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(srv.(TaskBoardServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return fn(srv.(TaskBoardServer), ctx, req.(*structpb.Struct))
		})
	}
}

// ServiceDesc is registered with grpc.Server by RegisterTaskBoardServer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TaskBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: handler(MethodPing, TaskBoardServer.Ping)},
		{MethodName: "Register", Handler: handler(MethodRegister, TaskBoardServer.Register)},
		{MethodName: "Login", Handler: handler(MethodLogin, TaskBoardServer.Login)},
		{MethodName: "GetSession", Handler: handler(MethodGetSession, TaskBoardServer.GetSession)},
		{MethodName: "Logout", Handler: handler(MethodLogout, TaskBoardServer.Logout)},
		{MethodName: "ListTasks", Handler: handler(MethodListTasks, TaskBoardServer.ListTasks)},
		{MethodName: "CreateTask", Handler: handler(MethodCreateTask, TaskBoardServer.CreateTask)},
		{MethodName: "UpdateTask", Handler: handler(MethodUpdateTask, TaskBoardServer.UpdateTask)},
		{MethodName: "DeleteTask", Handler: handler(MethodDeleteTask, TaskBoardServer.DeleteTask)},
		{MethodName: "SuggestDescription", Handler: handler(MethodSuggestDescription, TaskBoardServer.SuggestDescription)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "taskboard/v1/taskboard.proto",
}

func RegisterTaskBoardServer(s grpc.ServiceRegistrar, srv TaskBoardServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// TaskBoardClient calls the service over a client connection.
type TaskBoardClient struct {
	cc grpc.ClientConnInterface
}

func NewTaskBoardClient(cc grpc.ClientConnInterface) *TaskBoardClient {
	return &TaskBoardClient{cc: cc}
}

// Call encodes in, invokes method and decodes the reply into out.
func (c *TaskBoardClient) Call(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	req, err := Encode(in)
	if err != nil {
		return err
	}
	reply := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, reply, opts...); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return Decode(reply, out)
}
