// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"net"

	"github.com/gfxreplay/glretrace/core/log"
	"github.com/gfxreplay/glretrace/core/net/grpcutil"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName    = "glretrace.Status"
	progressMethod = "/" + serviceName + "/Progress"
)

// Server is the replay status service.
type Server interface {
	// Progress returns the current replay progress.
	Progress(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func progressHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Progress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: progressMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Server).Progress(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Progress", Handler: progressHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "glretrace/status",
}

// Register adds the status service for s to server.
func Register(server *grpc.Server, s Server) {
	server.RegisterService(&serviceDesc, s)
}

type server struct {
	progress *Progress
}

// NewServer returns a Server reporting progress.
func NewServer(progress *Progress) Server {
	return &server{progress: progress}
}

func (s *server) Progress(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(s.progress.Report())
	if err != nil {
		log.W(ctx, "Converting progress: %v", err)
		return nil, grpcstatus.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// Serve runs the status service for progress on listener until ctx is
// cancelled.
func Serve(ctx context.Context, listener net.Listener, progress *Progress) error {
	return grpcutil.ServeWithListener(ctx, listener, func(ctx context.Context, _ net.Listener, server *grpc.Server) error {
		Register(server, NewServer(progress))
		return nil
	})
}

// Client reads the status of a replay.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient returns a Client using conn.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Progress fetches the replay progress.
func (c *Client) Progress(ctx context.Context) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, progressMethod, &emptypb.Empty{}, out); err != nil {
		return nil, errors.Wrap(err, "Fetching replay progress")
	}
	return out, nil
}
