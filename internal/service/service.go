// Package service exposes TypeWith over gRPC without a generated stub: the
// request/response messages are parsed from an in-memory .proto source at
// startup with protoreflect/desc/protoparse, and the single TypeOf method is
// registered against a hand-built grpc.ServiceDesc whose Handler decodes into
// a dynamic.Message — the same dynamic-registration idiom the evaluator's
// gRPC builtins use to expose host objects as services, generalized here to
// expose the whole type-checker as one.
package service

import (
	"context"
	"fmt"
	"net"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/dhallcore/dhallcore/internal/typecheck"
	"github.com/dhallcore/dhallcore/internal/wire"
)

// protoSource describes the TypeChecker service inline, so the service never
// needs a .proto file on disk: a Term and its inferred type both travel as
// opaque wire-encoded (YAML/JSON) strings, since Dhall's term grammar has no
// fixed protobuf shape.
const protoSource = `
syntax = "proto3";
package dhallcore;

message TermDocument {
  string wire = 1;
}

message TypeResult {
  string type_wire = 1;
  string error = 2;
}

service TypeChecker {
  rpc TypeOf(TermDocument) returns (TypeResult);
}
`

const serviceName = "dhallcore.TypeChecker"

// Server wraps a *grpc.Server whose sole registered service dynamically
// type-checks the TermDocument it's sent and renders the result (or a
// diagnostics error) back as a TypeResult.
type Server struct {
	grpcServer *grpc.Server
	sd         *desc.ServiceDescriptor
}

// New parses the inline service descriptor and registers the TypeChecker
// service against a fresh grpc.Server.
func New() (*Server, error) {
	sd, err := loadServiceDescriptor()
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	s := &Server{grpcServer: grpc.NewServer(), sd: sd}

	handler := &typeCheckerHandler{sd: sd}
	desc := &grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*interface{})(nil),
		Metadata:    sd.GetFile().GetName(),
	}
	for _, method := range sd.GetMethods() {
		md := method
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: md.GetName(),
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				return srv.(*typeCheckerHandler).handleTypeOf(ctx, md, dec)
			},
		})
	}
	s.grpcServer.RegisterService(desc, handler)
	return s, nil
}

// Serve blocks accepting connections on addr until the listener or server
// stops.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("service: listen %s: %w", addr, err)
	}
	return s.grpcServer.Serve(lis)
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

func loadServiceDescriptor() (*desc.ServiceDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			"dhallcore.proto": protoSource,
		}),
	}
	fds, err := parser.ParseFiles("dhallcore.proto")
	if err != nil {
		return nil, fmt.Errorf("parse inline service descriptor: %w", err)
	}
	sd := fds[0].FindService(serviceName)
	if sd == nil {
		return nil, fmt.Errorf("service descriptor %s missing after parse", serviceName)
	}
	return sd, nil
}

type typeCheckerHandler struct {
	sd *desc.ServiceDescriptor
}

func (h *typeCheckerHandler) handleTypeOf(ctx context.Context, md *desc.MethodDescriptor, dec func(interface{}) error) (interface{}, error) {
	reqMsg := dynamic.NewMessage(md.GetInputType())
	if err := dec(reqMsg); err != nil {
		return nil, err
	}
	termWire, _ := reqMsg.TryGetFieldByName("wire")
	wireStr, _ := termWire.(string)

	resp := dynamic.NewMessage(md.GetOutputType())

	t, err := wire.Unmarshal([]byte(wireStr))
	if err != nil {
		_ = resp.SetFieldByName("error", err.Error())
		return resp, nil
	}

	ty, typeErr := typecheck.TypeOf(t)
	if typeErr != nil {
		_ = resp.SetFieldByName("error", typeErr.Error())
		return resp, nil
	}

	out, err := wire.Marshal(ty)
	if err != nil {
		_ = resp.SetFieldByName("error", err.Error())
		return resp, nil
	}
	_ = resp.SetFieldByName("type_wire", string(out))
	return resp, nil
}
