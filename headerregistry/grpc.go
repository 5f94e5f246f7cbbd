package headerregistry

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Metadata exports the registry snapshot as outgoing gRPC metadata. Keys are
// lowercased to satisfy metadata conventions; value order is preserved.
func (r *Registry) Metadata() metadata.MD {
	snapshot := r.Snapshot()
	md := make(metadata.MD, len(snapshot))
	for name, values := range snapshot {
		md.Append(strings.ToLower(name), values...)
	}
	return md
}

// UnaryClientInterceptor creates a gRPC unary client interceptor that
// attaches the registry headers as outgoing metadata on every call.
func (r *Registry) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(r.attachMetadata(ctx), method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor creates a gRPC stream client interceptor that
// attaches the registry headers as outgoing metadata on every stream.
func (r *Registry) StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(r.attachMetadata(ctx), desc, cc, method, opts...)
	}
}

// attachMetadata merges the registry headers into the outgoing metadata of
// ctx. Keys the caller already set keep their values.
func (r *Registry) attachMetadata(ctx context.Context) context.Context {
	md := r.Metadata()
	if len(md) == 0 {
		return ctx
	}

	if existing, ok := metadata.FromOutgoingContext(ctx); ok {
		for key := range existing {
			delete(md, key)
		}
		md = metadata.Join(existing, md)
	}
	return metadata.NewOutgoingContext(ctx, md)
}
