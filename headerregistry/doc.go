package headerregistry

// Package headerregistry provides a process-wide registry of default HTTP
// headers shared by every outgoing request of a client application.
//
// The registry is a concurrency-safe map from header names to ordered value
// lists with override and append write semantics. It is meant to be
// constructed once at the application's composition root and injected into
// every component that issues requests.
//
// # Basic Usage
//
//	registry := headerregistry.New(nil)
//	registry.Set("X-Api-Key", "secret", true)
//
//	req, _ := http.NewRequest("GET", "https://example.com", nil)
//	registry.ApplyRequest(req)
//
// # Features
//
//   - Ordered multi-value headers with override/append writes
//   - Built-in Accept, Accept-Encoding and User-Agent defaults
//   - Silent no-ops on malformed input (never crashes a request path)
//   - Safe concurrent mutation from any number of goroutines
//   - Declarative defaults loadable from JSON/YAML
//   - Per-header value transforms
//   - gRPC client interceptors exporting the registry as metadata
//   - Traceparent injection from the active OpenTelemetry span
//
// # Configuration
//
// The registry supports both programmatic configuration via the builder
// pattern and declarative configuration via structs that can be loaded from
// JSON/YAML:
//
//	registry := headerregistry.NewBuilder().
//		AddDefault("X-Client", "billing-worker").
//		WithTransform("Authorization", headerregistry.ChainTransforms(
//			headerregistry.RemovePrefix("Bearer "),
//			headerregistry.AddPrefix("Bearer "),
//		)).
//		Build()
//
// # gRPC Integration
//
// The registry provides gRPC interceptors for client-side metadata
// propagation:
//
//	conn, err := grpc.NewClient(target,
//		grpc.WithUnaryInterceptor(registry.UnaryClientInterceptor()),
//		grpc.WithStreamInterceptor(registry.StreamClientInterceptor()),
//	)
