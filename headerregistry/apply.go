package headerregistry

import (
	"net/http"
)

// ApplyHeader copies the registry snapshot onto an outgoing header map.
// Names the destination already carries keep their per-request values;
// everything else is added with the registry's value order intact.
func (r *Registry) ApplyHeader(h http.Header) {
	if h == nil {
		return
	}
	for name, values := range r.Snapshot() {
		if len(h.Values(name)) > 0 {
			continue
		}
		for _, value := range values {
			h.Add(name, value)
		}
	}
}

// ApplyRequest copies the registry snapshot onto an outgoing request. It
// behaves like ApplyHeader with two additions:
//
//   - once compatibility flags have been applied, a stored Host header is
//     routed to req.Host (net/http ignores Header["Host"]);
//   - when the request context carries an active trace span, a Traceparent
//     header is injected unless the request already has one.
func (r *Registry) ApplyRequest(req *http.Request) {
	if req == nil {
		return
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	compat := r.compatApplied()
	for name, values := range r.Snapshot() {
		if compat && http.CanonicalHeaderKey(name) == "Host" {
			if req.Host == "" && len(values) > 0 {
				req.Host = values[0]
			}
			continue
		}
		if len(req.Header.Values(name)) > 0 {
			continue
		}
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if req.Header.Get("Traceparent") == "" {
		if traceparent, ok := TraceparentValue(req.Context()); ok {
			req.Header.Set("Traceparent", traceparent)
		}
	}
}
