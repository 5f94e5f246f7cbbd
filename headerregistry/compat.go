package headerregistry

import (
	"crypto/tls"
	"net/http"
	"sync"
)

// compatMu serializes flag application against concurrent InstallDefaults
// calls on registries sharing a transport.
var compatMu sync.Mutex

// applyCompatFlags adjusts process-wide transport settings required for the
// default headers to take effect on constrained client stacks:
//
//   - TLS renegotiation is permitted, so servers that renegotiate mid-handshake
//     (common behind certain load balancers) do not abort the request.
//   - The registry records that restricted-header override is in effect;
//     ApplyRequest then routes a stored Host header into Request.Host, the
//     only channel net/http honors for it.
//
// The target defaults to http.DefaultTransport so the flags are visible to
// every client in the process that has not brought its own transport. The
// operation is idempotent and deliberately runs on each InstallDefaults call.
func applyCompatFlags(transport *http.Transport) {
	if transport == nil {
		transport, _ = http.DefaultTransport.(*http.Transport)
	}
	if transport == nil {
		return
	}

	compatMu.Lock()
	defer compatMu.Unlock()

	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	// Repeat calls leave an already-configured transport untouched so a
	// concurrent TLS dial never observes the config mid-write.
	if transport.TLSClientConfig.Renegotiation != tls.RenegotiateFreelyAsClient {
		transport.TLSClientConfig.Renegotiation = tls.RenegotiateFreelyAsClient
	}
}
