package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brasilutil/infohub-server/internal/chat"
	"github.com/brasilutil/infohub-server/internal/config"
	"github.com/brasilutil/infohub-server/internal/proxy"
)

// startTestServer spins up the full HTTP server over an httptest
// listener. Proxy upstreams default to unreachable URLs; tests that
// exercise the passthrough endpoints pass their own proxy config.
func startTestServer(t *testing.T, proxyCfg proxy.Config) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	hub := chat.NewHub(chat.NewRegistry(), &logger)

	server := NewServer(hub, proxy.NewServices(proxyCfg), config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}
