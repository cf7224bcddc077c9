package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
)

func newTestHTTPServer(addr string, h http.Handler) *server {
	cfg := config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}
	return &server{
		httpServer: newHTTPServer(h, cfg, logger.Nop()),
		logger:     logger.Nop(),
	}
}

// freeAddress returns a loopback address that was free a moment ago.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersAreCreated)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	s := newTestHTTPServer(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/posts")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := newTestHTTPServer(l.Addr().String(), http.NotFoundHandler())

	err = s.Run(context.Background())

	assert.Error(t, err)
}

func TestShutdown_BeforeRunIsSafe(t *testing.T) {
	s := newTestHTTPServer(freeAddress(t), http.NotFoundHandler())

	assert.NotPanics(t, s.Shutdown)
}
