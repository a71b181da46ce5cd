package viewer

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := NewServer("127.0.0.1:0", NewHandler(context.Background(), NewStore(nil), nil))
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ServeBeforeListen(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NotFoundHandler())
	assert.Error(t, srv.Serve(context.Background()))
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}
