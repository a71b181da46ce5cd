package viewer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// SocketIOEmitter is an Emitter backed by a connected socket.io client.
type SocketIOEmitter struct {
	io *socket.Socket
}

// DialSocketIO connects to the socket.io server at rawURL, joining namespace,
// and waits up to timeout for the connection to be established.
func DialSocketIO(ctx context.Context, rawURL, namespace string, timeout time.Duration) (*SocketIOEmitter, error) {
	logger := ctxlog.FromContext(ctx).With("url", rawURL, "namespace", namespace)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid publish URL %q: scheme and host are required", rawURL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to remote viewer.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Connecting to remote viewer...")
	io.Connect()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIOEmitter{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-timer.C:
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Emit sends payload as a socket.io event. Packets emitted while the client is
// reconnecting are buffered by the client.
func (e *SocketIOEmitter) Emit(event string, payload any) error {
	e.io.Emit(event, payload)
	return nil
}

// Close disconnects the client.
func (e *SocketIOEmitter) Close() error {
	e.io.Disconnect()
	return nil
}
