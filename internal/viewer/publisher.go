package viewer

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/wire"
)

// DefaultEvent is the event name snapshots are published under.
const DefaultEvent = "framegraph"

// Emitter sends one event to a remote viewer.
type Emitter interface {
	Emit(event string, payload any) error
	Close() error
}

// Message is the payload of a published snapshot.
type Message struct {
	View     string         `json:"view"`
	Revision string         `json:"revision"`
	Snapshot *wire.Document `json:"snapshot"`
}

// Publisher pushes store entries to a remote viewer.
type Publisher struct {
	emitter Emitter
	event   string
}

// NewPublisher creates a publisher emitting DefaultEvent through emitter.
func NewPublisher(emitter Emitter) *Publisher {
	return &Publisher{emitter: emitter, event: DefaultEvent}
}

// Publish sends entry unless ctx is already done.
func (p *Publisher) Publish(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish of view %q cancelled: %w", entry.View, err)
	}

	msg := Message{
		View:     entry.View,
		Revision: entry.Revision.String(),
		Snapshot: wire.FromInfo(entry.Info),
	}
	if err := p.emitter.Emit(p.event, msg); err != nil {
		return fmt.Errorf("failed to publish view %q: %w", entry.View, err)
	}
	ctxlog.FromContext(ctx).Info("Snapshot published.", "view", entry.View, "revision", msg.Revision, "event", p.event)
	return nil
}

// Close releases the underlying emitter.
func (p *Publisher) Close() error {
	return p.emitter.Close()
}
