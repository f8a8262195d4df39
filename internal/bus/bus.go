// Package bus carries typed commands between the editor-command layer and
// the assembly side. State that would otherwise live in module-level
// variables (the active document handle, the insertion position) travels
// explicitly on these messages instead.
package bus

import (
	"context"
	"errors"
	"sync"

	"scopedraft/internal/assembler"
	"scopedraft/pkg/types/proposal"
)

// ErrClosed reports a publish on a closed bus.
var ErrClosed = errors.New("command bus closed")

// Command is the tagged union of messages the command layer emits.
type Command interface {
	isCommand()
}

// InsertBreakdown asks the assembly side to insert a finished work breakdown
// into the active document.
type InsertBreakdown struct {
	Target    Target
	Breakdown *proposal.WorkBreakdown
}

// ResetConversation asks the plan side to discard the current turn's plan and
// artifact.
type ResetConversation struct{}

func (InsertBreakdown) isCommand()   {}
func (ResetConversation) isCommand() {}

// Target names the document a command applies to, carrying the editor
// provider explicitly rather than through shared globals.
type Target struct {
	DocumentID string
	Provider   assembler.Provider
}

// Bus is a buffered, closeable command channel. The read lock is held for
// the duration of a send so Close can never race an in-flight Publish onto
// a closed channel.
type Bus struct {
	mu     sync.RWMutex
	ch     chan Command
	closed bool
}

// New creates a bus with the given buffer size.
func New(buffer int) *Bus {
	return &Bus{ch: make(chan Command, buffer)}
}

// Publish enqueues a command, honoring context cancellation.
func (b *Bus) Publish(ctx context.Context, cmd Command) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	select {
	case b.ch <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Commands returns the receive side of the bus. The channel closes once the
// bus is closed and its buffered commands drain, so consumers may range
// over it.
func (b *Bus) Commands() <-chan Command {
	return b.ch
}

// Close stops the bus. Commands already enqueued remain readable; Close is
// idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}
