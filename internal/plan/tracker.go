package plan

import (
	"sync"

	"scopedraft/internal/logging"
	"scopedraft/internal/stream"
)

// View is the derived display state after each applied event.
type View struct {
	Title          string
	CompletedCount int
	TotalCount     int
	Steps          []TaskStep
	Artifact       *Artifact
}

// Tracker binds the fold reducer to exactly one in-flight assistant message.
// Events tagged with any other message id are ignored; binding to a new id
// resets the snapshot first so a stale plan can never leak across turns.
type Tracker struct {
	mu        sync.Mutex
	messageID string
	snap      Snapshot
	logger    logging.Logger
	onUpdate  func(View)
}

// NewTracker creates a tracker. onUpdate, when non-nil, runs after every
// applied event with the freshly derived view.
func NewTracker(logger logging.Logger, onUpdate func(View)) *Tracker {
	return &Tracker{
		logger:   logging.OrNop(logger),
		onUpdate: onUpdate,
	}
}

// Bind attaches the tracker to an assistant message id. A new id discards
// the previous turn's plan and artifact before any of the new turn's events
// are applied.
func (t *Tracker) Bind(messageID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.messageID == messageID {
		return
	}
	t.logger.Debug("binding to message %s, discarding state for %s", messageID, t.messageID)
	t.messageID = messageID
	t.snap = Snapshot{}
}

// Apply folds one invocation record into the tracked state. Finalized
// duplicates (state == "result") and records for other message ids are
// ignored.
func (t *Tracker) Apply(inv stream.ToolInvocation) {
	if inv.Finalized() {
		return
	}

	t.mu.Lock()
	if t.messageID == "" || inv.MessageID != t.messageID {
		t.mu.Unlock()
		t.logger.Debug("ignoring %s event for unbound message %s", inv.ToolName, inv.MessageID)
		return
	}
	t.snap = Fold(t.snap, ParseToolEvent(inv))
	view := t.viewLocked()
	onUpdate := t.onUpdate
	t.mu.Unlock()

	if onUpdate != nil {
		onUpdate(view)
	}
}

// Reset clears plan and artifact synchronously ("new conversation").
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageID = ""
	t.snap = Snapshot{}
}

// View returns the current derived display state.
func (t *Tracker) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewLocked()
}

func (t *Tracker) viewLocked() View {
	view := View{Artifact: t.snap.Artifact}
	if t.snap.Plan != nil {
		view.Title = t.snap.Plan.Title
		view.TotalCount = len(t.snap.Plan.Steps)
		view.CompletedCount = t.snap.Plan.CompletedCount()
		view.Steps = make([]TaskStep, len(t.snap.Plan.Steps))
		copy(view.Steps, t.snap.Plan.Steps)
	}
	return view
}
