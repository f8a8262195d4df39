// Package assembler owns the one side effect in scopedraft: inserting an
// assembled proposal tree into the live document. Everything upstream of it
// is pure; every failure a caller must handle surfaces here.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scopedraft/internal/content"
	apperrors "scopedraft/internal/errors"
	"scopedraft/internal/logging"
	"scopedraft/pkg/types/proposal"
)

// ErrEditorUnavailable reports that the live document host never produced an
// editor handle within the bounded retry window. Callers must surface this to
// the user; content is never dropped silently.
var ErrEditorUnavailable = errors.New("editor unavailable")

// DefaultRetryDelay is how long to wait before the single retry when the
// editor has not initialized yet.
const DefaultRetryDelay = 2 * time.Second

const posEnd = "end"

// Editor is the minimal live-document host contract: focus the end position
// and append a node there.
type Editor interface {
	Focus(pos string) error
	InsertAtEnd(node content.Node) error
}

// Provider yields the live editor handle once the host has initialized it.
type Provider interface {
	Editor() (Editor, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (Editor, bool)

func (f ProviderFunc) Editor() (Editor, bool) { return f() }

// Assembler builds a proposal tree from a work breakdown and inserts it into
// the live document. Insert is not idempotent: calling it twice appends the
// document twice.
type Assembler struct {
	provider   Provider
	builder    *content.Builder
	logger     logging.Logger
	retryDelay time.Duration
}

// New creates an assembler. A nil builder gets a default one; a zero
// retryDelay falls back to DefaultRetryDelay.
func New(provider Provider, builder *content.Builder, logger logging.Logger, retryDelay time.Duration) *Assembler {
	if builder == nil {
		builder = content.NewBuilder(nil)
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Assembler{
		provider:   provider,
		builder:    builder,
		logger:     logging.OrNop(logger),
		retryDelay: retryDelay,
	}
}

// Insert assembles the breakdown and appends the resulting nodes to the live
// document, focusing the end position before each structural insertion so new
// nodes cannot merge into a currently-focused unrelated block.
//
// The first failing insertion aborts the rest of the call; the error reports
// how much of the document made it in.
func (a *Assembler) Insert(ctx context.Context, w *proposal.WorkBreakdown) error {
	ed, err := a.acquireEditor(ctx)
	if err != nil {
		return err
	}

	nodes := a.builder.Build(w)
	a.logger.Info("inserting %d nodes for %q", len(nodes), w.ProjectTitle)

	for i, node := range nodes {
		if err := ed.Focus(posEnd); err != nil {
			return a.partialErr(i, len(nodes), fmt.Errorf("focus end: %w", err))
		}
		if err := ed.InsertAtEnd(node); err != nil {
			return a.partialErr(i, len(nodes), fmt.Errorf("insert %s node: %w", node.Type, err))
		}
	}

	a.logger.Info("assembled %q: %d nodes", w.ProjectTitle, len(nodes))
	return nil
}

func (a *Assembler) partialErr(inserted, total int, err error) error {
	a.logger.Error("assembly aborted after %d/%d nodes: %v", inserted, total, err)
	return fmt.Errorf("document partially assembled (%d/%d nodes inserted): %w", inserted, total, err)
}

// acquireEditor obtains the live editor handle, retrying exactly once after a
// bounded delay when the host has not initialized yet.
func (a *Assembler) acquireEditor(ctx context.Context) (Editor, error) {
	config := apperrors.RetryConfig{
		MaxAttempts: 1,
		BaseDelay:   a.retryDelay,
	}
	ed, err := apperrors.RetryWithResultAndLog(ctx, config, func(context.Context) (Editor, error) {
		if a.provider == nil {
			return nil, apperrors.Permanent(ErrEditorUnavailable)
		}
		if ed, ok := a.provider.Editor(); ok {
			return ed, nil
		}
		return nil, apperrors.Transient(ErrEditorUnavailable)
	}, a.logger)
	if err != nil {
		a.logger.Error("live document never became ready: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrEditorUnavailable, err)
	}
	return ed, nil
}
