// Package stream defines the tool-invocation records delivered by the host
// streaming transport, plus a JSONL script reader used to replay recorded
// streams in the CLI and in tests.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Invocation states as delivered by the transport. Anything other than
// "result" is actionable; "result" marks an already-finalized duplicate.
const (
	StatePartial = "partial-call"
	StateCall    = "call"
	StateResult  = "result"
)

// ToolInvocation is one tool-invocation record attached to an in-flight
// assistant message. Args stay duck-typed here; the plan package decodes them
// into a tagged event union.
type ToolInvocation struct {
	MessageID string         `json:"messageId"`
	ToolName  string         `json:"toolName"`
	State     string         `json:"state"`
	Args      map[string]any `json:"args"`
}

// Finalized reports whether the record is a finalized duplicate that must not
// be folded again.
func (inv ToolInvocation) Finalized() bool {
	return inv.State == StateResult
}

// ReadScript decodes a JSONL stream of tool invocations, one record per line.
// Blank lines are skipped; a malformed line fails the whole read with its
// line number.
func ReadScript(r io.Reader) ([]ToolInvocation, error) {
	var records []ToolInvocation

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var inv ToolInvocation
		if err := json.Unmarshal([]byte(line), &inv); err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo, err)
		}
		records = append(records, inv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return records, nil
}

// Play delivers records to fn in order, waiting delay between records to
// simulate a live stream. A zero delay delivers synchronously. Returns early
// when ctx is cancelled.
func Play(ctx context.Context, records []ToolInvocation, delay time.Duration, fn func(ToolInvocation)) error {
	for i, inv := range records {
		if i > 0 && delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fn(inv)
	}
	return nil
}
