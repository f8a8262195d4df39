package assembler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"scopedraft/internal/content"
	"scopedraft/pkg/types/proposal"
)

// fakeEditor records the call sequence and can fail a chosen insertion.
type fakeEditor struct {
	calls     []string
	nodes     []content.Node
	failAt    int // fail the nth InsertAtEnd (1-based); 0 disables
	failFocus bool
}

func (f *fakeEditor) Focus(pos string) error {
	f.calls = append(f.calls, "focus:"+pos)
	if f.failFocus {
		return errors.New("focus rejected")
	}
	return nil
}

func (f *fakeEditor) InsertAtEnd(node content.Node) error {
	if f.failAt > 0 && len(f.nodes)+1 == f.failAt {
		return errors.New("insert rejected")
	}
	f.calls = append(f.calls, "insert:"+string(node.Type))
	f.nodes = append(f.nodes, node)
	return nil
}

func readyProvider(ed Editor) Provider {
	return ProviderFunc(func() (Editor, bool) { return ed, true })
}

func smallBreakdown() *proposal.WorkBreakdown {
	return &proposal.WorkBreakdown{
		ClientName:   "Acme",
		ProjectTitle: "Project",
		Scopes: []proposal.Scope{
			{Title: "Scope", Roles: []proposal.RoleLine{
				{Task: "Work", Role: "Engineer", Hours: proposal.Num(1), Rate: proposal.Num(100)},
			}},
		},
	}
}

func TestInsertFocusesBeforeEveryNode(t *testing.T) {
	ed := &fakeEditor{}
	asm := New(readyProvider(ed), nil, nil, time.Millisecond)

	if err := asm.Insert(context.Background(), smallBreakdown()); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if len(ed.nodes) == 0 {
		t.Fatal("nothing inserted")
	}

	// The sequence must strictly alternate focus:end then insert.
	for i, call := range ed.calls {
		if i%2 == 0 && call != "focus:end" {
			t.Fatalf("call %d = %q, want focus:end", i, call)
		}
		if i%2 == 1 && !strings.HasPrefix(call, "insert:") {
			t.Fatalf("call %d = %q, want an insert", i, call)
		}
	}
}

func TestInsertTwiceAppendsTwice(t *testing.T) {
	ed := &fakeEditor{}
	asm := New(readyProvider(ed), nil, nil, time.Millisecond)
	w := smallBreakdown()

	if err := asm.Insert(context.Background(), w); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	once := len(ed.nodes)
	if err := asm.Insert(context.Background(), w); err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if len(ed.nodes) != 2*once {
		t.Errorf("nodes = %d after two inserts, want %d", len(ed.nodes), 2*once)
	}
}

func TestInsertAbortsOnFirstFailure(t *testing.T) {
	ed := &fakeEditor{failAt: 3}
	asm := New(readyProvider(ed), nil, nil, time.Millisecond)

	err := asm.Insert(context.Background(), smallBreakdown())
	if err == nil {
		t.Fatal("expected a partial-assembly error")
	}
	if len(ed.nodes) != 2 {
		t.Errorf("inserted %d nodes, want the 2 before the failure", len(ed.nodes))
	}
	if !strings.Contains(err.Error(), "2/") {
		t.Errorf("error does not surface progress: %v", err)
	}
}

func TestInsertFocusFailureAborts(t *testing.T) {
	ed := &fakeEditor{failFocus: true}
	asm := New(readyProvider(ed), nil, nil, time.Millisecond)

	err := asm.Insert(context.Background(), smallBreakdown())
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(ed.nodes) != 0 {
		t.Errorf("inserted %d nodes despite focus failure", len(ed.nodes))
	}
}

func TestEditorReadyAfterOneRetry(t *testing.T) {
	ed := &fakeEditor{}
	attempts := 0
	provider := ProviderFunc(func() (Editor, bool) {
		attempts++
		if attempts == 1 {
			return nil, false
		}
		return ed, true
	})
	asm := New(provider, nil, nil, 5*time.Millisecond)

	if err := asm.Insert(context.Background(), smallBreakdown()); err != nil {
		t.Fatalf("insert failed despite editor becoming ready: %v", err)
	}
	if attempts != 2 {
		t.Errorf("provider polled %d times, want 2", attempts)
	}
}

func TestEditorNeverReady(t *testing.T) {
	attempts := 0
	provider := ProviderFunc(func() (Editor, bool) {
		attempts++
		return nil, false
	})
	asm := New(provider, nil, nil, time.Millisecond)

	err := asm.Insert(context.Background(), smallBreakdown())
	if !errors.Is(err, ErrEditorUnavailable) {
		t.Fatalf("err = %v, want ErrEditorUnavailable", err)
	}
	if attempts != 2 {
		t.Errorf("provider polled %d times, want exactly one retry", attempts)
	}
}

func TestEditorAcquisitionHonorsContext(t *testing.T) {
	provider := ProviderFunc(func() (Editor, bool) { return nil, false })
	asm := New(provider, nil, nil, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := asm.Insert(ctx, smallBreakdown())
	if err == nil {
		t.Fatal("expected an error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("insert blocked %v, retry wait ignored cancellation", elapsed)
	}
}

func TestNilProvider(t *testing.T) {
	asm := New(nil, nil, nil, time.Millisecond)
	err := asm.Insert(context.Background(), smallBreakdown())
	if !errors.Is(err, ErrEditorUnavailable) {
		t.Fatalf("err = %v, want ErrEditorUnavailable", err)
	}
}
