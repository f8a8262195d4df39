// Package editor is the in-memory reference implementation of the live
// document host: an append-only node list with a focus cursor, plus an HTML
// exporter so assembled documents are viewable.
package editor

import (
	"fmt"
	"sync"

	"scopedraft/internal/content"
)

// PosEnd is the only focus position the host contract requires.
const PosEnd = "end"

// Document is a live, mutable document. Generated content only ever appends
// at the end, so a single mutex is enough.
type Document struct {
	mu     sync.Mutex
	nodes  []content.Node
	cursor string
}

// NewDocument creates an empty document with the cursor at the end.
func NewDocument() *Document {
	return &Document{cursor: PosEnd}
}

// Focus moves the cursor. Only "end" is supported by this host.
func (d *Document) Focus(pos string) error {
	if pos != PosEnd {
		return fmt.Errorf("unsupported focus position %q", pos)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = pos
	return nil
}

// InsertAtEnd appends one node at the current end position.
func (d *Document) InsertAtEnd(node content.Node) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nodes = append(d.nodes, node)
	return nil
}

// Len reports the number of top-level nodes.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.nodes)
}

// Nodes returns a copy of the top-level node list.
func (d *Document) Nodes() []content.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]content.Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}
