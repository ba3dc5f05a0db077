package engine

import (
	"slices"
	"sync"

	"github.com/dshills/commentary/internal/comment/toggle"
)

// Workspace maps buffer numbers to open documents. Numbers start at 1 and
// are never reused, so a closed number stays invalid.
type Workspace struct {
	mu   sync.RWMutex
	docs map[int]*Document
	next int
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		docs: make(map[int]*Document),
		next: 1,
	}
}

// Open adds doc and returns its buffer number.
func (w *Workspace) Open(doc *Document) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := w.next
	w.next++
	w.docs[n] = doc
	return n
}

// OpenFile loads path and adds it to the workspace.
func (w *Workspace) OpenFile(path string, opts ...Option) (int, *Document, error) {
	doc, err := LoadDocument(path, opts...)
	if err != nil {
		return 0, nil, err
	}
	return w.Open(doc), doc, nil
}

// Get returns the document for bufnr.
func (w *Workspace) Get(bufnr int) (*Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.docs[bufnr]
	return doc, ok
}

// Buffer implements toggle.Host.
func (w *Workspace) Buffer(bufnr int) (toggle.Buffer, bool) {
	doc, ok := w.Get(bufnr)
	if !ok {
		return nil, false
	}
	return doc, true
}

// Close closes and removes bufnr.
func (w *Workspace) Close(bufnr int) error {
	w.mu.Lock()
	doc, ok := w.docs[bufnr]
	delete(w.docs, bufnr)
	w.mu.Unlock()

	if !ok {
		return ErrUnknownBuffer
	}
	doc.Close()
	return nil
}

// Numbers returns the open buffer numbers in ascending order.
func (w *Workspace) Numbers() []int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]int, 0, len(w.docs))
	for n := range w.docs {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
