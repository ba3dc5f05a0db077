package history

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/dshills/commentary/internal/log"
)

// ErrNilCallback is returned by Grouper.Do when fn is nil.
var ErrNilCallback = errors.New("group callback is nil")

// GroupHost is the host-level grouped edit that a Grouper drives.
// History implements it.
type GroupHost interface {
	BeginGroup(name string)
	EndGroup()
}

// Grouper is a reentrant edit group scope over a GroupHost.
//
// Depth transitions 0→1 and 1→0 are the only points where the host is
// told to begin or end a group; calls in between join the open group.
type Grouper struct {
	mu     sync.Mutex
	host   GroupHost
	depth  int
	logger *slog.Logger
}

// GrouperOption configures a Grouper.
type GrouperOption func(*Grouper)

// WithLogger sets the logger used for mismatched End warnings.
func WithLogger(logger *slog.Logger) GrouperOption {
	return func(g *Grouper) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGrouper creates a Grouper over host.
func NewGrouper(host GroupHost, opts ...GrouperOption) *Grouper {
	g := &Grouper{
		host:   host,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Do runs fn inside a group. The depth is restored even if fn returns an
// error or panics. Edits fn made before failing stay grouped.
func (g *Grouper) Do(name string, fn func() error) error {
	if fn == nil {
		return ErrNilCallback
	}
	g.Start(name)
	defer g.End()
	return fn()
}

// Start enters a group scope.
func (g *Grouper) Start(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.depth++
	if g.depth == 1 {
		g.host.BeginGroup(name)
	}
}

// End leaves a group scope. An End without a matching Start logs a
// warning and leaves the depth at zero.
func (g *Grouper) End() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.depth == 0 {
		g.logger.Warn("edit group end without matching start")
		return
	}
	g.depth--
	if g.depth == 0 {
		g.host.EndGroup()
	}
}

// Depth returns the current nesting depth.
func (g *Grouper) Depth() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.depth
}
