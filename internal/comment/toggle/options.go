package toggle

import (
	"fmt"
	"log/slog"

	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
)

// Options is the caller's intent for one toggle.
type Options struct {
	// StyleType forces line or block comments. Zero uses the engine default.
	StyleType style.Kind

	ForceComment   bool
	ForceUncomment bool
}

// Validate reports caller contract violations.
func (o Options) Validate() error {
	if o.ForceComment && o.ForceUncomment {
		return ErrConflictingForce
	}
	if o.StyleType != 0 && !o.StyleType.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyleType, o.StyleType)
	}
	return nil
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver sets the style resolver.
func WithResolver(r *resolve.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaultKind sets the comment kind used when a toggle requests none.
// Languages lacking that kind use their preferred kind.
func WithDefaultKind(k style.Kind) Option {
	return func(e *Engine) {
		if k.Valid() {
			e.defaultKind = k
		}
	}
}

// WithPadding controls the space inserted between marker and text.
func WithPadding(pad bool) Option {
	return func(e *Engine) {
		e.padding = pad
	}
}
