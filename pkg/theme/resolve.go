package theme

import (
	stderrors "errors"

	"github.com/go-drift/cardview/pkg/graphics"
)

var (
	// ErrUnknownKey is returned for color keys no role maps to.
	ErrUnknownKey = stderrors.New("unknown theme key")
	// ErrNoTheme is returned when resolving against a nil theme.
	ErrNoTheme = stderrors.New("no theme")
)

// Resolver looks up theme colors by key. Hosts inject one into card
// components; tests substitute their own.
type Resolver interface {
	ResolveColor(key string) (graphics.Color, error)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(key string) (graphics.Color, error)

// ResolveColor calls f(key).
func (f ResolverFunc) ResolveColor(key string) (graphics.Color, error) {
	return f(key)
}

// ResolveColor returns the color for key, or fallback when the resolver is
// nil, fails, or panics. It never fails outward.
func ResolveColor(r Resolver, key string, fallback graphics.Color) (c graphics.Color) {
	if r == nil {
		return fallback
	}
	defer func() {
		if recover() != nil {
			c = fallback
		}
	}()
	resolved, err := r.ResolveColor(key)
	if err != nil {
		return fallback
	}
	return resolved
}
