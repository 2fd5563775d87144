package provider

import (
	"context"
	"fmt"
)

// ExternalSessionTerminator signs the user out of one federated
// identity provider's scheme. Implementations return identity-provider
// errors as-is; the logout flow decides that they are non-fatal.
type ExternalSessionTerminator interface {
	// Scheme returns the provider scheme this terminator handles,
	// matching the session's identity-provider claim.
	Scheme() string

	// SignOut asks the provider to end its session, passing a callback
	// URL that re-enters the local logout flow when the provider
	// redirects back.
	SignOut(ctx context.Context, logoutID string, callbackURL string) error
}

// Registry holds the configured session terminators and allows lookup
// by scheme name. It performs no sign-out logic itself.
type Registry struct {
	terminators map[string]ExternalSessionTerminator
}

// NewRegistry registers the given terminators by scheme.
// Scheme names must be unique.
func NewRegistry(list ...ExternalSessionTerminator) *Registry {
	m := make(map[string]ExternalSessionTerminator)
	for _, t := range list {
		m[t.Scheme()] = t
	}
	return &Registry{terminators: m}
}

// Get returns the terminator for a scheme or an error if none is
// registered. A missing terminator is a recoverable condition for
// callers, not a panic.
func (r *Registry) Get(scheme string) (ExternalSessionTerminator, error) {
	t, ok := r.terminators[scheme]
	if !ok {
		return nil, fmt.Errorf("provider: no session terminator for scheme %q", scheme)
	}
	return t, nil
}
