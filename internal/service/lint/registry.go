package lint

import (
	"errors"
	"fmt"
)

var ErrDuplicateSymbol = errors.New("check symbol already registered")

// CheckFunc classifies a mesh's elements. It must not mutate mesh state.
type CheckFunc func(m Mesh) BadElements

// Check is one registered rule. Immutable once registered.
type Check struct {
	Symbol         string    `json:"symbol"`
	Label          string    `json:"label"`
	Definition     string    `json:"definition"`
	DefaultEnabled bool      `json:"default_enabled"`
	Classify       CheckFunc `json:"-"`
}

// Registry is an append-only ordered list of checks. Registration order is
// report and display order; there is no removal.
type Registry struct {
	checks  []Check
	symbols map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{symbols: make(map[string]struct{})}
}

// Register appends a check. Registering a symbol twice is a programming
// error and is rejected.
func (r *Registry) Register(c Check) error {
	if _, dup := r.symbols[c.Symbol]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, c.Symbol)
	}
	r.symbols[c.Symbol] = struct{}{}
	r.checks = append(r.checks, c)
	return nil
}

// Checks returns the registered checks in registration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) Checks() []Check {
	return r.checks
}

// DefaultEnabled returns the set of symbols enabled out of the box.
func (r *Registry) DefaultEnabled() map[string]bool {
	enabled := make(map[string]bool, len(r.checks))
	for _, c := range r.checks {
		enabled[c.Symbol] = c.DefaultEnabled
	}
	return enabled
}
