package preset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates a preset registered without a name.
	ErrEmptyName = errors.New("preset: empty name")

	// ErrDuplicatePreset indicates a name that is already registered.
	ErrDuplicatePreset = errors.New("preset: duplicate name")

	// ErrPresetNotFound indicates a lookup for an unknown name.
	ErrPresetNotFound = errors.New("preset: not found")

	// ErrNilGrid indicates Register was called with a nil grid.
	ErrNilGrid = errors.New("preset: nil grid")
)

// Registry maps preset names to grids. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	grids map[string]*grid.Grid
	names []string // registration order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{grids: make(map[string]*grid.Grid)}
}

// Register stores a clone of g under name.
func (r *Registry) Register(name string, g *grid.Grid) error {
	if name == "" {
		return ErrEmptyName
	}
	if g == nil {
		return fmt.Errorf("%w: %q", ErrNilGrid, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.grids[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePreset, name)
	}
	r.grids[name] = g.Clone()
	r.names = append(r.names, name)
	return nil
}

// Get returns a fresh clone of the named preset.
func (r *Registry) Get(name string) (*grid.Grid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.grids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return g.Clone(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grids[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Len returns the number of presets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
