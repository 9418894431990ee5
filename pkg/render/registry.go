package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores renderers by name. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a registry, optionally pre-populated. It panics on a
// duplicate or unnamed renderer, as MustRegister does.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}
	for _, renderer := range renderers {
		r.MustRegister(renderer)
	}
	return r
}

// Register adds a renderer under its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}

// Describe returns name and content type pairs for every renderer, sorted by
// name.
func (r *Registry) Describe() []Info {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(names))
	for _, name := range names {
		renderer, ok := r.renderers[name]
		if !ok {
			continue
		}
		out = append(out, Info{Name: name, ContentType: renderer.ContentType()})
	}
	return out
}

// Info summarises a registered renderer.
type Info struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}
