package adapter

import (
	"context"

	"github.com/atlgigs/gig-scraper/internal/event"
)

// Adapter fetches raw listings for one venue. Implementations return
// events in the common pre-normalization shape; slugs, history fields, and
// price consolidation are the pipeline's job.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context) ([]*event.Event, error)
}

// Registry maps venue names to adapters and preserves registration order
// so runs iterate venues deterministically.
type Registry struct {
	order  []string
	byName map[string]Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Adapter)}
}

// Register adds an adapter, replacing any previous adapter with the same
// name (used for the Ticketmaster-backed venue variants).
func (r *Registry) Register(a Adapter) {
	name := a.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = a
}

// Names returns venue names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Get returns the adapter for a venue name.
func (r *Registry) Get(name string) (Adapter, bool) {
	a, ok := r.byName[name]
	return a, ok
}
