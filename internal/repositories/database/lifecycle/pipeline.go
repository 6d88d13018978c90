// Package lifecycle implements the hook pipeline the SQL repositories run
// before every insert and update.
package lifecycle

import (
	"context"
	"fmt"
	"slices"
	"sync"

	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
)

type namedHook struct {
	name string
	fn   portsrepo.HookFunc
}

// Pipeline holds named hooks per lifecycle event. The zero value is not usable, use New.
// A nil *Pipeline runs no hooks.
type Pipeline struct {
	mu    sync.RWMutex
	hooks map[portsrepo.HookEvent][]namedHook
}

// New returns an empty pipeline.
func New() *Pipeline {
	return &Pipeline{hooks: make(map[portsrepo.HookEvent][]namedHook)}
}

var _ portsrepo.HookRegistry = (*Pipeline)(nil)

// RegisterHook appends fn under name for event. A hook already registered
// under the same name for that event is replaced in place.
// The stored slice is never mutated, so a Run in progress keeps its snapshot.
func (p *Pipeline) RegisterHook(event portsrepo.HookEvent, name string, fn portsrepo.HookFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hooks := slices.Clone(p.hooks[event])
	for i := range hooks {
		if hooks[i].name == name {
			hooks[i].fn = fn
			p.hooks[event] = hooks
			return
		}
	}
	p.hooks[event] = append(hooks, namedHook{name: name, fn: fn})
}

// Run invokes the hooks registered for event in registration order.
// The first failing hook stops the run.
func (p *Pipeline) Run(ctx context.Context, event portsrepo.HookEvent, record any) error {
	if p == nil {
		return nil
	}

	p.mu.RLock()
	hooks := p.hooks[event]
	p.mu.RUnlock()

	for _, h := range hooks {
		if err := h.fn(ctx, record); err != nil {
			return fmt.Errorf("%s hook %q failed: %w", event, h.name, err)
		}
	}
	return nil
}

// Names lists the hooks registered for event in execution order.
func (p *Pipeline) Names(event portsrepo.HookEvent) []string {
	if p == nil {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.hooks[event]))
	for _, h := range p.hooks[event] {
		names = append(names, h.name)
	}
	return names
}
