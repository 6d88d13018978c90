// Package auditing stamps creation and modification times onto auditable
// records by registering lifecycle hooks with the persistence layer.
package auditing

import (
	"context"
	"log/slog"
	"time"

	"github.com/tallmate/trust-circle/internal/core/domain"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
)

// Hook names used for registration. Re-registering under these names
// replaces the earlier hooks, so enabling twice is the same as once.
const (
	CreateHookName = "auditing:timestamps:create"
	UpdateHookName = "auditing:timestamps:update"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// DefaultClock is UTC at microsecond precision, the resolution of a Postgres timestamptz.
func DefaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// StampRecorder observes every record the hooks stamp.
type StampRecorder interface {
	RecordStamp(event string)
}

// Activator wires timestamp auditing into a persistence layer.
type Activator struct {
	clock    Clock
	logger   *slog.Logger
	recorder StampRecorder
}

// Option configures an Activator.
type Option func(*Activator)

// WithClock overrides the clock used for stamping.
func WithClock(clock Clock) Option {
	return func(a *Activator) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithLogger sets the logger used to report activation.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Activator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRecorder reports each stamped record to r.
func WithRecorder(r StampRecorder) Option {
	return func(a *Activator) {
		a.recorder = r
	}
}

// NewActivator creates an Activator using DefaultClock unless overridden.
func NewActivator(opts ...Option) *Activator {
	a := &Activator{
		clock:  DefaultClock,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enable registers the create and update stamping hooks with registry.
func (a *Activator) Enable(registry portsrepo.HookRegistry) {
	registry.RegisterHook(portsrepo.BeforeCreate, CreateHookName, a.stampCreate)
	registry.RegisterHook(portsrepo.BeforeUpdate, UpdateHookName, a.stampUpdate)

	a.logger.Info("Timestamp auditing enabled",
		slog.String("create_hook", CreateHookName),
		slog.String("update_hook", UpdateHookName))
}

// stampCreate sets both timestamps to now. Records that are not auditable are left alone.
func (a *Activator) stampCreate(_ context.Context, record any) error {
	rec, ok := record.(domain.Auditable)
	if !ok {
		return nil
	}
	now := a.clock()
	fields := rec.Audit()
	fields.CreatedAt = now
	fields.UpdatedAt = now
	a.record(portsrepo.BeforeCreate)
	return nil
}

// stampUpdate moves UpdatedAt forward and never touches CreatedAt.
func (a *Activator) stampUpdate(_ context.Context, record any) error {
	rec, ok := record.(domain.Auditable)
	if !ok {
		return nil
	}
	now := a.clock()
	fields := rec.Audit()
	if now.Before(fields.CreatedAt) {
		// clock went backwards relative to the stored creation time
		now = fields.CreatedAt
	}
	fields.UpdatedAt = now
	a.record(portsrepo.BeforeUpdate)
	return nil
}

func (a *Activator) record(event portsrepo.HookEvent) {
	if a.recorder != nil {
		a.recorder.RecordStamp(string(event))
	}
}
