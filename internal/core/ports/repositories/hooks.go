package repositories

import "context"

// HookEvent names a point in a record's persistence lifecycle.
type HookEvent string

const (
	// BeforeCreate runs before a new record is inserted.
	BeforeCreate HookEvent = "before_create"
	// BeforeUpdate runs before an existing record is updated.
	BeforeUpdate HookEvent = "before_update"
)

// HookFunc is invoked synchronously with the record about to be written.
// Returning an error aborts the write.
type HookFunc func(ctx context.Context, record any) error

// HookRegistry is the persistence layer's extension point for lifecycle hooks.
// Registering a name that already exists for an event replaces the earlier hook.
type HookRegistry interface {
	RegisterHook(event HookEvent, name string, fn HookFunc)
}
