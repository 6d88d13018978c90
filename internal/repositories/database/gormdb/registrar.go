package gormdb

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"gorm.io/gorm"
)

// Registrar exposes gorm's callback chain as a HookRegistry. Hooks run
// right before gorm builds the INSERT or UPDATE statement.
type Registrar struct {
	db     *gorm.DB
	logger *slog.Logger
	errs   []error
}

// NewRegistrar wraps db. Callbacks are shared by every session derived from db.
func NewRegistrar(db *gorm.DB, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{db: db, logger: logger}
}

var _ portsrepo.HookRegistry = (*Registrar)(nil)

// RegisterHook registers fn as a gorm callback named name. A callback
// already registered under name is replaced instead of duplicated.
func (r *Registrar) RegisterHook(event portsrepo.HookEvent, name string, fn portsrepo.HookFunc) {
	handler := callbackFor(name, fn)

	var err error
	switch event {
	case portsrepo.BeforeCreate:
		create := r.db.Callback().Create()
		if create.Get(name) != nil {
			err = create.Replace(name, handler)
		} else {
			err = create.Before("gorm:create").Register(name, handler)
		}
	case portsrepo.BeforeUpdate:
		update := r.db.Callback().Update()
		if update.Get(name) != nil {
			err = update.Replace(name, handler)
		} else {
			err = update.Before("gorm:update").Register(name, handler)
		}
	default:
		err = fmt.Errorf("unsupported lifecycle event %q", event)
	}

	if err != nil {
		r.logger.Error("Failed to register gorm callback",
			slog.String("event", string(event)), slog.String("hook", name), slog.String("error", err.Error()))
		r.errs = append(r.errs, fmt.Errorf("register %s hook %q: %w", event, name, err))
	}
}

// Err reports every callback that could not be registered. Callers check it
// after enabling auditing; a nil result means all hooks are in place.
func (r *Registrar) Err() error {
	return errors.Join(r.errs...)
}

func callbackFor(name string, fn portsrepo.HookFunc) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Schema == nil {
			return
		}
		ctx := tx.Statement.Context
		eachRecord(tx.Statement.ReflectValue, func(record any) {
			if err := fn(ctx, record); err != nil {
				_ = tx.AddError(fmt.Errorf("hook %q failed: %w", name, err))
			}
		})
	}
}

// eachRecord calls fn with a pointer to every addressable struct in rv,
// which is a struct for single-row writes and a slice for batches.
func eachRecord(rv reflect.Value, fn func(any)) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if elem.Kind() == reflect.Ptr {
				if !elem.IsNil() {
					fn(elem.Interface())
				}
				continue
			}
			if elem.CanAddr() {
				fn(elem.Addr().Interface())
			}
		}
	case reflect.Struct:
		if rv.CanAddr() {
			fn(rv.Addr().Interface())
		}
	}
}
