package service

import (
	"errors"
	"fmt"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// NotFoundError is the single absence signal callers see, whatever the
// store reported.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// ConflictError reports a slug already held by another entity of the
// same type. The write is rejected; nothing is overwritten.
type ConflictError struct {
	Entity string
	Slug   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s slug %q already taken", e.Entity, e.Slug)
}

// ValidationError reports a field value outside its documented domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a notification transport failure. The enclosing
// update is aborted; already-sent calls are not rolled back.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("notification transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// entityErr maps store sentinels to the typed taxonomy.
func entityErr(err error, entity, key, slug string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return &NotFoundError{Entity: entity, Key: key}
	case errors.Is(err, store.ErrSlugTaken):
		return &ConflictError{Entity: entity, Slug: slug}
	default:
		return err
	}
}
