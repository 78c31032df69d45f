// Package services holds what the catalog and cart services share: the
// error taxonomy, the notifier contract and the event names.
package services

import (
	"errors"
	"fmt"

	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

// ErrNotFound reports an identifier that does not resolve. It aliases the
// store sentinel so backends and services agree without translation.
var ErrNotFound = store.ErrNotFound

// ValidationError is a client mistake: a missing field or a reference to
// something that does not exist where a 400 is the right answer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFound wraps ErrNotFound with the kind of thing that was missing.
func NotFound(what string) error {
	return fmt.Errorf("%s not found: %w", what, ErrNotFound)
}

// Notifier publishes named events to whoever is listening. It never fails
// the caller.
type Notifier interface {
	Publish(event string)
}

// Events published after a successful mutation.
const (
	EventProductsCreated = "updateProducts"
	EventProductUpdated  = "productUpdated"
	EventProductDeleted  = "productDeleted"
	EventCartUpdated     = "cartUpdated"
)

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Publish(string) {}
