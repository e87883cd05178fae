package session

import (
	"errors"
	"fmt"

	"github.com/saptools/sapgui-cli/internal/model"
)

// ErrNoCompatibleControl is the terminal error when every capability probe
// in an ordered fallback has been exhausted for a field name.
var ErrNoCompatibleControl = errors.New("no compatible control found")

// NotFoundError reports a strict resolution miss.
type NotFoundError struct {
	Query string // address, or "name/prefix" for semantic lookups
	Err   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element not found: %s", e.Query)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TypeMismatchError reports an accessor invoked on an incompatible capability.
type TypeMismatchError struct {
	Address string
	Kind    model.Kind
	Op      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s not supported on %s control", e.Address, e.Op, e.Kind)
}

// StaleAddressError reports use of a control resolved before the last
// navigating operation. The screen has been redrawn since; the address may
// now point at nothing, or worse, at an unrelated control.
type StaleAddressError struct {
	Address  string
	Resolved uint64
	Current  uint64
}

func (e *StaleAddressError) Error() string {
	return fmt.Sprintf("stale address %s: resolved at generation %d, session is at %d; re-resolve after navigation",
		e.Address, e.Resolved, e.Current)
}
