// Package errors provides structured error handling for the melgui toolkit.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindParse indicates a malformed declaration.
	KindParse
	// KindName indicates a control-name collision or an unknown control reference.
	KindName
	// KindEvent indicates an unsupported event name.
	KindEvent
	// KindHost indicates a rejected host invocation.
	KindHost
	// KindInternal indicates a violated internal invariant.
	KindInternal
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindName:
		return "name"
	case KindEvent:
		return "event"
	case KindHost:
		return "host"
	case KindInternal:
		return "internal"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the melgui toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "gui.Control.Create").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Command is the exact host invocation attempted, if applicable.
	Command string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s [%s] command=%q: %v", e.Op, e.Kind, e.Command, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "notify.Notifier.Notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
