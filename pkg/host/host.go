// Package host defines the abstract command surface of the embedding
// application. The toolkit never talks to the application directly; it builds
// invocations and sends them through a Host implementation bound once at
// startup (and swapped for a fake in tests).
package host

import (
	"errors"
	"strings"
)

// Flags is a set of named flag values for edit, query, and window calls.
type Flags map[string]any

// Callback is the signature the host uses to invoke UI callbacks. The host
// may pass positional arguments of its own; callers that do not care about
// them should be adapted with Thunk.
type Callback func(args ...any)

// Thunk adapts a zero-argument user callback to the host's callback
// convention, discarding whatever arguments the host supplies.
func Thunk(fn func()) Callback {
	return func(args ...any) { fn() }
}

// EventHandle identifies an active host event subscription.
type EventHandle int64

// Invocation describes a single control-creation command.
type Invocation struct {
	// Type is the host command selecting the control kind (e.g., "button").
	Type string
	// Parent is the name of the parent control, or empty for top-level.
	Parent string
	// Flags is the raw creation-flag text, passed through to the host verbatim.
	Flags string
	// Name uniquely identifies the control in the host's namespace.
	Name string
}

// String renders the exact single-line command this invocation sends to the
// host. It is embedded in error reports so a rejected creation can be
// diagnosed from the failing command alone.
func (inv Invocation) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, inv.Type)
	if inv.Parent != "" {
		parts = append(parts, "-p "+inv.Parent)
	}
	if inv.Flags != "" {
		parts = append(parts, inv.Flags)
	}
	parts = append(parts, inv.Name)
	return strings.Join(parts, " ") + ";"
}

// Host is the control-creation surface of the embedding application.
type Host interface {
	// CreateControl realizes one control. It fails on a name collision in the
	// host namespace, an unknown control type, or invalid flags.
	CreateControl(inv Invocation) error

	// EditControl applies the given flags to a named control and returns
	// whatever value the host reports for the edit.
	EditControl(controlType, name string, flags Flags) (any, error)

	// QueryControl returns the current value of a single flag on a control.
	QueryControl(controlType, name, flag string) (any, error)

	// DeleteControl deletes a control and, per host semantics, all of its
	// descendants.
	DeleteControl(name string) error
}

// WindowHost is the window-lifecycle surface of the embedding application.
// Host implementations that manage windows also implement this interface.
type WindowHost interface {
	// CreateWindow creates a named window. If the name already exists the
	// host either fails or replaces it, per its own semantics.
	CreateWindow(name string, flags Flags) error

	// ShowWindow opens a previously created window.
	ShowWindow(name string) error

	// WindowExists reports whether a window with the given name exists.
	WindowExists(name string) (bool, error)

	// WindowPrefExists reports whether the host has remembered preferences
	// (position, size) for the named window.
	WindowPrefExists(name string) (bool, error)

	// QueryWindowPref returns a single remembered preference value.
	QueryWindowPref(name, flag string) (any, error)

	// EditWindowPref rewrites the remembered preferences for a window.
	EditWindowPref(name string, flags Flags) error
}

// EventHost is the event surface of the embedding application.
type EventHost interface {
	// AttachEvent registers a callback to run whenever the host fires the
	// named event. The returned handle releases the subscription.
	AttachEvent(event string, cb Callback) (EventHandle, error)

	// DetachEvent releases an event subscription.
	DetachEvent(h EventHandle) error

	// OnUIDeleted registers a callback to run once when the named UI element
	// is deleted. The subscription is released by the host after it fires.
	OnUIDeleted(name string, cb Callback) error
}

// Sentinel errors for host binding and capability lookup.
var (
	// ErrHostUnavailable is returned when no host has been bound.
	ErrHostUnavailable = errors.New("host: no host bound")

	// ErrWindowUnsupported is returned when the bound host does not manage windows.
	ErrWindowUnsupported = errors.New("host: bound host does not support windows")

	// ErrEventUnsupported is returned when the bound host does not fire events.
	ErrEventUnsupported = errors.New("host: bound host does not support events")
)
