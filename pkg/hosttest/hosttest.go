// Package hosttest provides an in-memory fake of the application command
// surface for tests and dry runs. The fake records every invocation, tracks
// live controls with their parent links, and lets tests fire host events and
// inject per-control creation failures.
package hosttest

import (
	"fmt"
	"sync"

	"github.com/awforsythe/melgui/pkg/host"
)

// ControlState is the fake's record of one live control.
type ControlState struct {
	// Type is the control-type tag the control was created with.
	Type string
	// Parent is the parent control name, or empty for top-level.
	Parent string
	// CreationFlags is the raw flag text from the creation invocation.
	CreationFlags string
	// Values holds flag values applied by edits (or seeded by tests).
	Values host.Flags
	// Edits records every edit batch applied to the control, in order.
	Edits []host.Flags
}

type subscription struct {
	event string
	cb    host.Callback
}

// Host is a fake implementing host.Host, host.WindowHost, and host.EventHost.
// The zero value is not usable; construct with New.
type Host struct {
	// Invocations records every creation attempted, in order, including ones
	// that failed.
	Invocations []host.Invocation

	// FailCreate injects a creation failure for the named control.
	FailCreate map[string]error

	mu       sync.Mutex
	controls map[string]*ControlState
	order    []string
	windows  map[string]host.Flags
	shown    map[string]bool
	prefs    map[string]host.Flags

	subs       map[host.EventHandle]subscription
	nextHandle host.EventHandle
	uiDeleted  map[string][]host.Callback
}

// New constructs an empty fake host.
func New() *Host {
	return &Host{
		FailCreate: make(map[string]error),
		controls:   make(map[string]*ControlState),
		windows:    make(map[string]host.Flags),
		shown:      make(map[string]bool),
		prefs:      make(map[string]host.Flags),
		subs:       make(map[host.EventHandle]subscription),
		uiDeleted:  make(map[string][]host.Callback),
	}
}

// Install constructs a fake host, binds it globally, and registers an unbind
// with the provided cleanup registrar:
//
//	h := hosttest.Install(t.Cleanup)
func Install(cleanup func(func())) *Host {
	h := New()
	host.Set(h)
	cleanup(func() { host.Set(nil) })
	return h
}

// CreateControl records the invocation and registers the control. It fails on
// an injected error, a name collision, or an unknown parent, like the real
// host would.
func (h *Host) CreateControl(inv host.Invocation) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Invocations = append(h.Invocations, inv)

	if err := h.FailCreate[inv.Name]; err != nil {
		return err
	}
	if _, exists := h.controls[inv.Name]; exists {
		return fmt.Errorf("hosttest: control %q already exists", inv.Name)
	}
	if inv.Parent != "" {
		if _, ok := h.controls[inv.Parent]; !ok {
			if _, ok := h.windows[inv.Parent]; !ok {
				return fmt.Errorf("hosttest: unknown parent %q", inv.Parent)
			}
		}
	}

	h.controls[inv.Name] = &ControlState{
		Type:          inv.Type,
		Parent:        inv.Parent,
		CreationFlags: inv.Flags,
		Values:        make(host.Flags),
	}
	h.order = append(h.order, inv.Name)
	return nil
}

// EditControl merges the given flags into the named control's values and
// records the edit batch.
func (h *Host) EditControl(controlType, name string, flags host.Flags) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.controls[name]
	if !ok {
		return nil, fmt.Errorf("hosttest: unknown control %q", name)
	}
	applied := make(host.Flags, len(flags))
	for flag, value := range flags {
		c.Values[flag] = value
		applied[flag] = value
	}
	c.Edits = append(c.Edits, applied)
	return name, nil
}

// QueryControl returns the named control's current value for a flag.
func (h *Host) QueryControl(controlType, name, flag string) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.controls[name]
	if !ok {
		return nil, fmt.Errorf("hosttest: unknown control %q", name)
	}
	return c.Values[flag], nil
}

// DeleteControl deletes a control or window and all of its descendants, then
// fires any ui-deleted hooks for the removed names.
func (h *Host) DeleteControl(name string) error {
	h.mu.Lock()

	_, isControl := h.controls[name]
	_, isWindow := h.windows[name]
	if !isControl && !isWindow {
		h.mu.Unlock()
		return fmt.Errorf("hosttest: unknown control %q", name)
	}

	removed := []string{name}
	delete(h.controls, name)
	delete(h.windows, name)
	delete(h.shown, name)

	// Walk until no control still parented to a removed name remains.
	for {
		var next string
		for candidate, state := range h.controls {
			for _, gone := range removed {
				if state.Parent == gone {
					next = candidate
					break
				}
			}
			if next != "" {
				break
			}
		}
		if next == "" {
			break
		}
		delete(h.controls, next)
		removed = append(removed, next)
	}

	remaining := h.order[:0]
	for _, n := range h.order {
		if _, alive := h.controls[n]; alive {
			remaining = append(remaining, n)
		}
	}
	h.order = remaining

	var hooks []host.Callback
	for _, gone := range removed {
		hooks = append(hooks, h.uiDeleted[gone]...)
		delete(h.uiDeleted, gone)
	}
	h.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	return nil
}

// CreateWindow registers a window, replacing any window of the same name.
func (h *Host) CreateWindow(name string, flags host.Flags) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	copied := make(host.Flags, len(flags))
	for flag, value := range flags {
		copied[flag] = value
	}
	h.windows[name] = copied
	return nil
}

// ShowWindow marks a window as shown.
func (h *Host) ShowWindow(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.windows[name]; !ok {
		return fmt.Errorf("hosttest: unknown window %q", name)
	}
	h.shown[name] = true
	return nil
}

// WindowExists reports whether the named window is live.
func (h *Host) WindowExists(name string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.windows[name]
	return ok, nil
}

// WindowPrefExists reports whether preferences are stored for the window.
func (h *Host) WindowPrefExists(name string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.prefs[name]
	return ok, nil
}

// QueryWindowPref returns one stored preference value.
func (h *Host) QueryWindowPref(name, flag string) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.prefs[name]
	if !ok {
		return nil, fmt.Errorf("hosttest: no preferences for window %q", name)
	}
	return p[flag], nil
}

// EditWindowPref rewrites stored preference values for the window.
func (h *Host) EditWindowPref(name string, flags host.Flags) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.prefs[name]
	if !ok {
		p = make(host.Flags)
		h.prefs[name] = p
	}
	for flag, value := range flags {
		p[flag] = value
	}
	return nil
}

// SeedWindowPref stores preference values directly, simulating a window the
// host has remembered from an earlier session.
func (h *Host) SeedWindowPref(name string, flags host.Flags) {
	h.mu.Lock()
	defer h.mu.Unlock()

	copied := make(host.Flags, len(flags))
	for flag, value := range flags {
		copied[flag] = value
	}
	h.prefs[name] = copied
}

// AttachEvent registers a callback for a named host event.
func (h *Host) AttachEvent(event string, cb host.Callback) (host.EventHandle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextHandle++
	handle := h.nextHandle
	h.subs[handle] = subscription{event: event, cb: cb}
	return handle, nil
}

// DetachEvent releases an event subscription.
func (h *Host) DetachEvent(handle host.EventHandle) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[handle]; !ok {
		return fmt.Errorf("hosttest: unknown event handle %d", handle)
	}
	delete(h.subs, handle)
	return nil
}

// OnUIDeleted registers a hook fired once when the named UI element is
// deleted.
func (h *Host) OnUIDeleted(name string, cb host.Callback) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.uiDeleted[name] = append(h.uiDeleted[name], cb)
	return nil
}

// Fire invokes every callback attached to the named event, passing the given
// host-style positional arguments. It returns the number of callbacks run.
func (h *Host) Fire(event string, args ...any) int {
	h.mu.Lock()
	var cbs []host.Callback
	for _, sub := range h.subs {
		if sub.event == event {
			cbs = append(cbs, sub.cb)
		}
	}
	h.mu.Unlock()

	for _, cb := range cbs {
		cb(args...)
	}
	return len(cbs)
}

// Window returns a copy of the flags the named window was created with.
func (h *Host) Window(name string) (host.Flags, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	flags, ok := h.windows[name]
	if !ok {
		return nil, false
	}
	out := make(host.Flags, len(flags))
	for flag, value := range flags {
		out[flag] = value
	}
	return out, true
}

// Exists reports whether the named control is live.
func (h *Host) Exists(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.controls[name]
	return ok
}

// Control returns the fake's record of a live control.
func (h *Host) Control(name string) (*ControlState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[name]
	return c, ok
}

// CreatedNames returns the names of live controls in creation order.
func (h *Host) CreatedNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Shown reports whether ShowWindow was called for the named window.
func (h *Host) Shown(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shown[name]
}

// Subscriptions returns the number of live event subscriptions.
func (h *Host) Subscriptions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
