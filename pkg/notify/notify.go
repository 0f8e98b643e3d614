// Package notify provides typed callback registration scoped to a fixed
// whitelist of event names. It is meant to be embedded by state and tool
// types that expose their own events:
//
//	type ToolState struct {
//		*notify.Notifier
//	}
//
//	state := ToolState{Notifier: notify.New("ToolState", "selectionChanged")}
//	state.Register("selectionChanged", refresh)
package notify

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/awforsythe/melgui/pkg/errors"
)

// ErrUnsupportedEvent is returned for any operation naming an event outside
// a Notifier's supported set.
var ErrUnsupportedEvent = stderrors.New("notify: unsupported event")

// callbackEntry pairs a registered callback with its identity key. A
// callback's identity is its function value; distinct closures created from
// the same function literal share an identity and are deduplicated.
type callbackEntry struct {
	key uintptr
	fn  func()
}

// Notifier dispatches callbacks for a fixed set of supported event names.
// The supported set is immutable for the Notifier's lifetime; any operation
// naming an event outside it fails rather than being silently ignored.
type Notifier struct {
	owner     string
	supported map[string]struct{}
	callbacks map[string][]callbackEntry
}

// New initializes a Notifier supporting the given event names. owner names
// the embedding type and appears in unsupported-event errors.
func New(owner string, events ...string) *Notifier {
	supported := make(map[string]struct{}, len(events))
	for _, e := range events {
		supported[e] = struct{}{}
	}
	return &Notifier{
		owner:     owner,
		supported: supported,
		callbacks: make(map[string][]callbackEntry),
	}
}

// Events returns the supported event names in no particular order.
func (n *Notifier) Events() []string {
	out := make([]string, 0, len(n.supported))
	for e := range n.supported {
		out = append(out, e)
	}
	return out
}

// Register appends the given callbacks to the event's list in order.
// Callbacks already registered for that event are skipped, so duplicate
// registration never causes duplicate invocation.
func (n *Notifier) Register(event string, callbacks ...func()) error {
	if err := n.checkSupport(event); err != nil {
		return err
	}
	for _, cb := range callbacks {
		key := callbackKey(cb)
		if n.indexOf(event, key) >= 0 {
			continue
		}
		n.callbacks[event] = append(n.callbacks[event], callbackEntry{key: key, fn: cb})
	}
	return nil
}

// Unregister removes the given callbacks from the event's list. Callbacks
// that were never registered are a no-op.
func (n *Notifier) Unregister(event string, callbacks ...func()) error {
	if err := n.checkSupport(event); err != nil {
		return err
	}
	for _, cb := range callbacks {
		if i := n.indexOf(event, callbackKey(cb)); i >= 0 {
			list := n.callbacks[event]
			n.callbacks[event] = append(list[:i], list[i+1:]...)
		}
	}
	return nil
}

// Notify invokes every callback registered for the event in registration
// order, ignoring return values. Callbacks may re-enter the Notifier; the
// invocation list is snapshotted before firing, so registrations made during
// a notification take effect on the next one.
func (n *Notifier) Notify(event string) error {
	if err := n.checkSupport(event); err != nil {
		return err
	}
	snapshot := make([]callbackEntry, len(n.callbacks[event]))
	copy(snapshot, n.callbacks[event])
	for _, entry := range snapshot {
		entry.fn()
	}
	return nil
}

// checkSupport fails with an unsupported-event error identifying the owner
// and the event name if the event is not in the supported set.
func (n *Notifier) checkSupport(event string) error {
	if _, ok := n.supported[event]; !ok {
		return &errors.Error{
			Op:   "notify.Notifier",
			Kind: errors.KindEvent,
			Err:  fmt.Errorf("%w: %s does not support an event named %q", ErrUnsupportedEvent, n.owner, event),
		}
	}
	return nil
}

// indexOf returns the position of a callback key in an event's list, or -1.
func (n *Notifier) indexOf(event string, key uintptr) int {
	for i, entry := range n.callbacks[event] {
		if entry.key == key {
			return i
		}
	}
	return -1
}

// callbackKey derives a callback's identity from its function value.
func callbackKey(fn func()) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
