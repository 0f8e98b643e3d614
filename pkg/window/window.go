// Package window wraps the host's window lifecycle for GUI-based tools: it
// encapsulates the boilerplate of replacing a stale window of the same name,
// resetting remembered size preferences, and attaching host event callbacks
// that are released automatically when the window is destroyed.
package window

import (
	"github.com/awforsythe/melgui/pkg/errors"
	"github.com/awforsythe/melgui/pkg/host"
)

// Options configures window creation.
type Options struct {
	// Title is the user-facing name shown in the window's titlebar.
	Title string
	// Width and Height are the initial window dimensions.
	Width  int
	Height int
	// RememberWidth and RememberHeight control whether a stored dimension
	// survives from the previous session. A false value resets the stored
	// dimension to the initial one each time the window is opened. Tools
	// commonly remember width but reset height.
	RememberWidth  bool
	RememberHeight bool
	// Flags holds any additional flags to pass to the host's window command.
	Flags host.Flags
}

// Window represents the window for a GUI-based tool. Controls created after
// the window become part of it; call Show to open it.
type Window struct {
	name string
}

// New creates a window with the given internal name. A pre-existing window of
// the same name is deleted first. If the host has remembered preferences for
// the name, the stored width and height are reset to the initial values
// except where the remember options keep them.
func New(name string, opts Options) (*Window, error) {
	wh, err := host.CurrentWindowHost()
	if err != nil {
		return nil, err
	}

	exists, err := wh.WindowExists(name)
	if err != nil {
		return nil, hostErr("window.New", err)
	}
	if exists {
		h, err := host.Current()
		if err != nil {
			return nil, err
		}
		if err := h.DeleteControl(name); err != nil {
			return nil, hostErr("window.New", err)
		}
	}

	if err := resetPrefs(wh, name, opts); err != nil {
		return nil, err
	}

	flags := make(host.Flags, len(opts.Flags)+5)
	for flag, value := range opts.Flags {
		flags[flag] = value
	}
	flags["title"] = opts.Title
	flags["width"] = opts.Width
	flags["height"] = opts.Height

	// Override the host defaults unless the caller said otherwise.
	for _, flag := range []string{"toolbox", "resizeToFitChildren"} {
		if _, ok := flags[flag]; !ok {
			flags[flag] = true
		}
	}

	if err := wh.CreateWindow(name, flags); err != nil {
		return nil, hostErr("window.New", err)
	}
	return &Window{name: name}, nil
}

// resetPrefs rewrites the window's remembered preferences, keeping the edge
// positions and keeping each stored dimension only where requested.
func resetPrefs(wh host.WindowHost, name string, opts Options) error {
	prefExists, err := wh.WindowPrefExists(name)
	if err != nil {
		return hostErr("window.New", err)
	}
	if !prefExists {
		return nil
	}

	get := func(flag string) (any, error) {
		v, err := wh.QueryWindowPref(name, flag)
		if err != nil {
			return nil, hostErr("window.New", err)
		}
		return v, nil
	}

	prefs := make(host.Flags, 4)
	for _, flag := range []string{"leftEdge", "topEdge"} {
		v, err := get(flag)
		if err != nil {
			return err
		}
		prefs[flag] = v
	}

	if opts.RememberWidth {
		v, err := get("width")
		if err != nil {
			return err
		}
		prefs["width"] = v
	} else {
		prefs["width"] = opts.Width
	}
	if opts.RememberHeight {
		v, err := get("height")
		if err != nil {
			return err
		}
		prefs["height"] = v
	} else {
		prefs["height"] = opts.Height
	}

	if err := wh.EditWindowPref(name, prefs); err != nil {
		return hostErr("window.New", err)
	}
	return nil
}

// Name returns the window's internal name.
func (w *Window) Name() string { return w.name }

// Show opens the window.
func (w *Window) Show() error {
	wh, err := host.CurrentWindowHost()
	if err != nil {
		return err
	}
	if err := wh.ShowWindow(w.name); err != nil {
		return hostErr("window.Show", err)
	}
	return nil
}

// Delete removes the window and everything in it.
func (w *Window) Delete() error {
	h, err := host.Current()
	if err != nil {
		return err
	}
	if err := h.DeleteControl(w.name); err != nil {
		return hostErr("window.Delete", err)
	}
	return nil
}

// AttachCallback runs the callback whenever the host fires the named event.
// The subscription is released automatically when the window is deleted.
func (w *Window) AttachCallback(event string, cb func()) error {
	eh, err := host.CurrentEventHost()
	if err != nil {
		return err
	}

	handle, err := eh.AttachEvent(event, host.Thunk(cb))
	if err != nil {
		return hostErr("window.AttachCallback", err)
	}

	detach := func(args ...any) {
		if err := eh.DetachEvent(handle); err != nil {
			errors.Report(&errors.Error{
				Op:   "window.AttachCallback",
				Kind: errors.KindHost,
				Err:  err,
			})
		}
	}
	if err := eh.OnUIDeleted(w.name, detach); err != nil {
		return hostErr("window.AttachCallback", err)
	}
	return nil
}

func hostErr(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindHost, Err: err}
}
