// Package gui provides the deferred control runtime: a Control wraps one UI
// element's declaration and realizes it against the bound host on demand, and
// a Gui owns an ordered, name-indexed collection of Controls built either
// directly or from declaration text.
package gui

import (
	"strings"

	"github.com/awforsythe/melgui/pkg/decl"
	"github.com/awforsythe/melgui/pkg/errors"
	"github.com/awforsythe/melgui/pkg/host"
)

// Control represents a single UI control contained within a Gui. It is
// constructed purely from declared data; Create is the only host-mutating
// operation.
type Control struct {
	name          string
	controlType   string
	creationFlags string
	parent        string
}

// NewControl initializes a control declaration. creationFlags is the raw flag
// text used to create the control, excluding the command, the name, and any
// -p/-parent flag. parent is the name of the control's parent, or empty for a
// top-level control.
func NewControl(name, controlType, creationFlags, parent string) *Control {
	return &Control{
		name:          name,
		controlType:   controlType,
		creationFlags: creationFlags,
		parent:        parent,
	}
}

// FromDecl builds a Control from a parsed declaration.
func FromDecl(d decl.Decl) *Control {
	return NewControl(d.Name, d.Type, d.Flags, d.Parent)
}

// Name returns the control's unique name.
func (c *Control) Name() string { return c.name }

// Type returns the host command tag selecting the control kind.
func (c *Control) Type() string { return c.controlType }

// CreationFlags returns the raw creation-flag text.
func (c *Control) CreationFlags() string { return c.creationFlags }

// Parent returns the name of the control's parent, or empty for top-level.
func (c *Control) Parent() string { return c.parent }

// Decl returns the control's declaration form, suitable for decl.Format.
func (c *Control) Decl() decl.Decl {
	return decl.Decl{Name: c.name, Type: c.controlType, Flags: c.creationFlags, Parent: c.parent}
}

// Create realizes the control in the host. A host-side failure is reported
// together with the exact invocation attempted, then returned; creation is
// never retried.
func (c *Control) Create() error {
	h, err := host.Current()
	if err != nil {
		return err
	}
	inv := host.Invocation{
		Type:   c.controlType,
		Parent: c.parent,
		Flags:  c.creationFlags,
		Name:   c.name,
	}
	if err := h.CreateControl(inv); err != nil {
		cerr := &errors.Error{
			Op:      "gui.Control.Create",
			Kind:    errors.KindHost,
			Command: inv.String(),
			Err:     err,
		}
		errors.Report(cerr)
		return cerr
	}
	return nil
}

// Edit applies new flag values to the control. Any zero-argument function
// assigned to a command flag is thunked so the host's invocation convention
// (which may pass host-internal positional arguments) collapses to a plain
// call of the user's callback.
func (c *Control) Edit(flags host.Flags) error {
	h, err := host.Current()
	if err != nil {
		return err
	}
	if _, err := h.EditControl(c.controlType, c.name, thunkCommands(flags)); err != nil {
		return &errors.Error{Op: "gui.Control.Edit", Kind: errors.KindHost, Err: err}
	}
	return nil
}

// Query returns the current value of the given flag as reported by the host.
func (c *Control) Query(flag string) (any, error) {
	h, err := host.Current()
	if err != nil {
		return nil, err
	}
	value, err := h.QueryControl(c.controlType, c.name, flag)
	if err != nil {
		return nil, &errors.Error{Op: "gui.Control.Query", Kind: errors.KindHost, Err: err}
	}
	return value, nil
}

// Delete removes the control and all of its children from the host.
func (c *Control) Delete() error {
	h, err := host.Current()
	if err != nil {
		return err
	}
	if err := h.DeleteControl(c.name); err != nil {
		return &errors.Error{Op: "gui.Control.Delete", Kind: errors.KindHost, Err: err}
	}
	return nil
}

// thunkCommands returns a copy of flags with every zero-argument function on
// a command flag wrapped to discard host-supplied arguments. A flag carries a
// callback if its name contains "command", case-insensitively.
func thunkCommands(flags host.Flags) host.Flags {
	out := make(host.Flags, len(flags))
	for flag, value := range flags {
		if fn, ok := value.(func()); ok && strings.Contains(strings.ToLower(flag), "command") {
			out[flag] = host.Thunk(fn)
			continue
		}
		out[flag] = value
	}
	return out
}
