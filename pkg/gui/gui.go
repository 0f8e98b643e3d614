package gui

import (
	stderrors "errors"
	"fmt"

	"github.com/awforsythe/melgui/pkg/decl"
	"github.com/awforsythe/melgui/pkg/errors"
	"github.com/awforsythe/melgui/pkg/host"
)

// Sentinel errors for Gui bookkeeping.
var (
	// ErrDuplicateName is returned when a control's name is already indexed.
	ErrDuplicateName = stderrors.New("gui: duplicate control name")

	// ErrNotFound is returned when looking up a name that was never added.
	ErrNotFound = stderrors.New("gui: control not found")
)

// Gui is an ordered, name-indexed collection of Controls forming one
// declarative unit. The ordered sequence and the name index are always
// consistent: every added control is immediately indexed, and duplicate names
// are rejected.
type Gui struct {
	controls []*Control
	byName   map[string]*Control
}

// New initializes a Gui from the given controls, in order.
func New(controls ...*Control) (*Gui, error) {
	g := &Gui{byName: make(map[string]*Control)}
	for _, c := range controls {
		if err := g.Add(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromString parses declaration text and builds a Gui from it. Parse errors
// and name collisions surface immediately.
func FromString(text string) (*Gui, error) {
	decls, err := decl.Parse(text)
	if err != nil {
		return nil, err
	}
	g := &Gui{byName: make(map[string]*Control)}
	for _, d := range decls {
		if err := g.Add(FromDecl(d)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Add appends a control to the ordered sequence and indexes it by name. A
// control whose name is already indexed is rejected.
func (g *Gui) Add(c *Control) error {
	if _, exists := g.byName[c.Name()]; exists {
		return &errors.Error{
			Op:   "gui.Gui.Add",
			Kind: errors.KindName,
			Err:  fmt.Errorf("%w: %q", ErrDuplicateName, c.Name()),
		}
	}
	g.controls = append(g.controls, c)
	g.byName[c.Name()] = c
	return nil
}

// Control returns the control with the given name.
func (g *Gui) Control(name string) (*Control, error) {
	c, ok := g.byName[name]
	if !ok {
		return nil, &errors.Error{
			Op:   "gui.Gui.Control",
			Kind: errors.KindName,
			Err:  fmt.Errorf("%w: %q", ErrNotFound, name),
		}
	}
	return c, nil
}

// Len returns the number of controls in the Gui.
func (g *Gui) Len() int { return len(g.controls) }

// Controls returns the controls in declaration order.
func (g *Gui) Controls() []*Control {
	out := make([]*Control, len(g.controls))
	copy(out, g.controls)
	return out
}

// Decls returns the Gui's declarations in order, suitable for decl.Format.
func (g *Gui) Decls() []decl.Decl {
	out := make([]decl.Decl, len(g.controls))
	for i, c := range g.controls {
		out[i] = c.Decl()
	}
	return out
}

// Create realizes every control in declaration order. Creation is not
// transactional: a failure partway leaves previously-created controls live in
// the host and aborts the remainder.
func (g *Gui) Create() error {
	for _, c := range g.controls {
		if err := c.Create(); err != nil {
			return err
		}
	}
	return nil
}

// Extend absorbs another Gui's controls into this one, then creates only the
// absorbed controls; this Gui's own controls are not re-created.
func (g *Gui) Extend(other *Gui) error {
	for _, c := range other.controls {
		if err := g.Add(c); err != nil {
			return err
		}
	}
	for _, c := range other.controls {
		if err := c.Create(); err != nil {
			return err
		}
	}
	return nil
}

// Edit processes an unordered batch of per-control edits, dispatching each
// flag set to the named control. There is no cross-control ordering
// guarantee; dependent edits must be ordered by the caller.
func (g *Gui) Edit(edits map[string]host.Flags) error {
	for name, flags := range edits {
		c, err := g.Control(name)
		if err != nil {
			return err
		}
		if err := c.Edit(flags); err != nil {
			return err
		}
	}
	return nil
}
