package host

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor describes one control-type tag understood by the host.
type Descriptor struct {
	// Type is the command tag selecting the control kind.
	Type string
	// Container reports whether controls of this type may parent children.
	Container bool
}

// commandRegistry is a local, advisory table of known control types. The host
// owns the real vocabulary; this table exists so tooling can lint
// declarations without a live host, and so embedders can register custom
// control types alongside the standard set.
type commandRegistry struct {
	descriptors map[string]Descriptor
	mu          sync.RWMutex
}

var registry = &commandRegistry{
	descriptors: make(map[string]Descriptor),
}

// Register adds or replaces a control-type descriptor.
func Register(d Descriptor) {
	registry.mu.Lock()
	registry.descriptors[d.Type] = d
	registry.mu.Unlock()
}

// Lookup returns the descriptor for a control-type tag.
func Lookup(controlType string) (Descriptor, bool) {
	registry.mu.RLock()
	d, ok := registry.descriptors[controlType]
	registry.mu.RUnlock()
	return d, ok
}

// Types returns all registered control-type tags in sorted order.
func Types() []string {
	registry.mu.RLock()
	types := make([]string, 0, len(registry.descriptors))
	for t := range registry.descriptors {
		types = append(types, t)
	}
	registry.mu.RUnlock()
	sort.Strings(types)
	return types
}

// MustRegister is like Register but panics on an empty type tag. It exists
// for package-level registration of descriptor tables.
func MustRegister(d Descriptor) {
	if d.Type == "" {
		panic(fmt.Sprintf("host: descriptor with empty type tag: %+v", d))
	}
	Register(d)
}

func init() {
	// The standard control vocabulary. Layouts parent children; leaf controls
	// do not (optionMenu is a container for its menu items).
	containers := []string{
		"columnLayout", "rowLayout", "formLayout", "frameLayout",
		"gridLayout", "rowColumnLayout", "scrollLayout", "tabLayout",
		"paneLayout", "shelfLayout", "menuBarLayout", "optionMenu",
	}
	leaves := []string{
		"button", "symbolButton", "iconTextButton", "text", "separator",
		"image", "canvas", "progressBar", "textField", "textFieldGrp",
		"textFieldButtonGrp", "scrollField", "intField", "floatField",
		"intSlider", "floatSlider", "intSliderGrp", "floatSliderGrp",
		"attrFieldSliderGrp", "colorSliderGrp", "checkBox", "checkBoxGrp",
		"radioButton", "radioButtonGrp", "radioCollection", "menuItem",
		"textScrollList",
	}
	for _, t := range containers {
		MustRegister(Descriptor{Type: t, Container: true})
	}
	for _, t := range leaves {
		MustRegister(Descriptor{Type: t})
	}
}
