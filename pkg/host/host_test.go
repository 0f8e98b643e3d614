package host

import (
	"errors"
	"testing"
)

func TestInvocationString(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		want string
	}{
		{
			name: "full",
			inv:  Invocation{Type: "button", Parent: "root", Flags: `-label "OK"`, Name: "btn1"},
			want: `button -p root -label "OK" btn1;`,
		},
		{
			name: "no parent",
			inv:  Invocation{Type: "button", Flags: `-label "OK"`, Name: "btn1"},
			want: `button -label "OK" btn1;`,
		},
		{
			name: "no flags",
			inv:  Invocation{Type: "columnLayout", Parent: "win", Name: "col"},
			want: "columnLayout -p win col;",
		},
		{
			name: "bare",
			inv:  Invocation{Type: "separator", Name: "sep"},
			want: "separator sep;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.String(); got != tt.want {
				t.Errorf("Invocation.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThunkDiscardsHostArgs(t *testing.T) {
	called := 0
	cb := Thunk(func() { called++ })
	cb("hostArg1", 2, false)
	cb()
	if called != 2 {
		t.Errorf("thunked callback ran %d times, want 2", called)
	}
}

func TestCurrentUnbound(t *testing.T) {
	Set(nil)
	if _, err := Current(); !errors.Is(err, ErrHostUnavailable) {
		t.Errorf("Current() with no host bound = %v, want ErrHostUnavailable", err)
	}
}

// controlOnlyHost implements Host but not WindowHost or EventHost.
type controlOnlyHost struct{}

func (controlOnlyHost) CreateControl(Invocation) error { return nil }
func (controlOnlyHost) EditControl(string, string, Flags) (any, error) {
	return nil, nil
}
func (controlOnlyHost) QueryControl(string, string, string) (any, error) {
	return nil, nil
}
func (controlOnlyHost) DeleteControl(string) error { return nil }

func TestCapabilityLookup(t *testing.T) {
	Set(controlOnlyHost{})
	defer Set(nil)

	if _, err := Current(); err != nil {
		t.Fatalf("Current() = %v, want nil", err)
	}
	if _, err := CurrentWindowHost(); !errors.Is(err, ErrWindowUnsupported) {
		t.Errorf("CurrentWindowHost() = %v, want ErrWindowUnsupported", err)
	}
	if _, err := CurrentEventHost(); !errors.Is(err, ErrEventUnsupported) {
		t.Errorf("CurrentEventHost() = %v, want ErrEventUnsupported", err)
	}
}

func TestRegistryStandardVocabulary(t *testing.T) {
	tests := []struct {
		controlType string
		container   bool
	}{
		{"rowLayout", true},
		{"columnLayout", true},
		{"optionMenu", true},
		{"button", false},
		{"textField", false},
		{"checkBox", false},
	}
	for _, tt := range tests {
		d, ok := Lookup(tt.controlType)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.controlType)
			continue
		}
		if d.Container != tt.container {
			t.Errorf("Lookup(%q).Container = %v, want %v", tt.controlType, d.Container, tt.container)
		}
	}
}

func TestRegisterCustomType(t *testing.T) {
	Register(Descriptor{Type: "nodeOutliner", Container: false})
	if _, ok := Lookup("nodeOutliner"); !ok {
		t.Error("custom descriptor not found after Register")
	}
}

func TestTypesSorted(t *testing.T) {
	types := Types()
	if len(types) == 0 {
		t.Fatal("expected a non-empty standard vocabulary")
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("Types() not sorted at %d: %q >= %q", i, types[i-1], types[i])
		}
	}
}
