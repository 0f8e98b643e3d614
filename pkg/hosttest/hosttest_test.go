package hosttest

import (
	"errors"
	"testing"

	"github.com/awforsythe/melgui/pkg/host"
)

func create(t *testing.T, h *Host, name, parent string) {
	t.Helper()
	err := h.CreateControl(host.Invocation{Type: "columnLayout", Parent: parent, Name: name})
	if err != nil {
		t.Fatalf("CreateControl(%s): %v", name, err)
	}
}

func TestCreateRejectsCollisionAndUnknownParent(t *testing.T) {
	h := New()
	create(t, h, "a", "")

	if err := h.CreateControl(host.Invocation{Type: "button", Name: "a"}); err == nil {
		t.Error("expected a name-collision error")
	}
	if err := h.CreateControl(host.Invocation{Type: "button", Parent: "ghost", Name: "b"}); err == nil {
		t.Error("expected an unknown-parent error")
	}
}

func TestFailCreateInjection(t *testing.T) {
	h := New()
	injected := errors.New("injected")
	h.FailCreate["bad"] = injected

	err := h.CreateControl(host.Invocation{Type: "button", Name: "bad"})
	if !errors.Is(err, injected) {
		t.Errorf("CreateControl = %v, want injected error", err)
	}
	if len(h.Invocations) != 1 {
		t.Errorf("failed invocation should still be recorded, got %d", len(h.Invocations))
	}
	if h.Exists("bad") {
		t.Error("failed control must not be registered")
	}
}

func TestDeleteCascadesAndFiresHooks(t *testing.T) {
	h := New()
	create(t, h, "root", "")
	create(t, h, "mid", "root")
	create(t, h, "leaf", "mid")
	create(t, h, "other", "")

	hookFired := 0
	if err := h.OnUIDeleted("mid", func(args ...any) { hookFired++ }); err != nil {
		t.Fatalf("OnUIDeleted: %v", err)
	}

	if err := h.DeleteControl("root"); err != nil {
		t.Fatalf("DeleteControl: %v", err)
	}
	for _, name := range []string{"root", "mid", "leaf"} {
		if h.Exists(name) {
			t.Errorf("%q should be gone", name)
		}
	}
	if !h.Exists("other") {
		t.Error("unrelated control should survive")
	}
	if hookFired != 1 {
		t.Errorf("ui-deleted hook fired %d times, want 1", hookFired)
	}
}

func TestFirePassesHostArgs(t *testing.T) {
	h := New()

	var got []any
	handle, err := h.AttachEvent("timeChanged", func(args ...any) { got = args })
	if err != nil {
		t.Fatalf("AttachEvent: %v", err)
	}

	if n := h.Fire("timeChanged", "frame", 12); n != 1 {
		t.Fatalf("Fire ran %d callbacks, want 1", n)
	}
	if len(got) != 2 || got[0] != "frame" || got[1] != 12 {
		t.Errorf("callback args = %v, want [frame 12]", got)
	}

	if err := h.DetachEvent(handle); err != nil {
		t.Fatalf("DetachEvent: %v", err)
	}
	if n := h.Fire("timeChanged"); n != 0 {
		t.Errorf("Fire after detach ran %d callbacks, want 0", n)
	}
}

func TestInstallBindsGlobally(t *testing.T) {
	cleanups := []func(){}
	h := Install(func(fn func()) { cleanups = append(cleanups, fn) })

	bound, err := host.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if bound != host.Host(h) {
		t.Error("Install should bind the fake as the current host")
	}

	for _, fn := range cleanups {
		fn()
	}
	if _, err := host.Current(); !errors.Is(err, host.ErrHostUnavailable) {
		t.Errorf("after cleanup Current() = %v, want ErrHostUnavailable", err)
	}
}
