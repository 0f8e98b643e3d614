package window

import (
	stderrors "errors"
	"testing"

	"github.com/awforsythe/melgui/pkg/host"
	"github.com/awforsythe/melgui/pkg/hosttest"
)

func TestNewAppliesTitleSizeAndDefaults(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	w, err := New("toolWin", Options{Title: "My Tool", Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Name() != "toolWin" {
		t.Errorf("Name = %q, want %q", w.Name(), "toolWin")
	}

	flags, ok := h.Window("toolWin")
	if !ok {
		t.Fatal("window was not created")
	}
	if flags["title"] != "My Tool" {
		t.Errorf("title = %v, want %q", flags["title"], "My Tool")
	}
	if flags["width"] != 400 || flags["height"] != 300 {
		t.Errorf("size = %vx%v, want 400x300", flags["width"], flags["height"])
	}
	if flags["toolbox"] != true || flags["resizeToFitChildren"] != true {
		t.Errorf("host defaults not overridden: toolbox=%v resizeToFitChildren=%v",
			flags["toolbox"], flags["resizeToFitChildren"])
	}
}

func TestNewDefaultsCanBeOverridden(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	_, err := New("toolWin", Options{
		Title: "My Tool", Width: 400, Height: 300,
		Flags: host.Flags{"toolbox": false, "sizeable": true},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flags, ok := h.Window("toolWin")
	if !ok {
		t.Fatal("window was not created")
	}
	if flags["toolbox"] != false {
		t.Errorf("toolbox = %v, want explicit false to survive", flags["toolbox"])
	}
	if flags["resizeToFitChildren"] != true {
		t.Errorf("resizeToFitChildren = %v, want defaulted true", flags["resizeToFitChildren"])
	}
	if flags["sizeable"] != true {
		t.Errorf("sizeable = %v, want pass-through true", flags["sizeable"])
	}
}

func TestNewReplacesExistingWindow(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	if _, err := New("toolWin", Options{Title: "v1", Width: 100, Height: 100}); err != nil {
		t.Fatalf("New: %v", err)
	}
	// Simulate a control living in the old window.
	err := h.CreateControl(host.Invocation{Type: "button", Parent: "toolWin", Name: "oldBtn"})
	if err != nil {
		t.Fatalf("CreateControl: %v", err)
	}

	if _, err := New("toolWin", Options{Title: "v2", Width: 100, Height: 100}); err != nil {
		t.Fatalf("New (replace): %v", err)
	}
	if h.Exists("oldBtn") {
		t.Error("contents of the replaced window should have been deleted")
	}
}

func TestNewResetsForgottenDimensions(t *testing.T) {
	h := hosttest.Install(t.Cleanup)
	h.SeedWindowPref("toolWin", host.Flags{
		"leftEdge": 120, "topEdge": 80, "width": 640, "height": 480,
	})

	_, err := New("toolWin", Options{
		Title: "My Tool", Width: 300, Height: 200,
		RememberWidth: true, // height resets
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"leftEdge", 120},
		{"topEdge", 80},
		{"width", 640}, // remembered
		{"height", 200}, // reset to the initial value
	}
	for _, tt := range tests {
		got, err := h.QueryWindowPref("toolWin", tt.flag)
		if err != nil {
			t.Fatalf("QueryWindowPref(%s): %v", tt.flag, err)
		}
		if got != tt.want {
			t.Errorf("pref %s = %v, want %v", tt.flag, got, tt.want)
		}
	}
}

func TestNewLeavesMissingPrefsAlone(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	if _, err := New("freshWin", Options{Title: "Fresh", Width: 300, Height: 200}); err != nil {
		t.Fatalf("New: %v", err)
	}
	if exists, _ := h.WindowPrefExists("freshWin"); exists {
		t.Error("New should not invent preferences for a never-seen window")
	}
}

func TestShow(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	w, err := New("toolWin", Options{Title: "My Tool", Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if !h.Shown("toolWin") {
		t.Error("window should be marked shown")
	}
}

func TestAttachCallbackFiresAndReleasesOnDelete(t *testing.T) {
	h := hosttest.Install(t.Cleanup)

	w, err := New("toolWin", Options{Title: "My Tool", Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	calls := 0
	if err := w.AttachCallback("SelectionChanged", func() { calls++ }); err != nil {
		t.Fatalf("AttachCallback: %v", err)
	}

	// The host passes its own arguments when firing; the callback ignores them.
	h.Fire("SelectionChanged", "hostPayload")
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}

	if err := w.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if h.Subscriptions() != 0 {
		t.Errorf("%d subscriptions remain after window deletion, want 0", h.Subscriptions())
	}
	h.Fire("SelectionChanged")
	if calls != 1 {
		t.Errorf("callback ran after the window was deleted")
	}
}

func TestNewWithoutHostBound(t *testing.T) {
	host.Set(nil)
	if _, err := New("toolWin", Options{}); !stderrors.Is(err, host.ErrHostUnavailable) {
		t.Errorf("New with no host = %v, want ErrHostUnavailable", err)
	}
}
