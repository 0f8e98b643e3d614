package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "gui.Control.Create",
		Kind: KindHost,
		Err:  errors.New("name already exists"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestErrorStringWithCommand(t *testing.T) {
	err := &Error{
		Op:      "gui.Control.Create",
		Kind:    KindHost,
		Command: `button -label "OK" btn1;`,
		Err:     errors.New("invalid flag"),
	}
	got := err.Error()
	want := `command="button -label \"OK\" btn1;"`
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &Error{Op: "decl.Parse", Kind: KindParse, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParse, "parse"},
		{KindName, "name"},
		{KindEvent, "event"},
		{KindHost, "host"},
		{KindInternal, "internal"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// captureHandler records reported errors for inspection.
type captureHandler struct {
	errors []*Error
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *Error)      { h.errors = append(h.errors, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&Error{Op: "test.op", Kind: KindHost, Err: errors.New("boom")})

	if len(handler.errors) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errors))
	}
	if handler.errors[0].Timestamp.IsZero() {
		t.Error("Report should set a timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.panicky")
		panic("kaboom")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(handler.panics))
	}
	if handler.panics[0].Op != "test.panicky" {
		t.Errorf("panic op = %q, want %q", handler.panics[0].Op, "test.panicky")
	}
	if handler.panics[0].Value != "kaboom" {
		t.Errorf("panic value = %v, want %q", handler.panics[0].Value, "kaboom")
	}
}
