package cmd

import (
	"strings"
	"testing"
)

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"toolWindow", "ToolWindow"},
		{"tool-window", "ToolWindow"},
		{"tool_window", "ToolWindow"},
		{"renamer2", "Renamer2"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := exportedIdent(tt.in); got != tt.want {
			t.Errorf("exportedIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"toolWindow", "tool_window"},
		{"tool-window", "tool_window"},
		{"renamer", "renamer"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.in); got != tt.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateSource(t *testing.T) {
	canonical := "root: columnLayout\n  btn: button -label \"OK\"\n"
	src := generateSource("toolui", "toolWindow.gui", "ToolWindow", canonical)

	for _, want := range []string{
		"// Code generated by melgui gen from toolWindow.gui; DO NOT EDIT.",
		"package toolui",
		`import "github.com/awforsythe/melgui/pkg/gui"`,
		"const toolWindowDecl = `" + canonical + "`",
		"func NewToolWindowGui() (*gui.Gui, error) {",
		"return gui.FromString(toolWindowDecl)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGenerateSourceEscapesBackticks(t *testing.T) {
	src := generateSource("ui", "x.gui", "X", "a: button -label \"tick`\"\n")
	if strings.Contains(src, "= `") {
		t.Errorf("declaration with backtick must not use a raw string literal:\n%s", src)
	}
}
