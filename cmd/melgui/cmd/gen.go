package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/awforsythe/melgui/cmd/melgui/internal/config"
	"github.com/awforsythe/melgui/pkg/decl"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate Go source from a declaration",
		Long: `Parse a declaration file and write a Go source file that rebuilds it
at runtime via gui.FromString. The declaration is embedded in
canonical form, so a malformed file fails here instead of inside the
host application.

The output package name and directory come from melgui.yaml
(gen.package and gen.dir, defaults "ui" and the project root); the
import path is resolved from go.mod.`,
		Usage: "melgui gen <file>",
		Run:   runGen,
	})
}

func runGen(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("gen requires exactly one declaration file")
	}
	path := args[0]
	if path == "-" {
		return fmt.Errorf("gen requires a named declaration file")
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}
	decls, err := decl.Parse(text)
	if err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	importPath, err := cfg.GeneratedImportPath()
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ident := exportedIdent(base)
	if ident == "" {
		return fmt.Errorf("cannot derive a Go identifier from %q", base)
	}

	canonical := decl.FormatIndent(decls, cfg.FmtIndent)
	src := generateSource(cfg.GenPackage, path, ident, canonical)

	outDir := filepath.Join(cfg.Root, cfg.GenDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, snakeCase(base)+"_gui.go")
	if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("wrote %s (package %s)\n", outPath, importPath)
	return nil
}

// generateSource renders the generated Go file. The declaration is embedded
// as a raw string unless it contains a backtick.
func generateSource(pkg, source, ident, canonical string) string {
	literal := "`" + canonical + "`"
	if strings.Contains(canonical, "`") {
		literal = strconv.Quote(canonical)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by melgui gen from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/awforsythe/melgui/pkg/gui\"\n\n")
	fmt.Fprintf(&b, "const %sDecl = %s\n\n", lowerFirst(ident), literal)
	fmt.Fprintf(&b, "// New%sGui builds the %s declaration into a Gui, ready to create\n", ident, ident)
	b.WriteString("// once a window is up.\n")
	fmt.Fprintf(&b, "func New%sGui() (*gui.Gui, error) {\n", ident)
	fmt.Fprintf(&b, "\treturn gui.FromString(%sDecl)\n", lowerFirst(ident))
	b.WriteString("}\n")
	return b.String()
}

// exportedIdent derives an exported Go identifier from a file base name,
// e.g. "tool-window" -> "ToolWindow".
func exportedIdent(base string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range base {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	return b.String()
}

// snakeCase derives a file-name stem from a base name, e.g. "toolWindow" ->
// "tool_window".
func snakeCase(base string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range base {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevLower = unicode.IsLower(r)
		default:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			prevLower = false
		}
	}
	return strings.Trim(b.String(), "_")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
