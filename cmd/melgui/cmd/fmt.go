package cmd

import (
	"fmt"
	"os"

	"github.com/awforsythe/melgui/cmd/melgui/internal/config"
	"github.com/awforsythe/melgui/pkg/decl"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fmt",
		Short: "Rewrite a declaration in canonical form",
		Long: `Parse a declaration file and re-serialize it canonically: uniform
indentation (fmt.indent from melgui.yaml, default 2), single-space
flag separation, comments stripped, and explicit -p flags kept only
where nesting cannot express the parent.

With -w the file is rewritten in place; otherwise the result goes to
stdout.`,
		Usage: "melgui fmt [-w] <file>",
		Run:   runFmt,
	})
}

func runFmt(args []string) error {
	write := false
	var path string
	for _, arg := range args {
		if arg == "-w" {
			write = true
			continue
		}
		if path != "" {
			return fmt.Errorf("fmt takes a single declaration file")
		}
		path = arg
	}
	if path == "" {
		return fmt.Errorf("fmt requires a declaration file")
	}

	text, err := readInput(path)
	if err != nil {
		return err
	}
	decls, err := decl.Parse(text)
	if err != nil {
		return err
	}

	out := decl.FormatIndent(decls, config.Indent())
	if !write {
		fmt.Print(out)
		return nil
	}
	if path == "-" {
		return fmt.Errorf("cannot write in place when reading stdin")
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
