package cmd

import (
	"fmt"

	"github.com/awforsythe/melgui/pkg/decl"
	"github.com/awforsythe/melgui/pkg/host"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Lint a declaration",
		Long: `Parse a declaration file and report problems that would surface as
failures at creation time: duplicate control names, control types not
in the known vocabulary, and controls declared under a parent whose
type cannot hold children.

Parents that are not declared in the file are noted but not treated
as findings; they may already exist in the host.`,
		Usage: "melgui check <file>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check requires exactly one declaration file")
	}
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	decls, err := decl.Parse(text)
	if err != nil {
		return err
	}

	findings := 0
	report := func(format string, args ...any) {
		fmt.Printf("finding: "+format+"\n", args...)
		findings++
	}

	types := make(map[string]string, len(decls))
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if seen[d.Name] {
			report("duplicate control name %q", d.Name)
		}
		seen[d.Name] = true
		types[d.Name] = d.Type

		if _, known := host.Lookup(d.Type); !known {
			report("%q has unknown control type %s", d.Name, d.Type)
		}
	}

	for _, d := range decls {
		if d.Parent == "" {
			continue
		}
		parentType, declared := types[d.Parent]
		if !declared {
			fmt.Printf("note: %q is parented to %q, which is not declared here\n", d.Name, d.Parent)
			continue
		}
		desc, known := host.Lookup(parentType)
		if known && !desc.Container {
			report("%q is declared under %q (%s), which cannot hold children",
				d.Name, d.Parent, parentType)
		}
	}

	if findings > 0 {
		return fmt.Errorf("%d finding(s) in %s", findings, args[0])
	}
	fmt.Printf("%s: %d control(s), no findings\n", args[0], len(decls))
	return nil
}
