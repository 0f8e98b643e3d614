package cmd

import (
	"fmt"
	"strings"

	"github.com/awforsythe/melgui/pkg/decl"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the inferred control tree",
		Long: `Parse a declaration file and print its control tree with parents
resolved, whether they came from indentation or from an explicit
-p/-parent override.

Controls whose parent is not declared in the same file (it may exist
in the host already) are listed under "attached elsewhere".`,
		Usage: "melgui tree <file>",
		Run:   runTree,
	})
}

func runTree(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("tree requires exactly one declaration file")
	}
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	decls, err := decl.Parse(text)
	if err != nil {
		return err
	}

	declared := make(map[string]bool, len(decls))
	for _, d := range decls {
		declared[d.Name] = true
	}

	children := make(map[string][]decl.Decl)
	var roots, orphans []decl.Decl
	for _, d := range decls {
		switch {
		case d.Parent == "":
			roots = append(roots, d)
		case declared[d.Parent]:
			children[d.Parent] = append(children[d.Parent], d)
		default:
			orphans = append(orphans, d)
		}
	}

	var printSubtree func(d decl.Decl, depth int)
	printSubtree = func(d decl.Decl, depth int) {
		line := fmt.Sprintf("%s%s  [%s]", strings.Repeat("  ", depth), d.Name, d.Type)
		if d.Flags != "" {
			line += "  " + d.Flags
		}
		fmt.Println(line)
		for _, child := range children[d.Name] {
			printSubtree(child, depth+1)
		}
	}

	for _, d := range roots {
		printSubtree(d, 0)
	}
	if len(orphans) > 0 {
		fmt.Println()
		fmt.Println("attached elsewhere:")
		for _, d := range orphans {
			fmt.Printf("  %s  [%s]  (parent %s)\n", d.Name, d.Type, d.Parent)
		}
	}
	return nil
}
