package decl

import "strings"

// DefaultIndent is the indent unit used by Format.
const DefaultIndent = 2

// Format renders declarations back to canonical declaration text using the
// default indent unit. Re-parsing the result yields an equivalent tree.
func Format(decls []Decl) string {
	return FormatIndent(decls, DefaultIndent)
}

// FormatIndent renders declarations back to canonical declaration text, one
// per line in the original order, indented by the given number of spaces per
// nesting level. A declaration whose parent is expressible by position is
// indented under it; one whose parent is not an open ancestor at that point
// (an out-of-order explicit override) is emitted at the top level with an
// explicit -p flag instead.
func FormatIndent(decls []Decl, indent int) string {
	if indent < 1 {
		indent = DefaultIndent
	}

	var b strings.Builder
	var open []string // names of currently-open ancestors

	for _, d := range decls {
		level := 0
		explicit := false

		if d.Parent == "" {
			open = open[:0]
		} else {
			i := len(open) - 1
			for i >= 0 && open[i] != d.Parent {
				i--
			}
			if i < 0 {
				explicit = true
				open = open[:0]
			} else {
				open = open[:i+1]
				level = len(open)
			}
		}

		b.WriteString(strings.Repeat(" ", level*indent))
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Type)
		if explicit {
			b.WriteString(" -p ")
			b.WriteString(d.Parent)
		}
		if d.Flags != "" {
			b.WriteByte(' ')
			b.WriteString(d.Flags)
		}
		b.WriteByte('\n')

		open = append(open, d.Name)
	}

	return b.String()
}
