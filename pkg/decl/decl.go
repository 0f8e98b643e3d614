// Package decl parses indentation-structured control declarations.
//
// A declaration is one control per line, in the form "name: command". The
// command's first token is the control type and the remainder is its creation
// flags. Nesting is expressed by indentation (a tab counts as four spaces),
// and a "#" starts a comment unless it appears inside a quoted span. An
// explicit -p/-parent flag anywhere in the command overrides the parent
// inferred from indentation:
//
//	root: rowLayout -numberOfColumns 2   # top-level
//	  btn1: button -label "OK"           # child of root, by indentation
//	  btn2: button -label "Cancel" -p root
package decl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/awforsythe/melgui/pkg/errors"
)

// Decl is one parsed control declaration.
type Decl struct {
	// Name uniquely identifies the control.
	Name string
	// Type is the host command tag selecting the control kind.
	Type string
	// Flags is the creation-flag text, with the name, type, and any
	// -p/-parent flag removed.
	Flags string
	// Parent is the name of the parent control, or empty for top-level.
	Parent string
}

// MalformedLineError describes a declaration line that could not be parsed.
type MalformedLineError struct {
	// Line is the 1-based line number in the original text.
	Line int
	// Text is the offending line, with comments stripped.
	Text string
	// Reason says what was wrong with it.
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// parentFlagPattern captures an explicit -p/-parent flag and its optionally
// quoted value anywhere in a command.
var parentFlagPattern = regexp.MustCompile(` -p(?:arent)? "?([A-Za-z0-9_]+)"? ?`)

// Parse converts declaration text into an ordered list of Decls with resolved
// parent names. Parent/child structure is inferred from indentation via a
// stack of open ancestors; an explicit -p/-parent flag takes precedence over
// the inferred parent. Lines without a colon, or with nothing after the
// colon, are malformed.
func Parse(text string) ([]Decl, error) {
	var decls []Decl
	stack := newParentStack()

	for i, raw := range strings.Split(text, "\n") {
		line := stripComment(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth := indentWidth(line)
		name, command, ok := splitLine(line)
		if !ok {
			return nil, &errors.Error{
				Op:   "decl.Parse",
				Kind: errors.KindParse,
				Err:  &MalformedLineError{Line: i + 1, Text: line, Reason: "missing colon"},
			}
		}

		// Ancestors at or deeper than this line are no longer open; whatever
		// remains on top is the inferred parent.
		parent := stack.popTo(depth)
		if explicit, rest, found := extractParent(command); found {
			parent = explicit
			command = rest
		}

		controlType, flags, ok := splitCommand(command)
		if !ok {
			return nil, &errors.Error{
				Op:   "decl.Parse",
				Kind: errors.KindParse,
				Err:  &MalformedLineError{Line: i + 1, Text: line, Reason: "missing control type"},
			}
		}

		decls = append(decls, Decl{
			Name:   name,
			Type:   controlType,
			Flags:  flags,
			Parent: parent,
		})

		if err := stack.push(depth, name); err != nil {
			return nil, &errors.Error{Op: "decl.Parse", Kind: errors.KindInternal, Err: err}
		}
	}

	return decls, nil
}

// stripComment removes everything from the first unquoted "#" to the end of
// the line. Quote tracking is a toggle: an opening quote character restricts
// the closer to that same character; unterminated quotes fall through to the
// end of the line without complaint.
func stripComment(line string) string {
	var open rune
	for i, c := range line {
		switch {
		case c == '#' && open == 0:
			return line[:i]
		case open == 0 && (c == '"' || c == '\''):
			open = c
		case c == open:
			open = 0
		}
	}
	return line
}

// indentWidth measures the leading-whitespace run of a line, counting each
// tab as four spaces. Depths are raw integers, not normalized levels.
func indentWidth(line string) int {
	width := 0
	for _, c := range line {
		switch c {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// splitLine splits a declaration line at the first colon into a trimmed name
// and command.
func splitLine(line string) (name, command string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// extractParent removes an explicit -p/-parent flag from a command, returning
// the parent name and the remaining command text.
func extractParent(command string) (parent, rest string, found bool) {
	loc := parentFlagPattern.FindStringSubmatchIndex(command)
	if loc == nil {
		return "", command, false
	}
	parent = command[loc[2]:loc[3]]
	rest = command[:loc[0]] + " " + command[loc[1]:]
	return parent, rest, true
}

// splitCommand splits a command into its control type (first token) and
// creation flags (the remaining tokens rejoined with single spaces).
func splitCommand(command string) (controlType, flags string, ok bool) {
	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return "", "", false
	}
	return tokens[0], strings.Join(tokens[1:], " "), true
}
