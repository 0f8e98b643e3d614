package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[melgui error] %s [%s]", err.Op, err.Kind)
		if err.Command != "" {
			fmt.Fprintf(os.Stderr, " command=%q", err.Command)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		return
	}
	if err.Command != "" {
		fmt.Fprintf(os.Stderr, "[melgui error] %s: %v // %s //\n", err.Op, err.Err, err.Command)
		return
	}
	fmt.Fprintf(os.Stderr, "[melgui error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[melgui panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[melgui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
