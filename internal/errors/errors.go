// Package errors renders command failures for the terminal, with optional hints
// registered against sentinel errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/julianstephens/dayjournal/internal/logger"
)

type hint struct {
	target error
	text   string
}

var (
	hintsMu sync.RWMutex
	hints   []hint
)

// RegisterHint attaches a remediation line to every formatted error that wraps target.
func RegisterHint(target error, text string) {
	hintsMu.Lock()
	defer hintsMu.Unlock()
	hints = append(hints, hint{target: target, text: text})
}

// Hint returns the first registered hint matching err, or "".
func Hint(err error) string {
	if err == nil {
		return ""
	}
	hintsMu.RLock()
	defer hintsMu.RUnlock()
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.text
		}
	}
	return ""
}

// Format renders err as "Error: ..." plus a "Hint: ..." line when one matches.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := "Error: " + err.Error()
	if h := Hint(err); h != "" {
		msg += "\nHint: " + h
	}
	return msg
}

// Report logs err, writes it to w and returns the process exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return 1
}

// Fatal exits with status 1 after reporting a non-nil err on stderr.
func Fatal(err error) {
	if code := Report(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}
