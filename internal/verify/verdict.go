package verify

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/symtab"
)

// Verdict is the terminal outcome of one run.
type Verdict struct {
	// Code is diag.CodeAccepted, diag.CodeRejected or diag.CodeIOFailure.
	Code int
	// Err is the first violation or the read failure, nil when accepted.
	Err error
}

// Accepted reports whether the program passed.
func (v Verdict) Accepted() bool {
	return v.Code == diag.CodeAccepted
}

// Run reads cleaned lines from r and verifies them against funcs.
func Run(r io.Reader, funcs *symtab.FunctionTable) Verdict {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return Verdict{Code: diag.CodeIOFailure, Err: fmt.Errorf("read lines: %w", err)}
	}

	err := Lines(lines, funcs)

	return Verdict{Code: diag.Code(err), Err: err}
}
