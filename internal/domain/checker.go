package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mouse-blink/sjavac/internal/adapter"
	"github.com/mouse-blink/sjavac/internal/diag"
	m "github.com/mouse-blink/sjavac/internal/model"
	"github.com/mouse-blink/sjavac/internal/preprocess"
	"github.com/mouse-blink/sjavac/internal/verify"
)

// Outcome is the result of verifying one program text.
type Outcome struct {
	Code int
	Err  error
	// Line is the 1-based input line of the violation, 0 when unknown.
	Line int
}

// Evaluate preprocesses and verifies the program read from r.
func Evaluate(r io.Reader) Outcome {
	res, err := preprocess.Process(r)
	if err == nil {
		err = verify.Lines(res.Lines, res.Functions)
	}

	out := Outcome{Code: diag.Code(err), Err: err}

	var de *diag.Error
	if res != nil && errors.As(err, &de) {
		out.Line = res.Origin(de.Line)
	}

	return out
}

// Checker verifies a single source file.
type Checker interface {
	Check(source m.Source) m.Report
}

type checker struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewChecker constructs a Checker reading sources through fsAdapter.
func NewChecker(fsAdapter adapter.SourceFSAdapter) Checker {
	return &checker{fsAdapter: fsAdapter}
}

func (c *checker) Check(source m.Source) m.Report {
	report := m.Report{Source: source}

	if source.Origin == nil {
		report.Code = diag.CodeIOFailure
		report.Message = "source origin is nil"

		return report
	}

	content, err := c.fsAdapter.ReadFile(source.Path())
	if err != nil {
		report.Code = diag.CodeIOFailure
		report.Message = fmt.Sprintf("read %s: %v", source.Path(), err)

		return report
	}

	return reportFor(source, Evaluate(bytes.NewReader(content)))
}

func reportFor(source m.Source, out Outcome) m.Report {
	report := m.Report{Source: source, Code: out.Code, Line: out.Line}

	if out.Err == nil {
		return report
	}

	report.Message = out.Err.Error()

	if kind, ok := diag.KindOf(out.Err); ok {
		report.Kind = kind.String()
	}

	return report
}
