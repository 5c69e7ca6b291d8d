package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/sjavac/internal/adapter/mocks"
	"github.com/mouse-blink/sjavac/internal/diag"
	m "github.com/mouse-blink/sjavac/internal/model"
)

const acceptedSource = `// globals
int a = 5;

void f(int x) {
  a = x;
  return;
}
`

// The assignment to c sits on input line 6, the fourth cleaned line.
const rejectedSource = `// constants
final int c = 1;

void f() {
  // reassigning a constant
  c = 2;
  return;
}
`

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code int
		kind diag.Kind
		line int
	}{
		{name: "accepted", src: acceptedSource, code: diag.CodeAccepted},
		{name: "semantic violation mapped to input line", src: rejectedSource, code: diag.CodeRejected, kind: diag.ConstantAssignment, line: 6},
		{name: "structural violation mapped to input line", src: "int a = 1;\n\n/* block */\n", code: diag.CodeRejected, kind: diag.InvalidComment, line: 3},
		{name: "missing semicolon", src: "// c\nint a = 1\n", code: diag.CodeRejected, kind: diag.EndOfLine, line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(strings.NewReader(tt.src))

			assert.Equal(t, tt.code, out.Code, "error: %v", out.Err)
			assert.Equal(t, tt.line, out.Line)

			if tt.code == diag.CodeAccepted {
				assert.NoError(t, out.Err)
				return
			}

			kind, ok := diag.KindOf(out.Err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestEvaluate_ReadFailure(t *testing.T) {
	out := Evaluate(failingReader{})

	assert.Equal(t, diag.CodeIOFailure, out.Code)
	assert.ErrorContains(t, out.Err, "disk on fire")
	assert.Zero(t, out.Line)
}

func TestChecker_Check(t *testing.T) {
	source := m.Source{Origin: &m.File{Path: "/src/a.sjava", Hash: "h"}}

	t.Run("accepted", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		fsAdapter.EXPECT().ReadFile(m.Path("/src/a.sjava")).Return([]byte(acceptedSource), nil)

		report := NewChecker(fsAdapter).Check(source)

		assert.Equal(t, source, report.Source)
		assert.Equal(t, diag.CodeAccepted, report.Code)
		assert.Empty(t, report.Kind)
		assert.Empty(t, report.Message)
		assert.Zero(t, report.Line)
	})

	t.Run("rejected", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		fsAdapter.EXPECT().ReadFile(m.Path("/src/a.sjava")).Return([]byte(rejectedSource), nil)

		report := NewChecker(fsAdapter).Check(source)

		assert.Equal(t, diag.CodeRejected, report.Code)
		assert.Equal(t, "ConstantAssignment", report.Kind)
		assert.Equal(t, 6, report.Line)
		assert.Contains(t, report.Message, "c is constant")
		assert.Equal(t, m.Rejected, report.Status())
	})

	t.Run("read failure", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		fsAdapter.EXPECT().ReadFile(m.Path("/src/a.sjava")).Return(nil, errors.New("permission denied"))

		report := NewChecker(fsAdapter).Check(source)

		assert.Equal(t, diag.CodeIOFailure, report.Code)
		assert.Contains(t, report.Message, "permission denied")
		assert.Equal(t, m.Failed, report.Status())
	})

	t.Run("missing origin", func(t *testing.T) {
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

		report := NewChecker(fsAdapter).Check(m.Source{})

		assert.Equal(t, diag.CodeIOFailure, report.Code)
		assert.Equal(t, "source origin is nil", report.Message)
	})
}
