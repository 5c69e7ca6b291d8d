package verify

import (
	"errors"
	"strings"
	"testing"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/preprocess"
	"github.com/mouse-blink/sjavac/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifySource(t *testing.T, src string) error {
	t.Helper()

	res, err := preprocess.Process(strings.NewReader(src))
	require.NoError(t, err, "preprocessing should succeed")

	return Lines(res.Lines, res.Functions)
}

func requireKind(t *testing.T, err error, want diag.Kind) *diag.Error {
	t.Helper()

	require.Error(t, err)

	var d *diag.Error
	require.True(t, errors.As(err, &d), "expected *diag.Error, got %T", err)
	assert.Equal(t, want, d.Kind, "error: %v", err)

	return d
}

const acceptedProgram = `// every construct the language has
int a = 5;
double d = -3.14, e = .5, f = 2.;
boolean b = true, c = 1.5, z = -2;
char ch = 'x';
String s = "hello", empty = "";
final int k = 7;
a = 6;

void foo(int x, final double y, String str) {
  int local;
  local = x;
  if (b && a || true) {
    while (-1.5 || d) {
      foo(1, 2.5, "hi");
      bar();
      foo(k, a, s);
      return;
    }
  }
  local = 3;
  return;
}

void bar() {
  return;
}
`

func TestVerify_AcceptsFullProgram(t *testing.T) {
	require.NoError(t, verifySource(t, acceptedProgram))
}

func TestVerify_Accepted(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "empty file",
			src:  "",
		},
		{
			name: "shadowing a global",
			src:  "int x;\nvoid f() {\nint x = 1;\nreturn;\n}\n",
		},
		{
			name: "same name in sibling blocks",
			src:  "void f() {\nif (true) {\nint x;\n}\nwhile (false) {\nint x;\n}\nreturn;\n}\n",
		},
		{
			name: "variable argument of a wider slot",
			src:  "void g(double a) {\nreturn;\n}\nvoid f() {\nint i = 1;\ng(i);\nreturn;\n}\n",
		},
		{
			name: "constant parameter",
			src:  "void f(final int p) {\nreturn;\n}\n",
		},
		{
			name: "global initialized late then used in a condition",
			src:  "int g;\ng = 1;\nvoid f() {\nif (g) {\n}\nreturn;\n}\n",
		},
		{
			name: "inner return before the final one",
			src:  "void f() {\nif (true) {\nreturn;\n}\nreturn;\n}\n",
		},
		{
			name: "multiple assignment",
			src:  "int a, b;\na = 1, b = 2;\n",
		},
		{
			name: "value copied from another variable",
			src:  "int a = 1;\ndouble d = a;\nboolean flag = d;\n",
		},
		{
			name: "signed values",
			src:  "int a = -1;\ndouble d = +2.5;\nboolean b = -0;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, verifySource(t, tt.src))
		})
	}
}

func TestVerify_Rejected(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind diag.Kind
	}{
		{"redeclared global", "int x;\nint x;\n", diag.VariableAlreadyDeclared},
		{"redeclared local", "void f() {\nint x;\nint x;\nreturn;\n}\n", diag.VariableAlreadyDeclared},
		{"redeclared in one statement", "int x, x;\n", diag.VariableAlreadyDeclared},
		{"parameter redeclared in body", "void f(int p) {\nint p;\nreturn;\n}\n", diag.VariableAlreadyDeclared},
		{"constant without value", "final int c;\n", diag.ConstantNonAssignment},
		{"constant reassigned", "final int c = 1;\nc = 2;\n", diag.ConstantAssignment},
		{"constant parameter assigned", "void f(final int p) {\np = 1;\nreturn;\n}\n", diag.ConstantAssignment},
		{"uninitialized global assigned inside a block", "int g;\nvoid f() {\nif (true) {\ng = 5;\n}\nreturn;\n}\n", diag.UninitializedGlobalVariable},
		{"uninitialized global assigned in a body", "int g;\nvoid f() {\ng = 5;\nreturn;\n}\n", diag.UninitializedGlobalVariable},
		{"keyword as variable name", "int if;\n", diag.InvalidVariableName},
		{"double underscore name", "int __x;\n", diag.InvalidVariableName},
		{"double into int", "int x = 1.5;\n", diag.InvalidValueType},
		{"malformed double", "double d = 1.5.5;\n", diag.InvalidValueType},
		{"string into char", "char c = \"a\";\n", diag.InvalidValueType},
		{"number into String", "String s = 5;\n", diag.InvalidValueType},
		{"char into boolean", "boolean b = 'a';\n", diag.InvalidValueType},
		{"two-char char", "char c = 'ab';\n", diag.InvalidValueType},
		{"multi-word String", "String s = \"a b\";\n", diag.InvalidValueType},
		{"double variable into int", "double d = 1.5;\nint i = d;\n", diag.InvalidValueType},
		{"String argument in an int slot", "String s = \"a\";\nvoid g(int a) {\nreturn;\n}\nvoid f() {\ng(s);\nreturn;\n}\n", diag.InvalidValueType},
		{"double literal in an int slot", "void g(int a) {\nreturn;\n}\nvoid f() {\ng(1.5);\nreturn;\n}\n", diag.InvalidValueType},
		{"missing separator", "int a b;\n", diag.InvalidVariableDeclaration},
		{"final without type", "final x = 5;\n", diag.InvalidVariableDeclaration},
		{"assignment without value", "int a;\na = ;\n", diag.InvalidVariableAssignment},
		{"assignment without equals", "int a;\na 5;\n", diag.InvalidVariableAssignment},
		{"unknown function", "void f() {\nh();\nreturn;\n}\n", diag.NonExistingFunction},
		{"call from global", "void f() {\nreturn;\n}\nf();\n", diag.CallFunctionFromGlobal},
		{"if in global", "if (true) {\n}\n", diag.IllegalBlockInGlobalScope},
		{"while in global", "while (true) {\n}\n", diag.IllegalBlockInGlobalScope},
		{"malformed numeric condition", "void f() {\nif (1.5.5) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"empty condition", "void f() {\nif () {\n}\nreturn;\n}\n", diag.EmptyCondition},
		{"double operator", "void f() {\nif (true && && false) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"operator before closing", "void f() {\nwhile (true ||) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"leading operator", "void f() {\nif (&& true) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"single ampersand", "void f() {\nif (true & false) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"mixed operator", "void f() {\nif (true &| false) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"atoms without operator", "void f() {\nif (true false) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"undeclared condition variable", "void f() {\nif (nope) {\n}\nreturn;\n}\n", diag.IllegalCondition},
		{"string in condition", "String s = \"a\";\nvoid f() {\nif (s) {\n}\nreturn;\n}\n", diag.IllegalVarTypeInCondition},
		{"char in condition", "void f() {\nchar c = 'a';\nif (true || c) {\n}\nreturn;\n}\n", diag.IllegalVarTypeInCondition},
		{"uninitialized in condition", "int g;\nvoid f() {\nif (g) {\n}\nreturn;\n}\n", diag.UninitializedVariableInCondition},
		{"parameter in condition", "void f(int p) {\nwhile (p) {\n}\nreturn;\n}\n", diag.UninitializedVariableInCondition},
		{"nested function", "void f() {\nvoid g() {\nreturn;\n}\nreturn;\n}\n", diag.InnerMethodDeclaration},
		{"no final return", "void f() {\nint x = 1;\n}\n", diag.MissingFinalReturn},
		{"empty body", "void f() {\n}\n", diag.MissingFinalReturn},
		{"return not last", "void f() {\nreturn;\nint x = 1;\n}\n", diag.MissingFinalReturn},
		{"return only inside a block", "void f() {\nif (true) {\nreturn;\n}\n}\n", diag.MissingFinalReturn},
		{"return with value", "void f() {\nreturn 5;\n}\n", diag.IllegalReturnFormat},
		{"unknown identifier in a body", "void f() {\nx = 1;\nreturn;\n}\n", diag.IllegalInnerBlock},
		{"stray literal in a body", "void f() {\n5;\nreturn;\n}\n", diag.IllegalInnerBlock},
		{"undeclared global assignment", "a = 5;\n", diag.UnknownVariable},
		{"function name used as a variable", "void f() {\nreturn;\n}\nf = 1;\n", diag.UnknownVariable},
		{"stray statement in global", "return;\n", diag.GlobalScope},
		{"stray literal in global", "5;\n", diag.GlobalScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireKind(t, verifySource(t, tt.src), tt.kind)
			assert.Equal(t, diag.Semantic, d.Kind.Tier())
			assert.GreaterOrEqual(t, d.Line, 0)
		})
	}
}

func TestVerify_CallArity(t *testing.T) {
	const decl = "void g(int a, int b) {\nreturn;\n}\n"

	tests := []struct {
		call   string
		detail string
	}{
		{"g(1);", "fewer"},
		{"g();", "fewer"},
		{"g(1, 2, 3);", "more"},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			src := decl + "void f() {\n" + tt.call + "\nreturn;\n}\n"

			d := requireKind(t, verifySource(t, src), diag.NumberOfVarsInFuncCall)
			assert.Equal(t, tt.detail, d.Detail)
			assert.Equal(t, "g", d.Name)
			assert.Contains(t, d.Error(), tt.detail)
		})
	}

	assert.NoError(t, verifySource(t, decl+"void f() {\ng(1, -2);\nreturn;\n}\n"))
}

func TestVerify_ErrorLine(t *testing.T) {
	err := verifySource(t, "final int c = 1;\nvoid f() {\nreturn;\n}\nc = 2;\n")

	d := requireKind(t, err, diag.ConstantAssignment)
	assert.Equal(t, 4, d.Line)
	assert.Equal(t, "c", d.Name)
}

func TestVerify_Deterministic(t *testing.T) {
	res, err := preprocess.Process(strings.NewReader(acceptedProgram))
	require.NoError(t, err)

	engine := New(res.Lines, res.Functions)
	require.NoError(t, engine.Verify())
	require.NoError(t, engine.Verify(), "re-verifying the same stream gives the same verdict")

	rejected := New([]string{"int x;", "int x;"}, nil)
	first := rejected.Verify()
	second := rejected.Verify()
	assert.Equal(t, first.Error(), second.Error())
}

func TestVerify_GlobalRollback(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "assignment inside a block",
			src:  "int g = 1;\nvoid f() {\nif (true) {\ng = 2;\n}\nreturn;\n}\n",
			want: "1",
		},
		{
			name: "assignment in a function body",
			src:  "int g = 1;\nvoid f() {\ng = 2;\nreturn;\n}\n",
			want: "1",
		},
		{
			name: "global assignment after functions",
			src:  "int g = 1;\nvoid f() {\ng = 2;\nreturn;\n}\ng = 3;\n",
			want: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := preprocess.Process(strings.NewReader(tt.src))
			require.NoError(t, err)

			engine := New(res.Lines, res.Functions)
			require.NoError(t, engine.Verify())

			sym, ok := engine.symbols.Lookup("g")
			require.True(t, ok)
			assert.Equal(t, tt.want, sym.Value.Text())
		})
	}
}

func TestVerify_HeaderChecks(t *testing.T) {
	funcs := symtab.NewFunctionTable()
	require.NoError(t, funcs.Add("f", nil))

	err := Lines([]string{"void f(a) {", "return;", "}"}, funcs)
	requireKind(t, err, diag.MissingParameterType)

	err = Lines([]string{"void h() {", "return;", "}"}, funcs)
	requireKind(t, err, diag.InvalidFunctionDeclaration)

	err = Lines([]string{"void f() {", "return;"}, funcs)
	requireKind(t, err, diag.MissingFinalReturn)
}

func TestRun(t *testing.T) {
	funcs := symtab.NewFunctionTable()
	require.NoError(t, funcs.Add("f", nil))

	t.Run("accepted", func(t *testing.T) {
		v := Run(strings.NewReader("int a = 5; void f(){ return; }"), funcs)
		assert.True(t, v.Accepted())
		assert.Equal(t, diag.CodeAccepted, v.Code)
		assert.NoError(t, v.Err)
	})

	t.Run("unknown variable", func(t *testing.T) {
		v := Run(strings.NewReader("a = 5;"), symtab.NewFunctionTable())
		assert.Equal(t, diag.CodeRejected, v.Code)
		requireKind(t, v.Err, diag.UnknownVariable)
	})

	t.Run("read failure", func(t *testing.T) {
		v := Run(failingReader{}, funcs)
		assert.Equal(t, diag.CodeIOFailure, v.Code)
		assert.False(t, v.Accepted())
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("unreadable")
}
