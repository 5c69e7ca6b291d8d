package symtab

import (
	"testing"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, want diag.Kind) {
	t.Helper()

	require.Error(t, err)

	got, ok := diag.KindOf(err)
	require.True(t, ok, "expected *diag.Error, got %T", err)
	assert.Equal(t, want, got, "error: %v", err)
}

func TestSymbolTable_DeclareAndLookup(t *testing.T) {
	st := New()
	require.Equal(t, GlobalScope, st.Depth())

	require.NoError(t, st.Declare("a", Int, Known("5"), false, false))

	sym, ok := st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, Int, sym.Type)
	assert.Equal(t, "5", sym.Value.Text())
	assert.Equal(t, GlobalScope, st.ScopeOf("a"))
	assert.Equal(t, 0, st.ScopeOf("b"))
}

func TestSymbolTable_RedeclarationInSameScope(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("x", Int, Absent, false, false))

	requireKind(t, st.Declare("x", Int, Absent, false, false), diag.VariableAlreadyDeclared)
}

func TestSymbolTable_ShadowingAcrossScopes(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("x", Int, Known("1"), false, false))

	st.EnterScope()
	require.NoError(t, st.Declare("x", String, Known(`"s"`), false, false))

	sym, _ := st.Lookup("x")
	assert.Equal(t, String, sym.Type)
	assert.Equal(t, 2, st.ScopeOf("x"))

	st.ExitScope()

	sym, _ = st.Lookup("x")
	assert.Equal(t, Int, sym.Type)
}

func TestSymbolTable_ConstantRules(t *testing.T) {
	st := New()

	requireKind(t, st.Declare("c", Int, Absent, true, false), diag.ConstantNonAssignment)

	require.NoError(t, st.Declare("p", Int, Absent, true, true), "constant parameters carry no value")
	require.NoError(t, st.Declare("k", Int, Known("1"), true, false))

	requireKind(t, st.Assign("k", Known("2")), diag.ConstantAssignment)
}

func TestSymbolTable_AssignUnknown(t *testing.T) {
	requireKind(t, New().Assign("nope", Known("1")), diag.UnknownVariable)
}

func TestSymbolTable_UninitializedGlobalFromInnerScope(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("g", Int, Absent, false, false))

	st.EnterScope()
	requireKind(t, st.Assign("g", Known("5")), diag.UninitializedGlobalVariable)
	st.ExitScope()

	require.NoError(t, st.Assign("g", Known("5")), "globals can be initialized from the global scope")
}

func TestSymbolTable_LocalsAreDiscardedOnExit(t *testing.T) {
	st := New()
	st.EnterScope()
	require.NoError(t, st.Declare("local", Double, Known("1.5"), false, false))
	st.ExitScope()

	_, ok := st.Lookup("local")
	assert.False(t, ok)
}

func TestSymbolTable_ExitGlobalIsNoop(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("g", Int, Known("1"), false, false))

	st.ExitScope()

	assert.Equal(t, GlobalScope, st.Depth())
	assert.Equal(t, GlobalScope, st.ScopeOf("g"))
}

func TestSymbolTable_GlobalRollback(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("g", Int, Known("1"), false, false))

	st.EnterScope() // function body, depth 2
	require.NoError(t, st.Assign("g", Known("2")))

	st.EnterScope() // if block, depth 3
	require.NoError(t, st.Assign("g", Known("3")))
	require.NoError(t, st.Assign("g", Known("4")))

	sym, _ := st.Lookup("g")
	assert.Equal(t, "4", sym.Value.Text(), "assignments are visible inside the block")

	st.ExitScope()
	assert.Equal(t, "2", sym.Value.Text(), "leaving the block undoes its assignments")

	st.ExitScope()
	assert.Equal(t, "1", sym.Value.Text())
}

func TestSymbolTable_GlobalAssignmentAtGlobalScopeSurvives(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("g", Int, Absent, false, false))
	require.NoError(t, st.Assign("g", Known("7")))

	st.EnterScope()
	st.ExitScope()

	sym, _ := st.Lookup("g")
	assert.True(t, sym.Value.IsKnown())
	assert.Equal(t, "7", sym.Value.Text())
}

func TestSymbolTable_RollbackSkipsUntouchedGlobals(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("a", Int, Known("1"), false, false))
	require.NoError(t, st.Declare("b", Int, Known("1"), false, false))

	st.EnterScope()
	require.NoError(t, st.Assign("a", Known("9")))
	st.EnterScope()
	st.ExitScope()

	a, _ := st.Lookup("a")
	assert.Equal(t, "9", a.Value.Text(), "exiting a deeper scope keeps shallower assignments")

	st.ExitScope()
	assert.Equal(t, "1", a.Value.Text())
}

func TestSymbolTable_ShadowedGlobalIsNotRecorded(t *testing.T) {
	st := New()
	require.NoError(t, st.Declare("x", Int, Known("1"), false, false))

	st.EnterScope()
	require.NoError(t, st.Declare("x", Int, Absent, false, false))
	require.NoError(t, st.Assign("x", Known("5")))
	st.ExitScope()

	sym, _ := st.Lookup("x")
	assert.Equal(t, "1", sym.Value.Text())
	assert.Len(t, sym.history, 1)
}

func TestType_AssignableTo(t *testing.T) {
	tests := []struct {
		from, to Type
		want     bool
	}{
		{Int, Int, true},
		{Int, Double, true},
		{Int, Boolean, true},
		{Double, Boolean, true},
		{Double, Int, false},
		{Boolean, Int, false},
		{Char, String, false},
		{String, String, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AssignableTo(tt.to))
		})
	}
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType("boolean")
	assert.True(t, ok)
	assert.Equal(t, Boolean, typ)

	_, ok = ParseType("float")
	assert.False(t, ok)
}

func TestFunctionTable(t *testing.T) {
	ft := NewFunctionTable()
	require.NoError(t, ft.Add("g", []Type{Int, Int}))
	require.NoError(t, ft.Add("f", nil))

	requireKind(t, ft.Add("g", nil), diag.FunctionAlreadyDeclared)

	sig, ok := ft.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, 2, sig.Arity())
	assert.True(t, ft.Has("f"))
	assert.False(t, ft.Has("h"))
	assert.Equal(t, []string{"f", "g"}, ft.Names())
}
