package symtab

import (
	"github.com/mouse-blink/sjavac/internal/diag"
)

// GlobalScope is the depth of the outermost scope.
const GlobalScope = 1

// Symbol is a declared variable.
type Symbol struct {
	Name     string
	Type     Type
	Value    Value
	Constant bool

	// history holds the value revisions of a global symbol, newest last.
	history []revision
}

type revision struct {
	value Value
	depth int
}

// SymbolTable is a stack of lexical scopes. The global scope sits at depth 1
// and is never exited.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// New returns a table holding only the empty global scope.
func New() *SymbolTable {
	return &SymbolTable{scopes: []map[string]*Symbol{{}}}
}

// Depth returns the current scope depth, 1 for the global scope.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// EnterScope pushes an empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

// ExitScope discards the innermost scope and rolls every global variable
// mutated at that depth back to the value it had before. Exiting the global
// scope is a no-op.
func (st *SymbolTable) ExitScope() {
	depth := st.Depth()
	if depth <= GlobalScope {
		return
	}

	for _, sym := range st.scopes[0] {
		sym.rollback(depth)
	}

	st.scopes[depth-1] = nil
	st.scopes = st.scopes[:depth-1]
}

func (s *Symbol) rollback(depth int) {
	popped := false
	for len(s.history) > 1 && s.history[len(s.history)-1].depth == depth {
		s.history = s.history[:len(s.history)-1]
		popped = true
	}

	if popped {
		s.Value = s.history[len(s.history)-1].value
	}
}

func (s *Symbol) record(value Value, depth int) {
	s.history = append(s.history, revision{value: value, depth: depth})
}

// Declare adds a variable to the current scope. Parameters may be constant
// without a value since their value is only known at call time.
func (st *SymbolTable) Declare(name string, typ Type, value Value, constant, parameter bool) error {
	current := st.scopes[len(st.scopes)-1]

	if _, exists := current[name]; exists {
		return diag.New(diag.VariableAlreadyDeclared).WithName(name)
	}

	if constant && !value.IsKnown() && !parameter {
		return diag.New(diag.ConstantNonAssignment).WithName(name)
	}

	sym := &Symbol{Name: name, Type: typ, Value: value, Constant: constant}
	if st.Depth() == GlobalScope {
		sym.record(value, GlobalScope)
	}

	current[name] = sym

	return nil
}

// Assign overwrites the value of the nearest variable called name.
func (st *SymbolTable) Assign(name string, value Value) error {
	scope := st.ScopeOf(name)
	if scope == 0 {
		return diag.New(diag.UnknownVariable).WithName(name)
	}

	sym := st.scopes[scope-1][name]

	if scope == GlobalScope && st.Depth() != GlobalScope && !sym.Value.IsKnown() {
		return diag.New(diag.UninitializedGlobalVariable).WithName(name)
	}

	if sym.Constant {
		return diag.New(diag.ConstantAssignment).WithName(name)
	}

	sym.Value = value
	if scope == GlobalScope {
		sym.record(value, st.Depth())
	}

	return nil
}

// ScopeOf returns the depth of the innermost scope declaring name, or 0.
func (st *SymbolTable) ScopeOf(name string) int {
	for depth := len(st.scopes); depth >= GlobalScope; depth-- {
		if _, ok := st.scopes[depth-1][name]; ok {
			return depth
		}
	}

	return 0
}

// Lookup resolves name from the innermost scope outwards.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	scope := st.ScopeOf(name)
	if scope == 0 {
		return nil, false
	}

	return st.scopes[scope-1][name], true
}

// DeclaredInCurrent reports whether name exists in the innermost scope.
func (st *SymbolTable) DeclaredInCurrent(name string) bool {
	_, ok := st.scopes[len(st.scopes)-1][name]
	return ok
}
