package symtab

import (
	"sort"

	"github.com/mouse-blink/sjavac/internal/diag"
)

// Signature is a function's name and ordered parameter types.
type Signature struct {
	Name   string
	Params []Type
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

// FunctionTable maps function names to signatures. It is filled once by the
// preprocessor and only read afterwards.
type FunctionTable struct {
	funcs map[string]Signature
}

// NewFunctionTable returns an empty table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: map[string]Signature{}}
}

// Add registers a function. Declaring the same name twice is an error.
func (ft *FunctionTable) Add(name string, params []Type) error {
	if _, exists := ft.funcs[name]; exists {
		return diag.New(diag.FunctionAlreadyDeclared).WithName(name)
	}

	ft.funcs[name] = Signature{Name: name, Params: append([]Type(nil), params...)}

	return nil
}

// Lookup returns the signature registered under name.
func (ft *FunctionTable) Lookup(name string) (Signature, bool) {
	sig, ok := ft.funcs[name]
	return sig, ok
}

// Has reports whether a function called name exists.
func (ft *FunctionTable) Has(name string) bool {
	_, ok := ft.funcs[name]
	return ok
}

// Names returns the declared function names in lexical order.
func (ft *FunctionTable) Names() []string {
	names := make([]string, 0, len(ft.funcs))
	for name := range ft.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
