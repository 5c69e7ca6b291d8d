// Package symtab keeps track of S-Java variables across nested scopes and of
// the function signatures collected by the preprocessor.
package symtab

// Type is one of the five S-Java primitive types.
type Type string

// Supported types.
const (
	Int     Type = "int"
	Double  Type = "double"
	Boolean Type = "boolean"
	Char    Type = "char"
	String  Type = "String"
)

// ParseType maps a type keyword onto its Type.
func ParseType(s string) (Type, bool) {
	switch t := Type(s); t {
	case Int, Double, Boolean, Char, String:
		return t, true
	default:
		return "", false
	}
}

// AssignableTo reports whether a value of type t may be stored in a variable
// of type target. int widens to double and boolean, double widens to boolean.
func (t Type) AssignableTo(target Type) bool {
	if t == target {
		return true
	}

	switch target {
	case Double:
		return t == Int
	case Boolean:
		return t == Int || t == Double
	default:
		return false
	}
}

// Value is the textual value of a variable, possibly absent.
type Value struct {
	text  string
	known bool
}

// Absent is the value of a declared but unassigned variable.
var Absent = Value{}

// Known wraps a literal's reconstructed text.
func Known(text string) Value {
	return Value{text: text, known: true}
}

// IsKnown reports whether the value has been assigned.
func (v Value) IsKnown() bool {
	return v.known
}

// Text returns the literal text, empty when absent.
func (v Value) Text() string {
	return v.text
}

func (v Value) String() string {
	if !v.known {
		return "<absent>"
	}

	return v.text
}
