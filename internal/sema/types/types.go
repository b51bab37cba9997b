// Package types defines L's closed, three-member type system.
package types

// Type is one of the three primitive types L's checker ever assigns.
// Re-encoded as a small enum rather than comparing source substrings,
// with a dedicated Unit value for the implicit function return type.
type Type int

const (
	Unit Type = iota
	Int
	Bool
)

func (t Type) String() string {
	switch t {
	case Unit:
		return "unit"
	case Int:
		return "int"
	case Bool:
		return "bool"
	default:
		return "?"
	}
}

// FromPrimType maps an ast.PrimType spelling to its Type. Callers pass
// the string form, so this package does not import package ast.
func FromPrimType(s string) Type {
	switch s {
	case "int":
		return Int
	case "bool":
		return Bool
	default:
		return Unit
	}
}
