package ast

import (
	"strings"

	"github.com/Azzajazz/lcl/internal/token"
)

// PrimType names a primitive type keyword as it appears in source:
// "int" or "bool". Declaration.Type and Param.Type hold one of these;
// a function with no "->" clause defaults its ReturnType to "unit".
type PrimType string

const (
	TypeInt  PrimType = "int"
	TypeBool PrimType = "bool"
	TypeUnit PrimType = "unit"
)

// Param is one typed argument in a function's argument list.
type Param struct {
	Name string
	Type PrimType
	Tok  token.Token
}

func (p *Param) Pos() token.Span { return p.Tok.Span }
func (p *Param) String() string  { return string(p.Type) + " " + p.Name }

// Function is a top-level declaration: name '::' 'func' arg-list
// ('->' type)? scope.
type Function struct {
	Name       string
	Args       []*Param
	ReturnType PrimType
	Body       *Scope
	NameTok    token.Token
}

func (f *Function) Pos() token.Span {
	return token.Span{Start: f.NameTok.Span.Start, End: f.Body.Pos().End}
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" :: func (")
	for i, p := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if f.ReturnType != TypeUnit {
		b.WriteString(" -> ")
		b.WriteString(string(f.ReturnType))
	}
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}
