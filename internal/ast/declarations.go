package ast

import (
	"strings"

	"github.com/Azzajazz/lcl/internal/token"
)

// Scope is a brace-delimited block of statements. Every Scope carries
// a unique, non-negative ID assigned at parse time from the monotonic
// counter on the Arena the parser allocates from; it is the key into
// the symbol table.
type Scope struct {
	Statements []Stmt
	ID         ScopeID
	LBrace     token.Token
	RBrace     token.Token
}

func (s *Scope) Pos() token.Span { return token.Span{Start: s.LBrace.Span.Start, End: s.RBrace.Span.End} }
func (s *Scope) stmtNode()       {}
func (s *Scope) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, st := range s.Statements {
		b.WriteString("    ")
		b.WriteString(st.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// Declaration introduces a name of a declared type in the enclosing
// scope: `name : type;`. It carries no expression.
type Declaration struct {
	Name string
	Type PrimType
	Tok  token.Token
	Semi token.Token
}

func (d *Declaration) Pos() token.Span { return token.Span{Start: d.Tok.Span.Start, End: d.Semi.Span.End} }
func (d *Declaration) stmtNode()       {}
func (d *Declaration) String() string  { return d.Name + " : " + string(d.Type) + ";" }

// Assignment stores the value of Expr into the previously declared
// name Name: `name = expr;`.
type Assignment struct {
	Name string
	Expr Expr
	Tok  token.Token
	Semi token.Token
}

func (a *Assignment) Pos() token.Span { return token.Span{Start: a.Tok.Span.Start, End: a.Semi.Span.End} }
func (a *Assignment) stmtNode()       {}
func (a *Assignment) String() string  { return a.Name + " = " + a.Expr.String() + ";" }

// Return yields Expr from the enclosing function: `return expr;`. Expr
// is always present.
type Return struct {
	Expr Expr
	Tok  token.Token
	Semi token.Token
}

func (r *Return) Pos() token.Span { return token.Span{Start: r.Tok.Span.Start, End: r.Semi.Span.End} }
func (r *Return) stmtNode()       {}
func (r *Return) String() string  { return "return " + r.Expr.String() + ";" }
