// Package ast defines L's abstract syntax tree: a tagged variant of
// node types allocated from a stable-address arena, plus the small set
// of shared interfaces every node satisfies.
package ast

import "github.com/Azzajazz/lcl/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Span
	String() string
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// ScopeID is the monotonic identifier assigned to every brace-delimited
// block at parse time. It is the key into the symbol table.
type ScopeID int

// NoScope marks the absence of an enclosing scope (a function body's
// parent is the program itself, not another scope).
const NoScope ScopeID = -1

// Program is the ordered sequence of top-level function declarations
// that make up one compilation unit.
type Program struct {
	Functions []*Function
}

func (p *Program) Pos() token.Span {
	if len(p.Functions) == 0 {
		return token.Span{}
	}
	return token.Span{Start: p.Functions[0].Pos().Start, End: p.Functions[len(p.Functions)-1].Pos().End}
}

func (p *Program) String() string {
	var out string
	for i, f := range p.Functions {
		if i > 0 {
			out += "\n"
		}
		out += f.String()
	}
	return out
}
