package ast

import "github.com/Azzajazz/lcl/internal/token"

// IfStmt is `if cond scope`, optionally followed by an `else scope`
// attached directly to the node. The grammar still recognizes `else`
// as its own statement form at parse time, but the parser only
// accepts it immediately after the `if` it belongs to (in the same
// scope) and links it here rather than leaving it as a free-standing
// sibling statement.
type IfStmt struct {
	Cond Expr
	Body *Scope
	Else *Scope // nil when there is no else branch
	Tok  token.Token
}

func (s *IfStmt) Pos() token.Span {
	end := s.Body.Pos().End
	if s.Else != nil {
		end = s.Else.Pos().End
	}
	return token.Span{Start: s.Tok.Span.Start, End: end}
}
func (s *IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	out := "if " + s.Cond.String() + " " + s.Body.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt is `while cond scope`.
type WhileStmt struct {
	Cond Expr
	Body *Scope
	Tok  token.Token
}

func (s *WhileStmt) Pos() token.Span { return token.Span{Start: s.Tok.Span.Start, End: s.Body.Pos().End} }
func (s *WhileStmt) stmtNode()       {}
func (s *WhileStmt) String() string  { return "while " + s.Cond.String() + " " + s.Body.String() }
