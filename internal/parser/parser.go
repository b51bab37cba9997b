// Package parser implements L's recursive-descent parser with
// precedence climbing over expressions.
//
// Key patterns, carried from this toolchain's larger parsers and
// trimmed to L's small grammar:
//   - prefix terms parsed by a switch on token type, and binary
//     operators looked up in a token-type -> ast.BinOp map
//   - an explicit precedence map driving precedence climbing
//   - panic-mode recovery via two named primitives,
//     recoverEatUntil/recoverEatUpTo, rather than ad-hoc token skipping
//   - scope ids drawn from the counter on the ast.Arena the parser is
//     given, not a package global: parses with separate arenas never
//     share state, while parses sharing one arena continue one sequence
package parser

import (
	"fmt"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/lexer"
	"github.com/Azzajazz/lcl/internal/token"
)

const (
	_ int = iota
	lowest
	// equals is the precedence of ==.
	equals
	// sum is the precedence of + and -.
	sum
	// product is the precedence of * and /.
	product
	// prefixPrec is the binding power of unary minus, higher than any
	// binary operator so that -a + b parses as (-a) + b.
	prefixPrec
)

var precedences = map[token.Type]int{
	token.EQ:    equals,
	token.PLUS:  sum,
	token.MINUS: sum,
	token.STAR:  product,
	token.SLASH: product,
}

var binOps = map[token.Type]ast.BinOp{
	token.PLUS:  ast.OpPlus,
	token.MINUS: ast.OpMinus,
	token.STAR:  ast.OpTimes,
	token.SLASH: ast.OpDivide,
	token.EQ:    ast.OpEq,
}

// Parser turns a token stream into a *ast.Program, collecting
// ParseErrors along the way rather than stopping at the first one.
type Parser struct {
	l     *lexer.Lexer
	arena *ast.Arena

	cur  token.Token
	peek token.Token

	errors []*ParseError
}

// New creates a Parser reading from l, allocating nodes in arena.
func New(l *lexer.Lexer, arena *ast.Arena) *Parser {
	p := &Parser{l: l, arena: arena}
	p.advance()
	p.advance()
	return p
}

// Errors returns every ParseError recovered during parsing.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) curIsAny(ts ...token.Type) bool {
	for _, t := range ts {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) addError(code, msg string, span token.Span) {
	p.errors = append(p.errors, &ParseError{Code: code, Message: msg, Span: span})
}

func (p *Parser) unexpected(want string) {
	p.addError(ErrUnexpectedToken,
		fmt.Sprintf("expected %s, found %q", want, p.cur.Literal),
		p.cur.Span)
}

// unexpectedIdent reports an E_EXPECTED_IDENT error, for the specific
// case where an identifier was required and some other token was found.
func (p *Parser) unexpectedIdent(want string) {
	p.addError(ErrExpectedIdent,
		fmt.Sprintf("expected %s, found %q", want, p.cur.Literal),
		p.cur.Span)
}

// expect consumes the current token if it has type t, reporting an
// error and leaving the cursor untouched otherwise.
func (p *Parser) expect(t token.Type, code, want string) bool {
	if !p.curIs(t) {
		p.addError(code, fmt.Sprintf("expected %s, found %q", want, p.cur.Literal), p.cur.Span)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return lowest
}

// ParseProgram parses a whole compilation unit: zero or more
// top-level functions up to EOF.
func ParseProgram(l *lexer.Lexer, arena *ast.Arena) (*ast.Program, []*ParseError) {
	p := New(l, arena)
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		fn := p.parseFunction()
		if fn != nil {
			prog.Functions = append(prog.Functions, fn)
		}
	}
	return prog, p.errors
}

// parseFunction parses `IDENT '::' 'func' arg-list ('->' type)? scope`.
func (p *Parser) parseFunction() *ast.Function {
	if !p.curIs(token.IDENT) {
		p.unexpectedIdent("function name")
		p.recoverEatUntil(token.RBRACE)
		return nil
	}
	nameTok := p.cur
	name := p.cur.Literal
	p.advance()

	if !p.expect(token.DCOLON, ErrUnexpectedToken, "'::'") {
		p.recoverEatUntil(token.RBRACE)
		return nil
	}
	if !p.curIs(token.FUNC) {
		p.unexpected("'func'")
		p.recoverEatUntil(token.RBRACE)
		return nil
	}
	p.advance()

	args := p.parseArgs()

	returnType := ast.TypeUnit
	if p.curIs(token.ARROW) {
		p.advance()
		t, ok := p.parseTypeKeyword()
		if ok {
			returnType = t
		}
	}

	body := p.parseScope()
	if body == nil {
		return nil
	}

	return &ast.Function{Name: name, Args: args, ReturnType: returnType, Body: body, NameTok: nameTok}
}

// parseArgs parses `'(' (IDENT ':' type (',' IDENT ':' type)*)? ')'`.
// Per the redesign note, any primitive-type keyword is accepted, not
// only `int`.
func (p *Parser) parseArgs() []*ast.Param {
	if !p.expect(token.LPAREN, ErrMissingLParen, "'('") {
		p.recoverEatUpTo(token.LBRACE)
		return nil
	}
	var args []*ast.Param
	if p.curIs(token.RPAREN) {
		p.advance()
		return args
	}
	for {
		if !p.curIs(token.IDENT) {
			p.unexpectedIdent("parameter name")
			p.recoverEatUpTo(token.RPAREN)
			break
		}
		tok := p.cur
		name := p.cur.Literal
		p.advance()
		if !p.expect(token.COLON, ErrMissingColon, "':'") {
			p.recoverEatUpTo(token.RPAREN, token.COMMA)
		}
		t, ok := p.parseTypeKeyword()
		if !ok {
			t = ast.TypeInt
		}
		args = append(args, &ast.Param{Name: name, Type: t, Tok: tok})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN, ErrMissingRParen, "')'")
	return args
}

// parseTypeKeyword accepts any primitive-type keyword.
func (p *Parser) parseTypeKeyword() (ast.PrimType, bool) {
	switch p.cur.Type {
	case token.INT_KW:
		p.advance()
		return ast.TypeInt, true
	case token.BOOL_KW:
		p.advance()
		return ast.TypeBool, true
	default:
		p.addError(ErrExpectedType, fmt.Sprintf("expected a type, found %q", p.cur.Literal), p.cur.Span)
		return "", false
	}
}

// parseScope parses `'{' statement* '}'`, drawing a fresh scope id
// before parsing the body so nested scopes receive ids in pre-order.
func (p *Parser) parseScope() *ast.Scope {
	if !p.curIs(token.LBRACE) {
		p.unexpected("'{'")
		p.recoverEatUpTo(token.LBRACE)
		if !p.curIs(token.LBRACE) {
			return nil
		}
	}
	lbrace := p.cur
	scope := p.arena.NewScope()
	scope.ID = p.arena.NewScopeID()
	scope.LBrace = lbrace
	p.advance()

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt, isElse := p.parseStatement()
		if isElse {
			marker, ok := stmt.(*elseMarker)
			if !ok {
				// The else's own scope failed to parse; the error was
				// already reported there.
				continue
			}
			// A floating else: attach it to the previous if in this
			// scope if possible, otherwise report it and move on.
			if n := len(scope.Statements); n > 0 {
				if ifStmt, ok := scope.Statements[n-1].(*ast.IfStmt); ok && ifStmt.Else == nil {
					ifStmt.Else = marker.scope
					continue
				}
			}
			p.addError(ErrElseWithoutIf, "else without a matching if", marker.scope.Pos())
			continue
		}
		if stmt != nil {
			scope.Statements = append(scope.Statements, stmt)
		}
	}

	if !p.curIs(token.EOF) {
		scope.RBrace = p.cur
		p.advance()
	} else {
		scope.RBrace = p.cur
	}
	return scope
}

// elseMarker is an internal-only Stmt used to carry a parsed `else`
// scope up to parseScope, which attaches it to the preceding if (or
// reports it as an error). It never survives into the final tree.
type elseMarker struct {
	ast.Stmt // supplies ast.Stmt's unexported marker method; never called
	scope    *ast.Scope
}

func (*elseMarker) stmtNode()            {}
func (*elseMarker) Pos() token.Span      { return token.Span{} }
func (*elseMarker) String() string       { return "else" }

// parseStatement parses one statement. The second return value is
// true only when the statement is a floating `else`, in which case
// the first return value is an *elseMarker for the caller to attach.
func (p *Parser) parseStatement() (ast.Stmt, bool) {
	switch p.cur.Type {
	case token.RETURN:
		return p.parseReturn(), false
	case token.IF:
		return p.parseIf(), false
	case token.ELSE:
		return p.parseElse(), true
	case token.WHILE:
		return p.parseWhile(), false
	case token.LBRACE:
		return p.parseScope(), false
	case token.IDENT:
		return p.parseDeclOrAssign(), false
	default:
		p.unexpected("a statement")
		p.recoverEatUntil(token.SEMI)
		return nil, false
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	tok := p.cur
	p.advance()
	expr := p.parseExpr(lowest)
	semi := p.cur
	if !p.expect(token.SEMI, ErrMissingSemicolon, "';'") {
		p.recoverEatUntil(token.SEMI)
	}
	if expr == nil {
		return nil
	}
	return &ast.Return{Expr: expr, Tok: tok, Semi: semi}
}

// parseDeclOrAssign disambiguates `IDENT ':' type ';'` from
// `IDENT '=' expr ';'` on the token following the identifier.
func (p *Parser) parseDeclOrAssign() ast.Stmt {
	tok := p.cur
	name := p.cur.Literal
	p.advance()

	switch p.cur.Type {
	case token.COLON:
		p.advance()
		t, ok := p.parseTypeKeyword()
		if !ok {
			t = ast.TypeInt
		}
		semi := p.cur
		if !p.expect(token.SEMI, ErrMissingSemicolon, "';'") {
			p.recoverEatUntil(token.SEMI)
		}
		return &ast.Declaration{Name: name, Type: t, Tok: tok, Semi: semi}
	case token.ASSIGN:
		p.advance()
		expr := p.parseExpr(lowest)
		semi := p.cur
		if !p.expect(token.SEMI, ErrMissingSemicolon, "';'") {
			p.recoverEatUntil(token.SEMI)
		}
		if expr == nil {
			return nil
		}
		return &ast.Assignment{Name: name, Expr: expr, Tok: tok, Semi: semi}
	default:
		p.addError(ErrUnexpectedToken,
			fmt.Sprintf("expected ':' or '=' after identifier, found %q", p.cur.Literal), p.cur.Span)
		p.recoverEatUntil(token.SEMI)
		return nil
	}
}

func (p *Parser) parseIf() ast.Stmt {
	tok := p.cur
	p.advance()
	cond := p.parseExpr(lowest)
	body := p.parseScope()
	if cond == nil || body == nil {
		return nil
	}
	return &ast.IfStmt{Cond: cond, Body: body, Tok: tok}
}

func (p *Parser) parseElse() ast.Stmt {
	p.advance()
	scope := p.parseScope()
	if scope == nil {
		return nil
	}
	return &elseMarker{scope: scope}
}

func (p *Parser) parseWhile() ast.Stmt {
	tok := p.cur
	p.advance()
	cond := p.parseExpr(lowest)
	body := p.parseScope()
	if cond == nil || body == nil {
		return nil
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Tok: tok}
}

// parseExpr implements precedence climbing: parse a prefix term, then
// while the look-ahead is an operator of precedence strictly greater
// than minPrec, consume it and recurse with minPrec = that operator's
// precedence. All operators are left-associative.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		op, isOp := binOps[p.cur.Type]
		if !isOp {
			return left
		}
		prec := precedences[p.cur.Type]
		if prec <= minPrec {
			return left
		}
		tok := p.cur
		p.advance()
		right := p.parseExpr(prec)
		if right == nil {
			return left
		}
		node := p.arena.NewBinaryExpr()
		*node = ast.BinaryExpr{Op: op, Left: left, Right: right, Tok: tok}
		left = node
	}
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.cur.Type {
	case token.INT:
		return p.parseIntLit()
	case token.TRUE, token.FALSE:
		return p.parseBoolLit()
	case token.IDENT:
		return p.parseIdent()
	case token.LPAREN:
		p.advance()
		expr := p.parseExpr(lowest)
		p.expect(token.RPAREN, ErrMissingRParen, "')'")
		return expr
	case token.MINUS:
		// Unary minus: the lexer never produces a signed literal, so
		// `-x` folds here into `0 - x`, reusing the binary Minus node
		// rather than adding a dedicated unary variant.
		tok := p.cur
		p.advance()
		operand := p.parseExprAtPrefixPrecedence()
		if operand == nil {
			return nil
		}
		zero := p.arena.NewIntLit()
		*zero = ast.IntLit{Value: 0, Tok: tok}
		node := p.arena.NewBinaryExpr()
		*node = ast.BinaryExpr{Op: ast.OpMinus, Left: zero, Right: operand, Tok: tok}
		return node
	default:
		p.addError(ErrNoPrefixParse, fmt.Sprintf("unexpected %q in expression", p.cur.Literal), p.cur.Span)
		return nil
	}
}

func (p *Parser) parseExprAtPrefixPrecedence() ast.Expr {
	return p.parseExpr(prefixPrec - 1)
}

func (p *Parser) parseIntLit() ast.Expr {
	tok := p.cur
	var value int64
	for _, r := range tok.Literal {
		value = value*10 + int64(r-'0')
	}
	p.advance()
	node := p.arena.NewIntLit()
	*node = ast.IntLit{Value: value, Tok: tok}
	return node
}

func (p *Parser) parseBoolLit() ast.Expr {
	tok := p.cur
	p.advance()
	node := p.arena.NewBoolLit()
	*node = ast.BoolLit{Value: tok.Type == token.TRUE, Tok: tok}
	return node
}

func (p *Parser) parseIdent() ast.Expr {
	tok := p.cur
	p.advance()
	node := p.arena.NewIdent()
	*node = ast.Ident{Name: tok.Literal, Tok: tok}
	return node
}
