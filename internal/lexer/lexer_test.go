package lexer

import (
	"testing"

	"github.com/Azzajazz/lcl/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `func main() -> int {
	x: int;
	x = 1 + 2 * 3;
	if x == 6 {
		return x;
	} else {
		return 0;
	}
}`

	tests := []struct {
		wantType    token.Type
		wantLiteral string
	}{
		{token.FUNC, "func"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.INT_KW, "int"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.INT_KW, "int"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.STAR, "*"},
		{token.INT, "3"},
		{token.SEMI, ";"},
		{token.IF, "if"},
		{token.IDENT, "x"},
		{token.EQ, "=="},
		{token.INT, "6"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.INT, "0"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, tt.wantType)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLiteral)
		}
	}
}

func TestNextTokenMinusIsAlwaysAnOperator(t *testing.T) {
	l := New("-5")
	minus := l.NextToken()
	if minus.Type != token.MINUS {
		t.Fatalf("first token = %s, want MINUS", minus.Type)
	}
	five := l.NextToken()
	if five.Type != token.INT || five.Literal != "5" {
		t.Fatalf("second token = %s %q, want INT 5", five.Type, five.Literal)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("a b")
	peeked := l.Peek(0)
	if peeked.Literal != "a" {
		t.Fatalf("Peek(0) = %q, want a", peeked.Literal)
	}
	next := l.NextToken()
	if next.Literal != "a" {
		t.Fatalf("NextToken() after Peek = %q, want a", next.Literal)
	}
}

func TestIllegalCharacterAccumulatesError(t *testing.T) {
	l := New("x @ y")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("len(Errors()) = %d, want 1", len(l.Errors()))
	}
}

func TestBooleanKeywords(t *testing.T) {
	l := New("true false")
	if tok := l.NextToken(); tok.Type != token.TRUE {
		t.Fatalf("type = %s, want TRUE", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.FALSE {
		t.Fatalf("type = %s, want FALSE", tok.Type)
	}
}

func TestColumnsCountRunes(t *testing.T) {
	l := New("été x")
	l.NextToken() // "été" as an identifier
	x := l.NextToken()
	if x.Pos.Column != 5 {
		t.Fatalf("column = %d, want 5", x.Pos.Column)
	}
}
