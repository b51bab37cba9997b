package parser

import "github.com/Azzajazz/lcl/internal/token"

// Error codes, grounded on the string-constant taxonomy used
// elsewhere in this toolchain's parsers, trimmed to what L's grammar
// can actually produce.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrMissingColon     = "E_MISSING_COLON"
	ErrMissingLParen    = "E_MISSING_LPAREN"
	ErrMissingRParen    = "E_MISSING_RPAREN"
	ErrMissingLBrace    = "E_MISSING_LBRACE"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrExpectedType     = "E_EXPECTED_TYPE"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrElseWithoutIf    = "E_ELSE_WITHOUT_IF"
)

// ParseError is one recovered parse failure.
type ParseError struct {
	Code    string
	Message string
	Span    token.Span
}

func (e *ParseError) Error() string {
	return e.Message
}
