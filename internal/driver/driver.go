// Package driver owns the compilation pipeline: given source text, run
// the lexer/parser/symbol-table/resolver/checker passes in strict
// order, emit C. File reading and writing are left to the caller. Each pass fully completes, and its diagnostics are
// collected, before the next begins; a non-empty error set from one
// pass skips every later pass.
package driver

import (
	"strings"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/diag"
	"github.com/Azzajazz/lcl/internal/emitter"
	"github.com/Azzajazz/lcl/internal/lexer"
	"github.com/Azzajazz/lcl/internal/parser"
	"github.com/Azzajazz/lcl/internal/sema/checker"
	"github.com/Azzajazz/lcl/internal/sema/resolver"
	"github.com/Azzajazz/lcl/internal/sema/symbols"
	"github.com/Azzajazz/lcl/internal/token"
)

// Result is the outcome of one compilation: either C source or a list
// of diagnostics explaining why compilation failed.
type Result struct {
	C           string
	Diagnostics []diag.Diagnostic
}

// OK reports whether compilation produced output with no diagnostics.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Compile runs the full pipeline over src and returns the resulting C
// source, or the diagnostics from whichever pass failed first.
func Compile(src string) Result {
	l := lexer.New(src)
	arena := ast.NewArena()
	prog, perrs := parser.ParseProgram(l, arena)
	if len(perrs) != 0 {
		ds := make([]diag.Diagnostic, len(perrs))
		for i, e := range perrs {
			ds[i] = diag.New(diag.KindParse, e.Message, e.Span)
		}
		return Result{Diagnostics: ds}
	}

	table, serrs := symbols.Build(prog)
	if len(serrs) != 0 {
		return Result{Diagnostics: untyped(diag.KindResolve, serrs)}
	}

	if rerrs := resolver.Resolve(prog, table); len(rerrs) != 0 {
		ds := make([]diag.Diagnostic, len(rerrs))
		for i, e := range rerrs {
			re := e.(*resolver.Error)
			ds[i] = diag.New(diag.KindResolve, re.Error(), re.Span)
		}
		return Result{Diagnostics: ds}
	}

	if cerrs := checker.Check(prog, table); len(cerrs) != 0 {
		return Result{Diagnostics: untyped(diag.KindType, cerrs)}
	}

	var b strings.Builder
	if err := emitter.Emit(&b, prog); err != nil {
		return Result{Diagnostics: []diag.Diagnostic{diag.New(diag.KindType, err.Error(), token.Span{})}}
	}
	return Result{C: b.String()}
}

// untyped converts errors with no span information (symbol-table and
// type-checker errors) into zero-span diagnostics. These passes do not
// currently carry position information on their Error values; see
// DESIGN.md.
func untyped(kind diag.Kind, errs []error) []diag.Diagnostic {
	ds := make([]diag.Diagnostic, len(errs))
	for i, e := range errs {
		ds[i] = diag.New(kind, e.Error(), token.Span{})
	}
	return ds
}
