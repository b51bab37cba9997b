// Package emitter writes a type-checked L program as a C translation
// unit. The algorithm (precedence-threshold parenthesization, the
// main/unit return-type overrides, one blank line between functions)
// is carried over directly from the single-pass emitter this design
// was distilled from.
package emitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/Azzajazz/lcl/internal/ast"
)

const indentUnit = "    "

// Emit writes prog to w as C source, starting with the
// `#include <stdbool.h>` prelude.
func Emit(w io.Writer, prog *ast.Program) error {
	if _, err := io.WriteString(w, "#include <stdbool.h>\n\n"); err != nil {
		return err
	}
	for i, fn := range prog.Functions {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := emitFunction(w, fn); err != nil {
			return err
		}
	}
	return nil
}

func emitFunction(w io.Writer, fn *ast.Function) error {
	switch {
	case fn.Name == "main":
		io.WriteString(w, "int ")
	case fn.ReturnType == ast.TypeUnit:
		io.WriteString(w, "void ")
	default:
		fmt.Fprintf(w, "%s ", fn.ReturnType)
	}

	fmt.Fprint(w, fn.Name)
	if err := emitArgs(w, fn.Args); err != nil {
		return err
	}
	io.WriteString(w, " ")
	return emitScope(w, 0, 0, fn.Body)
}

func emitArgs(w io.Writer, args []*ast.Param) error {
	io.WriteString(w, "(")
	for i, a := range args {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		fmt.Fprintf(w, "%s %s", a.Type, a.Name)
	}
	io.WriteString(w, ")")
	return nil
}

// emitScope writes leadingIndent levels of indentation before the
// opening brace (0 when it follows "if (...)"/"while (...)"/the
// function signature on the same line), indent+1 levels for the body
// and indent levels before the closing brace.
func emitScope(w io.Writer, leadingIndent, indent int, scope *ast.Scope) error {
	fmt.Fprintf(w, "%s{\n", strings.Repeat(indentUnit, leadingIndent))
	for _, stmt := range scope.Statements {
		if err := emitStatement(w, indent+1, stmt); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s}\n", strings.Repeat(indentUnit, indent))
	return nil
}

func emitStatement(w io.Writer, indent int, stmt ast.Stmt) error {
	pad := strings.Repeat(indentUnit, indent)
	switch s := stmt.(type) {
	case *ast.Return:
		fmt.Fprintf(w, "%sreturn ", pad)
		emitExpr(w, s.Expr, -1)
		io.WriteString(w, ";\n")
	case *ast.Declaration:
		fmt.Fprintf(w, "%s%s %s;\n", pad, s.Type, s.Name)
	case *ast.Assignment:
		fmt.Fprintf(w, "%s%s = ", pad, s.Name)
		emitExpr(w, s.Expr, -1)
		io.WriteString(w, ";\n")
	case *ast.IfStmt:
		fmt.Fprintf(w, "%sif (", pad)
		emitExpr(w, s.Cond, -1)
		io.WriteString(w, ") ")
		if err := emitScope(w, 0, indent, s.Body); err != nil {
			return err
		}
		if s.Else != nil {
			fmt.Fprintf(w, "%selse ", pad)
			if err := emitScope(w, 0, indent, s.Else); err != nil {
				return err
			}
		}
	case *ast.WhileStmt:
		fmt.Fprintf(w, "%swhile (", pad)
		emitExpr(w, s.Cond, -1)
		io.WriteString(w, ") ")
		if err := emitScope(w, 0, indent, s.Body); err != nil {
			return err
		}
	case *ast.Scope:
		return emitScope(w, indent, indent, s)
	}
	return nil
}

// emitExpr writes expr, wrapping it in parentheses iff its own
// precedence is strictly less than the surrounding precedence. A term
// (literal or identifier) never needs parentheses; pass -1 as the
// surrounding precedence at statement top level so the outermost
// expression is never parenthesized.
func emitExpr(w io.Writer, expr ast.Expr, precedence int) {
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		emitTerm(w, expr)
		return
	}

	thisPrecedence := bin.Op.Precedence()
	needParens := thisPrecedence < precedence
	if needParens {
		io.WriteString(w, "(")
	}
	emitExpr(w, bin.Left, thisPrecedence)
	fmt.Fprintf(w, " %s ", bin.Op)
	emitExpr(w, bin.Right, thisPrecedence)
	if needParens {
		io.WriteString(w, ")")
	}
}

func emitTerm(w io.Writer, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.IntLit:
		fmt.Fprintf(w, "%d", e.Value)
	case *ast.BoolLit:
		if e.Value {
			io.WriteString(w, "1")
		} else {
			io.WriteString(w, "0")
		}
	case *ast.Ident:
		io.WriteString(w, e.Name)
	}
}
