// Package resolver checks that every identifier reference in a parsed
// program resolves to a visible declaration.
package resolver

import (
	"fmt"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/sema/symbols"
	"github.com/Azzajazz/lcl/internal/token"
)

// Error is an unresolved-identifier diagnostic.
type Error struct {
	Name string
	Span token.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("use of undeclared identifier %q", e.Name)
}

// Resolve walks every function body in prog, reporting an Error for
// each identifier reference that does not resolve under table. It
// returns every error found; prog is otherwise left unmodified.
func Resolve(prog *ast.Program, table *symbols.Table) []error {
	var errs []error
	for _, fn := range prog.Functions {
		errs = append(errs, resolveScope(fn.Body, table)...)
	}
	return errs
}

func resolveScope(scope *ast.Scope, table *symbols.Table) []error {
	var errs []error
	for _, stmt := range scope.Statements {
		errs = append(errs, resolveStmt(scope.ID, stmt, table)...)
	}
	return errs
}

func resolveStmt(scopeID ast.ScopeID, stmt ast.Stmt, table *symbols.Table) []error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return nil
	case *ast.Assignment:
		var errs []error
		if _, ok := table.Lookup(scopeID, s.Name); !ok {
			errs = append(errs, &Error{Name: s.Name, Span: s.Pos()})
		}
		errs = append(errs, resolveExpr(scopeID, s.Expr, table)...)
		return errs
	case *ast.Return:
		return resolveExpr(scopeID, s.Expr, table)
	case *ast.IfStmt:
		errs := resolveExpr(scopeID, s.Cond, table)
		errs = append(errs, resolveScope(s.Body, table)...)
		if s.Else != nil {
			errs = append(errs, resolveScope(s.Else, table)...)
		}
		return errs
	case *ast.WhileStmt:
		errs := resolveExpr(scopeID, s.Cond, table)
		errs = append(errs, resolveScope(s.Body, table)...)
		return errs
	case *ast.Scope:
		return resolveScope(s, table)
	default:
		return nil
	}
}

func resolveExpr(scopeID ast.ScopeID, expr ast.Expr, table *symbols.Table) []error {
	switch e := expr.(type) {
	case *ast.Ident:
		if _, ok := table.Lookup(scopeID, e.Name); !ok {
			return []error{&Error{Name: e.Name, Span: e.Pos()}}
		}
		return nil
	case *ast.BinaryExpr:
		errs := resolveExpr(scopeID, e.Left, table)
		errs = append(errs, resolveExpr(scopeID, e.Right, table)...)
		return errs
	default:
		// IntLit, BoolLit: nothing to resolve.
		return nil
	}
}
