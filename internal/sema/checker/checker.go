// Package checker implements L's type checker over a resolved AST.
package checker

import (
	"fmt"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/sema/symbols"
	"github.com/Azzajazz/lcl/internal/sema/types"
)

// Error is one type-checking failure.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Check type-checks every function in prog against table, which must
// already be fully built (symbols.Build) with no errors. It returns
// every type error found; running it twice over the same inputs
// always yields the same error set, since checking never mutates the
// AST or the table.
func Check(prog *ast.Program, table *symbols.Table) []error {
	var errs []error
	for _, fn := range prog.Functions {
		want := types.FromPrimType(string(fn.ReturnType))
		errs = append(errs, checkScope(fn.Body, table, want)...)
	}
	return errs
}

// checkScope checks every statement in scope with expected return
// type want (the type a `return` statement directly inside this scope
// must produce).
func checkScope(scope *ast.Scope, table *symbols.Table, want types.Type) []error {
	var errs []error
	for _, stmt := range scope.Statements {
		errs = append(errs, checkStmt(scope.ID, stmt, table, want)...)
	}
	return errs
}

func checkStmt(scopeID ast.ScopeID, stmt ast.Stmt, table *symbols.Table, want types.Type) []error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return nil

	case *ast.Assignment:
		nameType, ok := table.Lookup(scopeID, s.Name)
		if !ok {
			// Already reported by the resolver; skip to avoid a
			// duplicate diagnostic for the same undeclared name.
			return nil
		}
		exprType, errs, ok2 := inferExpr(scopeID, s.Expr, table)
		if !ok2 {
			return errs
		}
		if exprType != nameType {
			errs = append(errs, &Error{Message: fmt.Sprintf(
				"cannot assign %s to %q of type %s", exprType, s.Name, nameType)})
		}
		return errs

	case *ast.Return:
		exprType, errs, ok := inferExpr(scopeID, s.Expr, table)
		if !ok {
			return errs
		}
		if exprType != want {
			errs = append(errs, &Error{Message: fmt.Sprintf(
				"returned %s, function expects %s", exprType, want)})
		}
		return errs

	case *ast.IfStmt:
		var errs []error
		condType, cerrs, ok := inferExpr(scopeID, s.Cond, table)
		errs = append(errs, cerrs...)
		if ok && condType != types.Bool {
			errs = append(errs, &Error{Message: fmt.Sprintf("if condition has type %s, want bool", condType)})
		}
		errs = append(errs, checkScope(s.Body, table, types.Unit)...)
		if s.Else != nil {
			errs = append(errs, checkScope(s.Else, table, types.Unit)...)
		}
		return errs

	case *ast.WhileStmt:
		var errs []error
		condType, cerrs, ok := inferExpr(scopeID, s.Cond, table)
		errs = append(errs, cerrs...)
		if ok && condType != types.Bool {
			errs = append(errs, &Error{Message: fmt.Sprintf("while condition has type %s, want bool", condType)})
		}
		errs = append(errs, checkScope(s.Body, table, types.Unit)...)
		return errs

	case *ast.Scope:
		return checkScope(s, table, types.Unit)

	default:
		return nil
	}
}

// inferExpr returns expr's type, any errors found within it, and
// whether a type could be determined at all (false when an identifier
// failed to resolve, already reported by the resolver, or when a type
// error inside expr leaves it without a type; those errors are
// returned).
func inferExpr(scopeID ast.ScopeID, expr ast.Expr, table *symbols.Table) (types.Type, []error, bool) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return types.Int, nil, true
	case *ast.BoolLit:
		return types.Bool, nil, true
	case *ast.Ident:
		t, ok := table.Lookup(scopeID, e.Name)
		if !ok {
			return types.Unit, nil, false
		}
		return t, nil, true
	case *ast.BinaryExpr:
		leftType, lerrs, lok := inferExpr(scopeID, e.Left, table)
		rightType, rerrs, rok := inferExpr(scopeID, e.Right, table)
		errs := append(lerrs, rerrs...)
		if !lok || !rok {
			return types.Unit, errs, false
		}
		if leftType != rightType {
			errs = append(errs, &Error{Message: fmt.Sprintf(
				"operand types differ: %s vs %s", leftType, rightType)})
			return types.Unit, errs, false
		}
		switch e.Op {
		case ast.OpPlus, ast.OpMinus, ast.OpTimes, ast.OpDivide:
			// Restrict arithmetic to int, per the redesign note: the
			// sources as written only check operand-type sameness,
			// which would accept bool + bool.
			if leftType != types.Int {
				errs = append(errs, &Error{Message: fmt.Sprintf(
					"arithmetic operator %s requires int operands, got %s", e.Op, leftType)})
				return types.Unit, errs, false
			}
			return types.Int, errs, true
		case ast.OpEq:
			return types.Bool, errs, true
		default:
			return types.Unit, errs, false
		}
	default:
		return types.Unit, nil, false
	}
}
