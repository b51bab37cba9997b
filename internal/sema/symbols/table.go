// Package symbols builds the flat scope table used by the resolver
// and type checker: a (scope, name) -> type map plus a scope -> parent
// scope map, rather than a nested-pointer chain of per-scope tables.
// scope_id is the stable cross-pass key the parser assigns, so the
// table indexes by it directly.
package symbols

import (
	"fmt"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/sema/types"
)

// Key identifies one symbol: the scope it was declared in and its
// name.
type Key struct {
	Scope ast.ScopeID
	Name  string
}

// Table is the builder's output: every declared symbol plus the
// scope-nesting structure required to resolve a name by walking
// outward from its use site.
type Table struct {
	symbols map[Key]types.Type
	parent  map[ast.ScopeID]ast.ScopeID // absent entry means "no parent"
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		symbols: make(map[Key]types.Type),
		parent:  make(map[ast.ScopeID]ast.ScopeID),
	}
}

// Define records that name has the given type in scope. It reports an
// error if (scope, name) is already defined — duplicate declarations
// are rejected, unlike the sources this design is distilled from.
func (t *Table) Define(scope ast.ScopeID, name string, typ types.Type) error {
	key := Key{Scope: scope, Name: name}
	if _, exists := t.symbols[key]; exists {
		return fmt.Errorf("%q is already declared in this scope", name)
	}
	t.symbols[key] = typ
	return nil
}

// SetParent records that child's enclosing scope is parent.
func (t *Table) SetParent(child, parent ast.ScopeID) {
	t.parent[child] = parent
}

// Lookup resolves name starting in scope and walking parent links
// outward, returning the symbol's type and whether it was found.
func (t *Table) Lookup(scope ast.ScopeID, name string) (types.Type, bool) {
	for {
		if typ, ok := t.symbols[Key{Scope: scope, Name: name}]; ok {
			return typ, true
		}
		parent, ok := t.parent[scope]
		if !ok {
			return types.Unit, false
		}
		scope = parent
	}
}

// IsDeclaredInScope reports whether name was declared directly in
// scope (not an ancestor).
func (t *Table) IsDeclaredInScope(scope ast.ScopeID, name string) bool {
	_, ok := t.symbols[Key{Scope: scope, Name: name}]
	return ok
}

// Build walks prog and populates a fresh Table: each function's body
// scope has parent none (program level); function parameters are
// registered in the body scope; declarations add (scope, name, type)
// entries; nested scopes (bare, if/while/else) recurse with their own
// scope id and the enclosing scope as parent. Errors are accumulated
// and returned rather than stopping the walk.
func Build(prog *ast.Program) (*Table, []error) {
	t := New()
	var errs []error

	for _, fn := range prog.Functions {
		t.SetParent(fn.Body.ID, ast.NoScope)
		for _, arg := range fn.Args {
			if err := t.Define(fn.Body.ID, arg.Name, types.FromPrimType(string(arg.Type))); err != nil {
				errs = append(errs, err)
			}
		}
		errs = append(errs, buildScope(t, fn.Body)...)
	}

	return t, errs
}

func buildScope(t *Table, scope *ast.Scope) []error {
	var errs []error
	for _, stmt := range scope.Statements {
		errs = append(errs, buildStmt(t, scope.ID, stmt)...)
	}
	return errs
}

func buildStmt(t *Table, scopeID ast.ScopeID, stmt ast.Stmt) []error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		if err := t.Define(scopeID, s.Name, types.FromPrimType(string(s.Type))); err != nil {
			return []error{err}
		}
		return nil
	case *ast.Scope:
		t.SetParent(s.ID, scopeID)
		return buildScope(t, s)
	case *ast.IfStmt:
		t.SetParent(s.Body.ID, scopeID)
		errs := buildScope(t, s.Body)
		if s.Else != nil {
			t.SetParent(s.Else.ID, scopeID)
			errs = append(errs, buildScope(t, s.Else)...)
		}
		return errs
	case *ast.WhileStmt:
		t.SetParent(s.Body.ID, scopeID)
		return buildScope(t, s.Body)
	default:
		// Assignment, Return: no nested scope, nothing to register.
		return nil
	}
}
