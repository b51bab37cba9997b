package parser

import (
	"testing"

	"github.com/Azzajazz/lcl/internal/ast"
	"github.com/Azzajazz/lcl/internal/lexer"
)

func parseProgram(t *testing.T, input string) (*ast.Program, []*ParseError) {
	t.Helper()
	arena := ast.NewArena()
	prog, errs := ParseProgram(lexer.New(input), arena)
	return prog, errs
}

func TestParseEmptyUnitFunction(t *testing.T) {
	prog, errs := parseProgram(t, "f :: func () {}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("len(Functions) = %d, want 1", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name != "f" || fn.ReturnType != ast.TypeUnit || len(fn.Args) != 0 {
		t.Fatalf("unexpected function: %+v", fn)
	}
}

func TestParseReturnConstant(t *testing.T) {
	prog, errs := parseProgram(t, "f :: func () -> int { return 42; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn := prog.Functions[0]
	if fn.ReturnType != ast.TypeInt {
		t.Fatalf("ReturnType = %s, want int", fn.ReturnType)
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.Return", fn.Body.Statements[0])
	}
	lit, ok := ret.Expr.(*ast.IntLit)
	if !ok || lit.Value != 42 {
		t.Fatalf("return expr = %#v, want IntLit(42)", ret.Expr)
	}
}

func TestParsePrecedenceNoExtraParens(t *testing.T) {
	prog, errs := parseProgram(t, `g :: func () -> int {
		x : int;
		x = 1 + 2 * 3;
		return x;
	}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assign := prog.Functions[0].Body.Statements[1].(*ast.Assignment)
	top := assign.Expr.(*ast.BinaryExpr)
	if top.Op != ast.OpPlus {
		t.Fatalf("top operator = %s, want +", top.Op)
	}
	right := top.Right.(*ast.BinaryExpr)
	if right.Op != ast.OpTimes {
		t.Fatalf("right operator = %s, want *", right.Op)
	}
}

func TestParseForcedParens(t *testing.T) {
	prog, errs := parseProgram(t, `g :: func () -> int { return (1 + 2) * 3; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ret := prog.Functions[0].Body.Statements[0].(*ast.Return)
	top := ret.Expr.(*ast.BinaryExpr)
	if top.Op != ast.OpTimes {
		t.Fatalf("top operator = %s, want *", top.Op)
	}
	if _, ok := top.Left.(*ast.BinaryExpr); !ok {
		t.Fatalf("left operand = %T, want *ast.BinaryExpr", top.Left)
	}
}

func TestParseIfElseAttachesToIf(t *testing.T) {
	prog, errs := parseProgram(t, `f :: func () -> int {
		if 1 == 1 {
			return 1;
		} else {
			return 0;
		}
	}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ifStmt := prog.Functions[0].Body.Statements[0].(*ast.IfStmt)
	if ifStmt.Else == nil {
		t.Fatal("Else = nil, want attached else scope")
	}
}

func TestParseElseWithoutIfIsAnError(t *testing.T) {
	_, errs := parseProgram(t, `f :: func () { else { } }`)
	found := false
	for _, e := range errs {
		if e.Code == ErrElseWithoutIf {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %v, want one with code %s", errs, ErrElseWithoutIf)
	}
}

func TestParseArgsAcceptAnyPrimitiveType(t *testing.T) {
	prog, errs := parseProgram(t, `f :: func (a: int, b: bool) {}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	args := prog.Functions[0].Args
	if len(args) != 2 || args[0].Type != ast.TypeInt || args[1].Type != ast.TypeBool {
		t.Fatalf("args = %+v", args)
	}
}

func TestParseWhileWithEquality(t *testing.T) {
	prog, errs := parseProgram(t, `h :: func () {
		x : int;
		x = 0;
		while x == 10 { x = x + 1; }
	}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	while := prog.Functions[0].Body.Statements[2].(*ast.WhileStmt)
	cond := while.Cond.(*ast.BinaryExpr)
	if cond.Op != ast.OpEq {
		t.Fatalf("condition operator = %s, want ==", cond.Op)
	}
}

func TestParseUnaryMinusFoldsToZeroMinus(t *testing.T) {
	prog, errs := parseProgram(t, `f :: func () -> int { return -5; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ret := prog.Functions[0].Body.Statements[0].(*ast.Return)
	bin, ok := ret.Expr.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpMinus {
		t.Fatalf("expr = %#v, want BinaryExpr(Minus)", ret.Expr)
	}
	left := bin.Left.(*ast.IntLit)
	if left.Value != 0 {
		t.Fatalf("left = %d, want 0", left.Value)
	}
}

func TestScopeIDsAreUniqueAndPreOrder(t *testing.T) {
	prog, errs := parseProgram(t, `f :: func () {
		if 1 == 1 {
			while 1 == 1 {}
		}
	}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	body := prog.Functions[0].Body
	ifStmt := body.Statements[0].(*ast.IfStmt)
	whileStmt := ifStmt.Body.Statements[0].(*ast.WhileStmt)

	seen := map[ast.ScopeID]bool{body.ID: true}
	for _, id := range []ast.ScopeID{ifStmt.Body.ID, whileStmt.Body.ID} {
		if seen[id] {
			t.Fatalf("duplicate scope id %d", id)
		}
		seen[id] = true
	}
	if !(body.ID < ifStmt.Body.ID && ifStmt.Body.ID < whileStmt.Body.ID) {
		t.Fatalf("scope ids not assigned pre-order: %d, %d, %d", body.ID, ifStmt.Body.ID, whileStmt.Body.ID)
	}
}

func TestParseRecoversAfterMissingSemicolon(t *testing.T) {
	prog, errs := parseProgram(t, `f :: func () -> int {
		x : int
		return 1;
	}`)
	if len(errs) == 0 {
		t.Fatal("expected a missing-semicolon error")
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("len(Functions) = %d, want 1 (parsing should continue after recovery)", len(prog.Functions))
	}
}

func TestParseMultipleTopLevelFunctions(t *testing.T) {
	prog, errs := parseProgram(t, `a :: func () {} b :: func () {}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Functions) != 2 {
		t.Fatalf("len(Functions) = %d, want 2", len(prog.Functions))
	}
}
