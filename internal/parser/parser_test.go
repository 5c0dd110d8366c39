package parser

import (
	"testing"

	"morpho/internal/lexer"
)

func parse(t *testing.T, src string) ([]Stmt, []error) {
	t.Helper()
	scanner := lexer.NewScanner(src, "test.mph")
	tokens := scanner.ScanTokens()
	p := NewParser(tokens)
	stmts := p.Parse()
	return stmts, p.Errors
}

func exprOf(t *testing.T, stmts []Stmt) Expr {
	t.Helper()
	if len(stmts) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*ExpressionStmt)
	if !ok {
		t.Fatalf("expected an ExpressionStmt, got %T", stmts[0])
	}
	return es.Expr
}

// 1 + 2 * 3 must bind as 1 + (2 * 3): FACTOR binds tighter than TERM
// (spec.md §4.G precedence ladder; §8 scenario 4).
func TestPrecedenceMultiplyBindsTighterThanPlus(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 * 3;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	bin, ok := exprOf(t, stmts).(*Binary)
	if !ok {
		t.Fatalf("expected top-level Binary, got %T", exprOf(t, stmts))
	}
	if bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %q", bin.Operator)
	}
	right, ok := bin.Right.(*Binary)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected right operand to be '*', got %#v", bin.Right)
	}
}

// 2 ^ 3 ^ 2 must parse as 2 ^ (3 ^ 2): POW is right-associative
// (spec.md §4.G "Right-associative operators (power, assignment) recurse
// at precedence P rather than P+1"; §8 scenario 4).
func TestPowerIsRightAssociative(t *testing.T) {
	stmts, errs := parse(t, "2 ^ 3 ^ 2;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	top, ok := exprOf(t, stmts).(*Binary)
	if !ok || top.Operator != "^" {
		t.Fatalf("expected top-level '^', got %#v", exprOf(t, stmts))
	}
	left, ok := top.Left.(*Literal)
	if !ok || left.Value != 2.0 {
		t.Fatalf("expected left operand to be literal 2, got %#v", top.Left)
	}
	right, ok := top.Right.(*Binary)
	if !ok || right.Operator != "^" {
		t.Fatalf("expected right operand to be another '^', got %#v", top.Right)
	}
}

// Assignment is right-associative too: a = b = 1 parses as a = (b = 1).
func TestAssignmentIsRightAssociative(t *testing.T) {
	stmts, errs := parse(t, "a = b = 1;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	top, ok := exprOf(t, stmts).(*Assign)
	if !ok || top.Name != "a" {
		t.Fatalf("expected top-level assign to 'a', got %#v", exprOf(t, stmts))
	}
	if _, ok := top.Value.(*Assign); !ok {
		t.Fatalf("expected nested assign, got %#v", top.Value)
	}
}

// "var = ;" is missing both a name and a value: the parser must recover
// at the next statement boundary rather than aborting the whole parse,
// and must still surface at least one error (spec.md §7 "enters
// synchronizing recovery that discards tokens until a statement boundary
// is observed"; §8 scenario 5).
func TestRecoversFromMalformedVarDeclaration(t *testing.T) {
	_, errs := parse(t, "var = ;\nvar x = 1;")
	if len(errs) == 0 {
		t.Fatal("expected at least one error from the malformed declaration")
	}
}

// Parsing must continue after a syntax error: a well-formed statement
// after a malformed one is still recovered.
func TestParsingContinuesAfterRecovery(t *testing.T) {
	stmts, errs := parse(t, "var = ;\nvar x = 1;")
	if len(errs) == 0 {
		t.Fatal("expected an error from the first statement")
	}
	found := false
	for _, s := range stmts {
		if vs, ok := s.(*VarStmt); ok && vs.Name == "x" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to still parse 'var x = 1;', got %#v", stmts)
	}
}

func TestClassDeclarationWithMultipleParents(t *testing.T) {
	stmts, errs := parse(t, `class D is B, C { fn greet() { return 1; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	cs, ok := stmts[0].(*ClassStmt)
	if !ok {
		t.Fatalf("expected ClassStmt, got %T", stmts[0])
	}
	if cs.Name != "D" {
		t.Fatalf("expected class name D, got %q", cs.Name)
	}
	if len(cs.Parents) != 2 || cs.Parents[0] != "B" || cs.Parents[1] != "C" {
		t.Fatalf("expected parents [B C], got %v", cs.Parents)
	}
	if len(cs.Methods) != 1 || cs.Methods[0].Name != "greet" {
		t.Fatalf("expected one method 'greet', got %v", cs.Methods)
	}
}

func TestClassDeclarationSingleParent(t *testing.T) {
	stmts, errs := parse(t, `class B is A { }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cs := stmts[0].(*ClassStmt)
	if len(cs.Parents) != 1 || cs.Parents[0] != "A" {
		t.Fatalf("expected parents [A], got %v", cs.Parents)
	}
}

func TestIfWhileForParse(t *testing.T) {
	src := `
if x < 10 {
  var y = 1;
} else {
  var y = 2;
}
while x < 10 {
  x = x + 1;
}
for (var i = 0; i < 10; i = i + 1) {
  var z = i;
}
for item in list {
  var w = item;
}
`
	_, errs := parse(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestCallAndIndexAndProperty(t *testing.T) {
	stmts, errs := parse(t, "foo(1, 2).bar[0];")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	idx, ok := exprOf(t, stmts).(*IndexExpr)
	if !ok {
		t.Fatalf("expected IndexExpr at top level, got %#v", exprOf(t, stmts))
	}
	prop, ok := idx.Object.(*PropertyExpr)
	if !ok || prop.Name != "bar" {
		t.Fatalf("expected PropertyExpr 'bar', got %#v", idx.Object)
	}
	if _, ok := prop.Object.(*CallExpr); !ok {
		t.Fatalf("expected CallExpr, got %#v", prop.Object)
	}
}

func TestUnaryAndLogical(t *testing.T) {
	stmts, errs := parse(t, "!a && -b;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	logical, ok := exprOf(t, stmts).(*LogicalExpr)
	if !ok || logical.Operator != "&&" {
		t.Fatalf("expected LogicalExpr '&&', got %#v", exprOf(t, stmts))
	}
	if _, ok := logical.Left.(*UnaryExpr); !ok {
		t.Fatalf("expected UnaryExpr left operand, got %#v", logical.Left)
	}
	if _, ok := logical.Right.(*UnaryExpr); !ok {
		t.Fatalf("expected UnaryExpr right operand, got %#v", logical.Right)
	}
}

func TestNodeSinkRecordsEveryTopLevelStatement(t *testing.T) {
	scanner := lexer.NewScanner("var x = 1;\nvar y = 2;", "test.mph")
	p := NewParser(scanner.ScanTokens())
	sink := NewTreeSink()
	p.Output = sink
	stmts := p.Parse()
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors)
	}
	if sink.Len() != len(stmts) {
		t.Fatalf("expected sink to record %d nodes, got %d", len(stmts), sink.Len())
	}
}
