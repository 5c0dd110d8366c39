package parser

// Stmt is a parsed statement node. Generalized from the teacher's
// internal/parser/stmt.go, which this keeps the shape of.
type Stmt interface {
	Accept(visitor StmtVisitor) interface{}
}

type StmtVisitor interface {
	VisitExpressionStmt(e *ExpressionStmt) interface{}
	VisitVarStmt(v *VarStmt) interface{}
	VisitReturnStmt(r *ReturnStmt) interface{}
	VisitIfStmt(i *IfStmt) interface{}
	VisitWhileStmt(w *WhileStmt) interface{}
	VisitForStmt(f *ForStmt) interface{}
	VisitForInStmt(f *ForInStmt) interface{}
	VisitImportStmt(i *ImportStmt) interface{}
	VisitFunctionStmt(f *FunctionStmt) interface{}
	VisitClassStmt(c *ClassStmt) interface{}
	VisitBreakStmt(b *BreakStmt) interface{}
	VisitContinueStmt(c *ContinueStmt) interface{}
	VisitTryStmt(t *TryStmt) interface{}
}

// ExpressionStmt wraps an expression evaluated for effect.
type ExpressionStmt struct {
	Expr Expr
}

func (e *ExpressionStmt) Accept(v StmtVisitor) interface{} { return v.VisitExpressionStmt(e) }

// VarStmt declares a variable: var name = expr.
type VarStmt struct {
	Name string
	Expr Expr
}

func (s *VarStmt) Accept(v StmtVisitor) interface{} { return v.VisitVarStmt(s) }

// ReturnStmt returns Value (nil for a bare "return").
type ReturnStmt struct {
	Value Expr
}

func (r *ReturnStmt) Accept(v StmtVisitor) interface{} { return v.VisitReturnStmt(r) }

// IfStmt is a statement-form conditional with optional else branch.
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

func (i *IfStmt) Accept(v StmtVisitor) interface{} { return v.VisitIfStmt(i) }

// WhileStmt is a condition-checked loop.
type WhileStmt struct {
	Condition Expr
	Body      []Stmt
}

func (w *WhileStmt) Accept(v StmtVisitor) interface{} { return v.VisitWhileStmt(w) }

// ForStmt is a C-style three-clause loop.
type ForStmt struct {
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      []Stmt
}

func (f *ForStmt) Accept(v StmtVisitor) interface{} { return v.VisitForStmt(f) }

// ForInStmt is a "for x in collection { ... }" loop.
type ForInStmt struct {
	Variable   string
	Collection Expr
	Body       []Stmt
}

func (f *ForInStmt) Accept(v StmtVisitor) interface{} { return v.VisitForInStmt(f) }

// ImportStmt is "import path [as alias]"; module resolution is an
// external collaborator (spec.md §1 "Out of scope").
type ImportStmt struct {
	Path  string
	Alias string
}

func (i *ImportStmt) Accept(v StmtVisitor) interface{} { return v.VisitImportStmt(i) }

// FunctionStmt is a named function declaration.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (f *FunctionStmt) Accept(v StmtVisitor) interface{} { return v.VisitFunctionStmt(f) }

// ClassStmt is a class declaration. Parents carries every class named
// after "is" in declaration order — generalized from the teacher's single
// "Superclass string" field so a source-level class can declare multiple
// inheritance the way class.Class.AddParent supports (spec.md §4.G "class
// D inherits B, C", §3 "parents — ordered sequence ... multiple
// inheritance supported, order significant").
type ClassStmt struct {
	Name    string
	Parents []string
	Methods []*FunctionStmt
	Fields  []string
}

func (c *ClassStmt) Accept(v StmtVisitor) interface{} { return v.VisitClassStmt(c) }

// BreakStmt exits the nearest enclosing loop.
type BreakStmt struct{}

func (b *BreakStmt) Accept(v StmtVisitor) interface{} { return v.VisitBreakStmt(b) }

// ContinueStmt skips to the next iteration of the nearest enclosing loop.
type ContinueStmt struct{}

func (c *ContinueStmt) Accept(v StmtVisitor) interface{} { return v.VisitContinueStmt(c) }

// TryStmt is "try { ... } catch name { ... }", matching spec.md §7 item 3
// ("allowing user-level try/catch to observe it").
type TryStmt struct {
	Body      []Stmt
	CatchName string
	Catch     []Stmt
}

func (t *TryStmt) Accept(v StmtVisitor) interface{} { return v.VisitTryStmt(t) }
