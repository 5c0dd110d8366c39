// Package parser implements a table-driven recursive-descent front end
// with Pratt-style precedence climbing for expressions (spec.md §4.G).
// Generalized from the teacher's internal/parser/parser.go, which used a
// flat map[TokenType]int precedence table; this version keeps its
// structure — a Parser walking a token slice, an Errors slice, recovery at
// statement boundaries (a failed CheckRequired records the error and
// panics; declaration recovers and synchronizes, so Parse itself does not
// panic) — but replaces the table with a true
// Pratt rule table (rules.go) and adds newline-sensitivity per
// spec.md §4.G and _examples/original_source/src/support/parse.h's
// sparser struct (the "nl" field).
package parser

import (
	"strconv"

	"morpho/internal/errors"
	"morpho/internal/lexer"
)

// Parser holds the parse-time state: the token stream, the current
// position, accumulated errors, and whether a newline preceded the
// current token (spec.md §4.G "advance ... recording whether a newline
// preceded it").
type Parser struct {
	tokens  []lexer.Token
	current int

	Errors []error

	file        string
	sourceLines []string

	newlineSeen bool

	Output NodeSink
}

// NewParser returns a parser ready to consume tokens.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// NewParserWithSource attaches source text so errors can quote the
// offending line, and a file name for diagnostics.
func NewParserWithSource(tokens []lexer.Token, source, file string) *Parser {
	p := NewParser(tokens)
	p.file = file
	p.sourceLines = splitLines(source)
	return p
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// Init resets the parser onto a fresh token stream, the spec's
// "init(lexer, error-sink, output)" operation (spec.md §4.G); Go passes
// tokens directly rather than a lexer handle, since tokenizing is an
// external collaborator here (spec.md §1).
func (p *Parser) Init(tokens []lexer.Token, sink NodeSink) {
	p.tokens = tokens
	p.current = 0
	p.Errors = nil
	p.newlineSeen = false
	p.Output = sink
}

// Parse consumes the whole token stream and returns the top-level
// statements successfully parsed; diagnostics accumulate in p.Errors
// rather than aborting (spec.md §4.G, §7 "enters synchronizing recovery").
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
			if p.Output != nil {
				p.Output.Emit("stmt", stmt)
			}
		}
	}
	return stmts
}

func (p *Parser) declaration() Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()
	if p.CheckAdvance(lexer.TokenClass) {
		return p.classDeclaration()
	}
	if p.CheckAdvance(lexer.TokenFn) {
		return p.function()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() Stmt {
	nameTok := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectClassName)
	stmt := &ClassStmt{Name: nameTok.Lexeme}

	if p.CheckAdvance(lexer.TokenIs) {
		parent := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectSuperclass)
		stmt.Parents = append(stmt.Parents, parent.Lexeme)
		for p.CheckAdvance(lexer.TokenComma) {
			next := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectSuperclass)
			stmt.Parents = append(stmt.Parents, next.Lexeme)
		}
	}

	p.CheckRequired(lexer.TokenLBrace, errors.ParseClassMissingLeftBrace)
	for !p.Check(lexer.TokenRBrace) && !p.isAtEnd() {
		if p.CheckAdvance(lexer.TokenFn) {
			stmt.Methods = append(stmt.Methods, p.function().(*FunctionStmt))
			continue
		}
		field := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectFieldName)
		stmt.Fields = append(stmt.Fields, field.Lexeme)
		p.CheckAdvance(lexer.TokenSemi)
	}
	p.CheckRequired(lexer.TokenRBrace, errors.ParseClassMissingRightBrace)

	return stmt
}

func (p *Parser) function() Stmt {
	nameTok := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectFunctionName)
	p.CheckRequired(lexer.TokenLParen, errors.ParseExpectLeftParen)

	var params []string
	if !p.Check(lexer.TokenRParen) {
		params = append(params, p.CheckRequired(lexer.TokenIdent, errors.ParseExpectParamName).Lexeme)
		for p.CheckAdvance(lexer.TokenComma) {
			params = append(params, p.CheckRequired(lexer.TokenIdent, errors.ParseExpectParamName).Lexeme)
		}
	}
	p.CheckRequired(lexer.TokenRParen, errors.ParseExpectRightParen)
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	body := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)

	return &FunctionStmt{Name: nameTok.Lexeme, Params: params, Body: body}
}

func (p *Parser) blockStatements() []Stmt {
	var stmts []Stmt
	for !p.Check(lexer.TokenRBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts
}

func (p *Parser) statement() Stmt {
	switch {
	case p.CheckAdvance(lexer.TokenImport):
		return p.importStatement()
	case p.CheckAdvance(lexer.TokenIf):
		return p.ifStatement()
	case p.CheckAdvance(lexer.TokenWhile):
		return p.whileStatement()
	case p.CheckAdvance(lexer.TokenFor):
		return p.forStatement()
	case p.CheckAdvance(lexer.TokenVar):
		return p.varStatement()
	case p.CheckAdvance(lexer.TokenReturn):
		return p.returnStatement()
	case p.CheckAdvance(lexer.TokenBreak):
		p.CheckAdvance(lexer.TokenSemi)
		return &BreakStmt{}
	case p.CheckAdvance(lexer.TokenContinue):
		p.CheckAdvance(lexer.TokenSemi)
		return &ContinueStmt{}
	case p.CheckAdvance(lexer.TokenTry):
		return p.tryStatement()
	}

	expr := p.expression(PrecLowest)
	p.CheckAdvance(lexer.TokenSemi)
	return &ExpressionStmt{Expr: expr}
}

func (p *Parser) varStatement() Stmt {
	nameTok := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectVarName)
	p.CheckRequired(lexer.TokenAssign, errors.ParseExpectEquals)
	expr := p.expression(PrecLowest)
	p.CheckAdvance(lexer.TokenSemi)
	return &VarStmt{Name: nameTok.Lexeme, Expr: expr}
}

func (p *Parser) returnStatement() Stmt {
	var value Expr
	if !p.Check(lexer.TokenSemi) && !p.Check(lexer.TokenRBrace) && !p.isAtEnd() {
		value = p.expression(PrecLowest)
	}
	p.CheckAdvance(lexer.TokenSemi)
	return &ReturnStmt{Value: value}
}

func (p *Parser) importStatement() Stmt {
	var path, alias string
	if p.Check(lexer.TokenString) {
		path = p.Advance().Lexeme
	} else {
		path = p.CheckRequired(lexer.TokenIdent, errors.ParseImportMissingName).Lexeme
	}
	if p.CheckAdvance(lexer.TokenAs) {
		alias = p.CheckRequired(lexer.TokenIdent, errors.ParseExpectAlias).Lexeme
	}
	p.CheckAdvance(lexer.TokenSemi)
	return &ImportStmt{Path: path, Alias: alias}
}

func (p *Parser) ifStatement() Stmt {
	cond := p.expression(PrecLowest)
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	thenBranch := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)

	var elseBranch []Stmt
	if p.CheckAdvance(lexer.TokenElse) {
		if p.CheckAdvance(lexer.TokenIf) {
			elseBranch = []Stmt{p.ifStatement()}
		} else {
			p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
			elseBranch = p.blockStatements()
			p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)
		}
	}
	return &IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	cond := p.expression(PrecLowest)
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	body := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)
	return &WhileStmt{Condition: cond, Body: body}
}

func (p *Parser) forStatement() Stmt {
	if p.checkNext(lexer.TokenIn) {
		variable := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectVarName).Lexeme
		p.CheckRequired(lexer.TokenIn, errors.ParseExpectIn)
		collection := p.expression(PrecLowest)
		p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
		body := p.blockStatements()
		p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)
		return &ForInStmt{Variable: variable, Collection: collection, Body: body}
	}

	p.CheckRequired(lexer.TokenLParen, errors.ParseExpectLeftParen)
	var init Stmt
	if !p.Check(lexer.TokenSemi) {
		if p.CheckAdvance(lexer.TokenVar) {
			init = p.varStatement()
		} else {
			init = &ExpressionStmt{Expr: p.expression(PrecLowest)}
			p.CheckAdvance(lexer.TokenSemi)
		}
	} else {
		p.Advance()
	}

	var cond Expr
	if !p.Check(lexer.TokenSemi) {
		cond = p.expression(PrecLowest)
	}
	p.CheckRequired(lexer.TokenSemi, errors.ParseExpectSemicolon)

	var update Expr
	if !p.Check(lexer.TokenRParen) {
		update = p.expression(PrecLowest)
	}
	p.CheckRequired(lexer.TokenRParen, errors.ParseExpectRightParen)

	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	body := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)

	return &ForStmt{Init: init, Condition: cond, Update: update, Body: body}
}

func (p *Parser) tryStatement() Stmt {
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	body := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)

	p.CheckRequired(lexer.TokenCatch, errors.ParseExpectCatch)
	var name string
	if p.Check(lexer.TokenIdent) {
		name = p.Advance().Lexeme
	}
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	catchBody := p.blockStatements()
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)

	return &TryStmt{Body: body, CatchName: name, Catch: catchBody}
}

// --- Expression parsing (Pratt/precedence climbing, spec.md §4.G) ---

// expression parses at minimum precedence minPrec: dispatch on the
// current token's prefix handler (emitting PARSE_EXPECTEXPRESSION if
// absent), then repeatedly apply infix handlers whose precedence is >=
// minPrec. Right-associative operators recurse at their own precedence
// rather than precedence+1 (spec.md §4.G).
func (p *Parser) expression(minPrec Precedence) Expr {
	tok := p.peek()
	rule := GetRule(tok.Type)
	if rule.Prefix == nil {
		p.errorAt(errors.ParseExpectExpression, tok)
		panic(p.lastError())
	}
	p.Advance()
	left := rule.Prefix(p)

	for {
		if p.newlineSeen && !p.Check(lexer.TokenDot) {
			break
		}
		next := p.peek()
		nextRule := GetRule(next.Type)
		if nextRule.Infix == nil || nextRule.Precedence < minPrec {
			break
		}
		p.Advance()
		left = nextRule.Infix(p, left)
	}
	return left
}

func parseNumber(p *Parser) Expr {
	tok := p.previous()
	val, _ := strconv.ParseFloat(tok.Lexeme, 64)
	return &Literal{Value: val}
}

func parseString(p *Parser) Expr {
	return &Literal{Value: p.previous().Lexeme}
}

func parseLiteralBool(b bool) prefixFn {
	return func(p *Parser) Expr { return &Literal{Value: b} }
}

func parseNil(p *Parser) Expr {
	return &Literal{Value: nil}
}

func parseIdent(p *Parser) Expr {
	return &Variable{Name: p.previous().Lexeme}
}

func parseSuper(p *Parser) Expr {
	p.CheckRequired(lexer.TokenDot, errors.ParseExpectDot)
	method := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectMethodName)
	return &SuperExpr{Method: method.Lexeme}
}

func parseGrouping(p *Parser) Expr {
	expr := p.expression(PrecLowest)
	p.CheckRequired(lexer.TokenRParen, errors.ParseExpectRightParen)
	return expr
}

func parseUnary(p *Parser) Expr {
	op := p.previous().Lexeme
	operand := p.expression(PrecUnary)
	return &UnaryExpr{Operator: op, Operand: operand}
}

func parseBinary(p *Parser, left Expr) Expr {
	opTok := p.previous()
	rule := GetRule(opTok.Type)
	nextMin := rule.Precedence + 1
	if rightAssociative[opTok.Type] {
		nextMin = rule.Precedence
	}
	right := p.expression(nextMin)
	return &Binary{Left: left, Operator: opTok.Lexeme, Right: right}
}

func parseLogical(p *Parser, left Expr) Expr {
	opTok := p.previous()
	rule := GetRule(opTok.Type)
	right := p.expression(rule.Precedence + 1)
	return &LogicalExpr{Left: left, Operator: opTok.Lexeme, Right: right}
}

func parseAssign(p *Parser, left Expr) Expr {
	name, ok := left.(*Variable)
	if !ok {
		p.errorAt(errors.ParseInvalidAssignTarget, p.previous())
		panic(p.lastError())
	}
	value := p.expression(PrecAssign)
	return &Assign{Name: name.Name, Value: value}
}

func parseCall(p *Parser, callee Expr) Expr {
	var args []Expr
	if !p.Check(lexer.TokenRParen) {
		args = append(args, p.expression(PrecLowest))
		for p.CheckAdvance(lexer.TokenComma) {
			args = append(args, p.expression(PrecLowest))
		}
	}
	p.CheckRequired(lexer.TokenRParen, errors.ParseExpectRightParen)
	return &CallExpr{Callee: callee, Args: args}
}

func parseIndex(p *Parser, object Expr) Expr {
	index := p.expression(PrecLowest)
	p.CheckRequired(lexer.TokenRBracket, errors.ParseExpectRightBracket)
	return &IndexExpr{Object: object, Index: index}
}

func parseProperty(p *Parser, object Expr) Expr {
	name := p.CheckRequired(lexer.TokenIdent, errors.ParseExpectPropertyName)
	return &PropertyExpr{Object: object, Name: name.Lexeme}
}

func parseArrayLiteral(p *Parser) Expr {
	var elements []Expr
	if !p.Check(lexer.TokenRBracket) {
		elements = append(elements, p.expression(PrecLowest))
		for p.CheckAdvance(lexer.TokenComma) {
			elements = append(elements, p.expression(PrecLowest))
		}
	}
	p.CheckRequired(lexer.TokenRBracket, errors.ParseExpectRightBracket)
	return &ArrayExpr{Elements: elements}
}

func parseBraceExpr(p *Parser) Expr {
	var stmts []Stmt
	for !p.Check(lexer.TokenRBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.CheckRequired(lexer.TokenRBrace, errors.ParseExpectRightBrace)
	return &BlockExpr{Stmts: stmts}
}

func parseIfExpr(p *Parser) Expr {
	cond := p.expression(PrecLowest)
	p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
	thenExpr := parseBraceExpr(p)
	var elseExpr Expr
	if p.CheckAdvance(lexer.TokenElse) {
		if p.Check(lexer.TokenIf) {
			p.Advance()
			elseExpr = parseIfExpr(p)
		} else {
			p.CheckRequired(lexer.TokenLBrace, errors.ParseExpectLeftBrace)
			elseExpr = parseBraceExpr(p)
		}
	}
	return &IfExpr{Cond: cond, ThenBranch: thenExpr, ElseBranch: elseExpr}
}

// --- Utility operations (spec.md §4.G public operations) ---

// Advance consumes and returns the current token, recording whether a
// newline preceded the token now becoming current (spec.md §4.G "advance
// ... recording whether a newline preceded it").
func (p *Parser) Advance() lexer.Token {
	tok := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	if !p.isAtEnd() {
		p.newlineSeen = p.peek().Line > tok.Line
	}
	return tok
}

// Check reports whether the current token has type t, without consuming
// it (spec.md §4.G "check(type) (peek-only)").
func (p *Parser) Check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// CheckAdvance consumes the current token if it has type t
// (spec.md §4.G "check-advance(type) (consume if matched)").
func (p *Parser) CheckAdvance(t lexer.TokenType) bool {
	if p.Check(t) {
		p.Advance()
		return true
	}
	return false
}

// CheckRequired consumes the current token if it has type t, or emits
// errID and enters synchronizing recovery otherwise
// (spec.md §4.G "check-required(type, error-id)").
func (p *Parser) CheckRequired(t lexer.TokenType, errID string) lexer.Token {
	if p.Check(t) {
		return p.Advance()
	}
	p.errorAt(errID, p.peek())
	panic(p.lastError())
}

// GetRule returns the rule table entry for t (spec.md §4.G "get-rule(type)").
func (p *Parser) GetRule(t lexer.TokenType) Rule { return GetRule(t) }

func (p *Parser) checkNext(t lexer.TokenType) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }
func (p *Parser) peek() lexer.Token     { return p.tokens[p.current] }
func (p *Parser) isAtEnd() bool         { return p.peek().Type == lexer.TokenEOF }

func (p *Parser) errorAt(id string, tok lexer.Token) {
	err := errors.NewParseError(id, tok.File, tok.Line, tok.Column)
	if p.sourceLines != nil && tok.Line > 0 && tok.Line <= len(p.sourceLines) {
		err = err.WithSource(p.sourceLines[tok.Line-1])
	}
	p.Errors = append(p.Errors, err)
}

func (p *Parser) lastError() error {
	return p.Errors[len(p.Errors)-1]
}

// synchronize discards tokens until a statement boundary is observed —
// a semicolon just consumed, or a token that begins a new declaration
// (spec.md §7 "enters synchronizing recovery that discards tokens until
// a statement boundary is observed").
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Type == lexer.TokenSemi {
			return
		}
		switch p.peek().Type {
		case lexer.TokenClass, lexer.TokenFn, lexer.TokenVar, lexer.TokenFor,
			lexer.TokenIf, lexer.TokenWhile, lexer.TokenReturn, lexer.TokenImport:
			return
		}
		p.Advance()
	}
}
