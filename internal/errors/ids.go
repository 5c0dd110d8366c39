package errors

// Stable parser error identifiers, transcribed verbatim from
// _examples/original_source/src/support/parse.h so diagnostics stay
// compatible with user-visible tooling (spec.md §6).
const (
	ParseIncompleteExpression   = "IncExp"
	ParseMissingParenthesis     = "MssngParen"
	ParseExpectExpression       = "ExpExpr"
	ParseMissingSemicolon       = "MssngSemiVal"
	ParseMissingSemicolonExp    = "MssngExpTerm"
	ParseMissingSemicolonVar    = "MssngSemiVar"
	ParseVarExpected            = "VarExpct"
	ParseBlockTerminatorExp     = "MssngBrc"
	ParseIfLeftParenMissing     = "IfMssngLftPrn"
	ParseIfRightParenMissing    = "IfMssngRgtPrn"
	ParseWhileLeftParenMissing  = "WhlMssngLftPrn"
	ParseForLeftParenMissing    = "ForMssngLftPrn"
	ParseForSemicolonMissing    = "ForMssngSemi"
	ParseForRightParenMissing   = "ForMssngRgtPrn"
	ParseFnNameMissing          = "FnNoName"
	ParseFnLeftParenMissing     = "FnMssngLftPrn"
	ParseFnRightParenMissing    = "FnMssngRgtPrn"
	ParseFnLeftCurlyMissing     = "FnMssngLftBrc"
	ParseCallRightParenMissing  = "CllMssngRgtPrn"
	ParseExpectClassName        = "ClsNmMssng"
	ParseClassLeftCurlyMissing  = "ClsMssngLftBrc"
	ParseClassRightCurlyMissing = "ClsMssngRgtBrc"
	ParseExpectDotAfterSuper    = "ExpctDtSpr"
	ParseIncompleteStringInt    = "IntrpIncmp"
	ParseVarBlankIndex          = "EmptyIndx"
	ParseImportMissingName      = "ImprtMssngNm"
	ParseImportUnexpectedTok    = "ImprtExpctFrAs"
	ParseImportAsSymbol         = "ExpctSymblAftrAs"
	ParseImportForSymbol        = "ExpctSymblAftrFr"
	ParseExpectSuper            = "SprNmMssng"
	ParseUnrecognizedTok        = "UnrcgnzdTok"
	ParseDictSeparator          = "DctSprtr"
	ParseSwitchSeparator        = "SwtchSprtr"
	ParseDictEntrySeparator     = "DctEntrySprtr"
	ParseExpectWhile            = "ExpctWhl"
	ParseExpectCatch            = "ExpctCtch"
	ParseCatchLeftCurlyMissing  = "ExpctHndlr"
	ParseOneVariadicParam       = "OneVarPr"

	// Generic identifiers used by the table-driven Pratt engine wherever
	// a construct needs a delimiter or name the original's per-statement
	// ids didn't name individually (spec.md §4.G).
	ParseExpectLeftParen     = "MssngLftPrn"
	ParseExpectRightParen    = ParseMissingParenthesis
	ParseExpectLeftBrace     = "MssngLftBrc"
	ParseExpectRightBrace    = ParseBlockTerminatorExp
	ParseExpectRightBracket  = "MssngRgtBrkt"
	ParseExpectParamName     = "ParamNmMssng"
	ParseExpectVarName       = ParseVarExpected
	ParseExpectEquals        = "MssngEq"
	ParseExpectIn            = "MssngIn"
	ParseExpectSemicolon     = ParseForSemicolonMissing
	ParseExpectAlias         = ParseImportAsSymbol
	ParseExpectDot           = ParseExpectDotAfterSuper
	ParseExpectMethodName    = "MthdNmMssng"
	ParseExpectPropertyName  = "PrprtyNmMssng"
	ParseExpectFieldName     = "FldNmMssng"
	ParseExpectSuperclass    = ParseExpectSuper
	ParseInvalidAssignTarget = "InvldAssgnTrgt"
	ParseClassMissingLeftBrace  = ParseClassLeftCurlyMissing
	ParseClassMissingRightBrace = ParseClassRightCurlyMissing
	ParseExpectFunctionName     = ParseFnNameMissing

	// CLASS_INVK: runtime dispatch miss (spec.md §7 item 3).
	ClassInvoke = "CLASS_INVK"
)

var messages = map[string]string{
	ParseIncompleteExpression:   "Incomplete expression.",
	ParseMissingParenthesis:     "Expect ')' after expression.",
	ParseExpectExpression:       "Expected expression.",
	ParseMissingSemicolon:       "Expect ; after value.",
	ParseMissingSemicolonExp:    "Expect expression terminator (; or newline) after expression.",
	ParseMissingSemicolonVar:    "Expect ; after variable declaration.",
	ParseVarExpected:            "Variable name expected after var.",
	ParseBlockTerminatorExp:     "Expected '}' to finish block.",
	ParseIfLeftParenMissing:     "Expected '(' after if.",
	ParseIfRightParenMissing:    "Expected ')' after condition.",
	ParseWhileLeftParenMissing:  "Expected '(' after while.",
	ParseForLeftParenMissing:    "Expected '(' after for.",
	ParseForSemicolonMissing:    "Expected ';'.",
	ParseForRightParenMissing:   "Expected ')' after for clauses.",
	ParseFnNameMissing:          "Expected function or method name.",
	ParseFnLeftParenMissing:     "Expect '(' after name.",
	ParseFnRightParenMissing:    "Expect ')' after parameters.",
	ParseFnLeftCurlyMissing:     "Expect '{' before body.",
	ParseCallRightParenMissing:  "Expect ')' after arguments.",
	ParseExpectClassName:        "Expect class name.",
	ParseClassLeftCurlyMissing:  "Expect '{' before class body.",
	ParseClassRightCurlyMissing: "Expect '}' after class body.",
	ParseExpectDotAfterSuper:    "Expect '.' after 'super'",
	ParseIncompleteStringInt:    "Incomplete string after interpolation.",
	ParseVarBlankIndex:          "Empty capacity in variable declaration.",
	ParseImportMissingName:      "Import expects a module or file name.",
	ParseImportUnexpectedTok:    "Import expects a module or file name followed by for or as.",
	ParseImportAsSymbol:         "Expect symbol after as in import.",
	ParseImportForSymbol:        "Expect symbol(s) after for in import.",
	ParseExpectSuper:            "Expect superclass name.",
	ParseUnrecognizedTok:        "Encountered an unrecognized token.",
	ParseDictSeparator:          "Expected a colon separating a key/value pair in dictionary.",
	ParseSwitchSeparator:        "Expected a colon after label.",
	ParseDictEntrySeparator:     "Expected a comma or '}'.",
	ParseExpectWhile:            "Expected while after loop body.",
	ParseExpectCatch:            "Expected catch after try statement.",
	ParseCatchLeftCurlyMissing:  "Expected block of error handlers after catch.",
	ParseOneVariadicParam:       "Functions can have only one variadic parameter.",
	ClassInvoke:                 "Method not found.",
	ParseExpectLeftParen:        "Expect '(' here.",
	ParseExpectLeftBrace:        "Expect '{' here.",
	ParseExpectRightBracket:     "Expect ']' after expression.",
	ParseExpectParamName:        "Expect parameter name.",
	ParseExpectEquals:           "Expect '=' here.",
	ParseExpectIn:               "Expect 'in' after loop variable.",
	ParseExpectMethodName:       "Expect method name after '.'.",
	ParseExpectPropertyName:     "Expect property name after '.'.",
	ParseExpectFieldName:        "Expect field name.",
	ParseInvalidAssignTarget:    "Invalid assignment target.",
}

func messageFor(id string) string {
	if msg, ok := messages[id]; ok {
		return msg
	}
	return "Unknown error."
}
