package cst

import "github.com/rangkaian/kompilator/pkg/token"

// Non-terminal names. These double as the Kind on every produced Node and
// as map keys into the grammar table below. The set and the productions
// are grounded directly on original_source/src/parser2.py (one grammar()
// method per ParseNode subclass there, one table entry here) and spec
// §4.1's "Grammar highlights", with two deliberate departures noted at the
// relevant rule.
const (
	NTProgram               NonTerminal = "Program"
	NTProgramHeader         NonTerminal = "ProgramHeader"
	NTDeclarationPart       NonTerminal = "DeclarationPart"
	NTConstSection          NonTerminal = "ConstSection"
	NTConstDeclaration      NonTerminal = "ConstDeclaration"
	NTConstItem             NonTerminal = "ConstItem"
	NTConstItemTail         NonTerminal = "ConstItemTail"
	NTTypeSection           NonTerminal = "TypeSection"
	NTTypeDeclaration       NonTerminal = "TypeDeclaration"
	NTTypeItem              NonTerminal = "TypeItem"
	NTTypeItemTail          NonTerminal = "TypeItemTail"
	NTTypeDefinition        NonTerminal = "TypeDefinition"
	NTType                  NonTerminal = "Type"
	NTArrayType             NonTerminal = "ArrayType"
	NTRecordType            NonTerminal = "RecordType"
	NTFieldList             NonTerminal = "FieldList"
	NTFieldListTail         NonTerminal = "FieldListTail"
	NTRange                 NonTerminal = "Range"
	NTVarSection            NonTerminal = "VarSection"
	NTVarDeclaration        NonTerminal = "VarDeclaration"
	NTVarItem               NonTerminal = "VarItem"
	NTVarItemTail           NonTerminal = "VarItemTail"
	NTIdentifierList        NonTerminal = "IdentifierList"
	NTIdentifierListTail    NonTerminal = "IdentifierListTail"
	NTSubprogramSection     NonTerminal = "SubprogramSection"
	NTSubprogramDeclaration NonTerminal = "SubprogramDeclaration"
	NTProcedureDeclaration  NonTerminal = "ProcedureDeclaration"
	NTFunctionDeclaration   NonTerminal = "FunctionDeclaration"
	NTFormalParameterList   NonTerminal = "FormalParameterList"
	NTParameterGroup        NonTerminal = "ParameterGroup"
	NTParameterGroupTail    NonTerminal = "ParameterGroupTail"
	NTParameterModifier     NonTerminal = "ParameterModifier"
	NTBlock                 NonTerminal = "Block"
	NTCompoundStatement     NonTerminal = "CompoundStatement"
	NTStatementList         NonTerminal = "StatementList"
	NTStatementListTail     NonTerminal = "StatementListTail"
	NTStatement             NonTerminal = "Statement"
	NTAssignmentStatement   NonTerminal = "AssignmentStatement"
	NTIfStatement           NonTerminal = "IfStatement"
	NTWhileStatement        NonTerminal = "WhileStatement"
	NTForStatement          NonTerminal = "ForStatement"
	NTRepeatStatement       NonTerminal = "RepeatStatement"
	NTCaseStatement         NonTerminal = "CaseStatement"
	NTCaseList              NonTerminal = "CaseList"
	NTCaseListTail          NonTerminal = "CaseListTail"
	NTCaseElement           NonTerminal = "CaseElement"
	NTEmptyStatement        NonTerminal = "EmptyStatement"
	NTExpressionStatement   NonTerminal = "ExpressionStatement"
	NTExpression            NonTerminal = "Expression"
	NTSimpleExpression      NonTerminal = "SimpleExpression"
	NTSimpleExpressionTail  NonTerminal = "SimpleExpressionTail"
	NTRelationalOperator    NonTerminal = "RelationalOperator"
	NTTerm                  NonTerminal = "Term"
	NTTermTail              NonTerminal = "TermTail"
	NTMultiplicativeOperator NonTerminal = "MultiplicativeOperator"
	NTAdditiveOperator      NonTerminal = "AdditiveOperator"
	NTFactor                NonTerminal = "Factor"
	NTCall                  NonTerminal = "Call"
	NTParameterList         NonTerminal = "ParameterList"
	NTParameterListTail     NonTerminal = "ParameterListTail"
	NTValue                 NonTerminal = "Value"
	NTNumber                NonTerminal = "Number"
	NTFieldAccess           NonTerminal = "FieldAccess"
	NTFieldAccessTail       NonTerminal = "FieldAccessTail"
)

// grammar is the static alternatives table the parser drives off of.
// Empty-production alternatives (Alternative{}) are always listed last,
// realizing "zero or more" via right-recursive *Tail non-terminals (spec
// §4.1).
var grammar = map[NonTerminal][]Alternative{
	NTProgram: {
		{NTProgramHeader, NTDeclarationPart, NTCompoundStatement, T(token.DOT)},
	},
	NTProgramHeader: {
		{TL(token.KEYWORD, "program"), T(token.IDENTIFIER), T(token.SEMICOLON)},
	},
	NTDeclarationPart: {
		{NTConstSection, NTTypeSection, NTVarSection, NTSubprogramSection},
	},

	// --- const section ---
	NTConstSection: {
		{NTConstDeclaration, NTConstSection},
		{},
	},
	NTConstDeclaration: {
		{TL(token.KEYWORD, "konstanta"), NTConstItem, NTConstItemTail},
	},
	NTConstItem: {
		{T(token.IDENTIFIER), TL(token.RELATIONAL_OPERATOR, "="), NTValue, T(token.SEMICOLON)},
	},
	NTConstItemTail: {
		{NTConstItem, NTConstItemTail},
		{},
	},

	// --- type section ---
	NTTypeSection: {
		{NTTypeDeclaration, NTTypeSection},
		{},
	},
	NTTypeDeclaration: {
		{TL(token.KEYWORD, "tipe"), NTTypeItem, NTTypeItemTail},
	},
	NTTypeItem: {
		{T(token.IDENTIFIER), TL(token.RELATIONAL_OPERATOR, "="), NTTypeDefinition, T(token.SEMICOLON)},
	},
	NTTypeItemTail: {
		{NTTypeItem, NTTypeItemTail},
		{},
	},
	NTTypeDefinition: {
		{NTType},
		{NTArrayType},
		{NTRecordType},
	},
	// Departure from original_source/src/parser2.py's TypeNode: "string" is
	// added as a primitive keyword alternative. The original grammar only
	// lists integer/real/boolean/char because its AST never resolves a
	// STRING primitive; spec §3.4/§4.3 explicitly add STRING (code 5) and
	// resolveType's primitive-name list ("integer/real/boolean/char/string"),
	// so the keyword must be reachable from a type position. "string" lexes
	// as KEYWORD (it is a reserved word, spec §3.4), not IDENTIFIER, so
	// without this alternative it could never be named in a declaration.
	NTType: {
		{TL(token.KEYWORD, "integer")},
		{TL(token.KEYWORD, "real")},
		{TL(token.KEYWORD, "boolean")},
		{TL(token.KEYWORD, "char")},
		{TL(token.KEYWORD, "string")},
		{NTArrayType},
		{T(token.IDENTIFIER)},
	},
	// Departure from original_source: the element type-definition uses
	// TypeDefinition (not Type), so an array's element may itself be an
	// anonymous array or record — spec §3.3 ArrayType's "element
	// type-definition" field and §4.3's array-construction recursion both
	// require this.
	NTArrayType: {
		{TL(token.KEYWORD, "larik"), T(token.LBRACKET), NTRange, T(token.RBRACKET), TL(token.KEYWORD, "dari"), NTTypeDefinition},
	},
	NTRecordType: {
		{TL(token.KEYWORD, "rekaman"), NTFieldList, TL(token.KEYWORD, "selesai")},
	},
	NTFieldList: {
		{NTIdentifierList, T(token.COLON), NTTypeDefinition, NTFieldListTail},
	},
	NTFieldListTail: {
		{T(token.SEMICOLON), NTFieldList},
		{},
	},
	NTRange: {
		{NTExpression, T(token.RANGE_OPERATOR), NTExpression},
	},

	// --- var section ---
	NTVarSection: {
		{NTVarDeclaration, NTVarSection},
		{},
	},
	NTVarDeclaration: {
		{TL(token.KEYWORD, "variabel"), NTVarItem, NTVarItemTail},
	},
	NTVarItem: {
		{NTIdentifierList, T(token.COLON), NTTypeDefinition, T(token.SEMICOLON)},
	},
	NTVarItemTail: {
		{NTVarItem, NTVarItemTail},
		{},
	},
	NTIdentifierList: {
		{T(token.IDENTIFIER), NTIdentifierListTail},
	},
	NTIdentifierListTail: {
		{T(token.COMMA), T(token.IDENTIFIER), NTIdentifierListTail},
		{},
	},

	// --- subprograms ---
	NTSubprogramSection: {
		{NTSubprogramDeclaration, NTSubprogramSection},
		{},
	},
	NTSubprogramDeclaration: {
		{NTProcedureDeclaration},
		{NTFunctionDeclaration},
	},
	NTProcedureDeclaration: {
		{TL(token.KEYWORD, "prosedur"), T(token.IDENTIFIER), NTFormalParameterList, T(token.SEMICOLON), NTBlock, T(token.SEMICOLON)},
		{TL(token.KEYWORD, "prosedur"), T(token.IDENTIFIER), T(token.SEMICOLON), NTBlock, T(token.SEMICOLON)},
	},
	NTFunctionDeclaration: {
		{TL(token.KEYWORD, "fungsi"), T(token.IDENTIFIER), NTFormalParameterList, T(token.COLON), NTType, T(token.SEMICOLON), NTBlock, T(token.SEMICOLON)},
		{TL(token.KEYWORD, "fungsi"), T(token.IDENTIFIER), T(token.COLON), NTType, T(token.SEMICOLON), NTBlock, T(token.SEMICOLON)},
	},
	NTFormalParameterList: {
		{T(token.LPAREN), NTParameterGroup, NTParameterGroupTail, T(token.RPAREN)},
	},
	NTParameterGroup: {
		{NTParameterModifier, NTIdentifierList, T(token.COLON), NTType},
	},
	NTParameterModifier: {
		{TL(token.KEYWORD, "variabel")},
		{},
	},
	NTParameterGroupTail: {
		{T(token.SEMICOLON), NTParameterGroup, NTParameterGroupTail},
		{T(token.SEMICOLON)},
		{},
	},
	NTBlock: {
		{NTDeclarationPart, NTCompoundStatement},
	},

	// --- statements ---
	NTCompoundStatement: {
		{TL(token.KEYWORD, "mulai"), NTStatementList, TL(token.KEYWORD, "selesai")},
	},
	NTStatementList: {
		{NTStatement, NTStatementListTail},
	},
	NTStatementListTail: {
		{T(token.SEMICOLON), NTStatement, NTStatementListTail},
		{},
	},
	NTStatement: {
		{NTAssignmentStatement},
		{NTIfStatement},
		{NTWhileStatement},
		{NTForStatement},
		{NTRepeatStatement},
		{NTCaseStatement},
		{NTCompoundStatement},
		{NTExpressionStatement},
		{NTEmptyStatement},
	},
	NTAssignmentStatement: {
		{T(token.IDENTIFIER), T(token.ASSIGN_OPERATOR), NTExpression},
		{NTFieldAccess, T(token.ASSIGN_OPERATOR), NTExpression},
	},
	NTIfStatement: {
		{TL(token.KEYWORD, "jika"), NTExpression, TL(token.KEYWORD, "maka"), NTStatement, TL(token.KEYWORD, "selain-itu"), NTStatement},
		{TL(token.KEYWORD, "jika"), NTExpression, TL(token.KEYWORD, "maka"), NTStatement},
	},
	NTWhileStatement: {
		{TL(token.KEYWORD, "selama"), NTExpression, TL(token.KEYWORD, "lakukan"), NTStatement},
	},
	NTForStatement: {
		{TL(token.KEYWORD, "untuk"), T(token.IDENTIFIER), T(token.ASSIGN_OPERATOR), NTExpression, TL(token.KEYWORD, "ke"), NTExpression, TL(token.KEYWORD, "lakukan"), NTStatement},
		{TL(token.KEYWORD, "untuk"), T(token.IDENTIFIER), T(token.ASSIGN_OPERATOR), NTExpression, TL(token.KEYWORD, "turun-ke"), NTExpression, TL(token.KEYWORD, "lakukan"), NTStatement},
	},
	NTRepeatStatement: {
		{TL(token.KEYWORD, "ulangi"), NTStatementList, TL(token.KEYWORD, "sampai"), NTExpression},
	},
	NTCaseElement: {
		{NTExpression, T(token.COLON), NTStatement},
	},
	NTCaseListTail: {
		{T(token.SEMICOLON), NTCaseElement, NTCaseListTail},
		{T(token.SEMICOLON)},
		{},
	},
	NTCaseList: {
		{NTCaseElement, NTCaseListTail},
	},
	NTCaseStatement: {
		{TL(token.KEYWORD, "kasus"), NTExpression, TL(token.KEYWORD, "dari"), NTCaseList, TL(token.KEYWORD, "selesai")},
	},
	NTEmptyStatement: {
		{},
	},
	NTExpressionStatement: {
		{NTExpression},
	},

	// --- expressions ---
	NTExpression: {
		{NTSimpleExpression, NTRelationalOperator, NTSimpleExpression},
		{NTSimpleExpression},
	},
	NTSimpleExpression: {
		{TL(token.ADDITIVE_OPERATOR, "+"), NTTerm, NTSimpleExpressionTail},
		{TL(token.ADDITIVE_OPERATOR, "-"), NTTerm, NTSimpleExpressionTail},
		{NTTerm, NTSimpleExpressionTail},
	},
	NTSimpleExpressionTail: {
		{NTAdditiveOperator, NTTerm, NTSimpleExpressionTail},
		{},
	},
	NTAdditiveOperator: {
		{TL(token.LOGICAL_OPERATOR, "atau")},
		{TL(token.ADDITIVE_OPERATOR, "+")},
		{TL(token.ADDITIVE_OPERATOR, "-")},
	},
	NTRelationalOperator: {
		{TL(token.RELATIONAL_OPERATOR, "<>")},
		{TL(token.RELATIONAL_OPERATOR, "<")},
		{TL(token.RELATIONAL_OPERATOR, "<=")},
		{TL(token.RELATIONAL_OPERATOR, ">")},
		{TL(token.RELATIONAL_OPERATOR, ">=")},
		{TL(token.RELATIONAL_OPERATOR, "=")},
	},
	NTTerm: {
		{NTFactor, NTTermTail},
	},
	NTTermTail: {
		{NTMultiplicativeOperator, NTFactor, NTTermTail},
		{},
	},
	NTMultiplicativeOperator: {
		{TL(token.MULTIPLICATIVE_OPERATOR, "*")},
		{TL(token.MULTIPLICATIVE_OPERATOR, "/")},
		{TL(token.MULTIPLICATIVE_OPERATOR, "bagi")},
		{TL(token.MULTIPLICATIVE_OPERATOR, "mod")},
		{TL(token.LOGICAL_OPERATOR, "dan")},
	},
	NTFactor: {
		{NTCall},
		{NTValue},
		{T(token.LPAREN), NTExpression, T(token.RPAREN)},
		{TL(token.LOGICAL_OPERATOR, "tidak"), NTFactor},
	},
	NTCall: {
		{T(token.IDENTIFIER), T(token.LPAREN), NTParameterList, T(token.RPAREN)},
		{T(token.IDENTIFIER), T(token.LPAREN), T(token.RPAREN)},
	},
	NTParameterList: {
		{NTExpression, NTParameterListTail},
	},
	NTParameterListTail: {
		{T(token.COMMA), NTExpression, NTParameterListTail},
		{},
	},
	NTValue: {
		{NTFieldAccess},
		{NTNumber},
		{T(token.CHAR_LITERAL)},
		{T(token.STRING_LITERAL)},
		{TL(token.KEYWORD, "benar")},
		{TL(token.KEYWORD, "salah")},
		{T(token.IDENTIFIER)},
	},
	NTNumber: {
		{T(token.NUMBER), T(token.DOT), T(token.NUMBER)},
		{T(token.NUMBER)},
	},
	NTFieldAccess: {
		{T(token.IDENTIFIER), T(token.DOT), T(token.IDENTIFIER), NTFieldAccessTail},
		{T(token.IDENTIFIER), T(token.LBRACKET), NTExpression, T(token.RBRACKET), NTFieldAccessTail},
	},
	NTFieldAccessTail: {
		{T(token.DOT), T(token.IDENTIFIER), NTFieldAccessTail},
		{T(token.LBRACKET), NTExpression, T(token.RBRACKET), NTFieldAccessTail},
		{},
	},
}
