package token

// Kind tags every lexical unit the lexer can produce. It also doubles as the
// node-kind discriminator used by cst.Node, so one tag set covers both
// tokens and inner tree nodes.
type Kind uint8

const (
	// EOF is the sentinel returned past the last index; Stream.Kind never
	// panics on out-of-range queries, it returns this instead.
	EOF Kind = iota
	Error

	// Trivia.
	Whitespace
	Newline
	LineComment
	MacroDirective

	// Literals.
	Atom
	Variable
	Integer
	Float
	String
	Char

	// Keywords.
	KwWhen
	KwCase
	KwOf
	KwIf
	KwTry
	KwCatch
	KwAfter
	KwReceive
	KwBegin
	KwEnd
	KwFun

	// Punctuation.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	DoubleLAngle // <<
	DoubleRAngle // >>
	Comma
	Semicolon
	Dot
	Arrow   // ->
	Pipe    // | (list cons tail, map update, guard disjunction is Semicolon)
	Hash    // # record marker
	Match   // =
	MapArrow // =>
	LArrow   // <-
	BarBar   // || (comprehension generator separator)
	Colon
	ColonColon

	// Operators (binary/unary); precedence lives in cst.Precedence, keyed by
	// these kinds.
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpRem
	OpAndAlso
	OpOrElse
	OpAnd
	OpOr
	OpNot
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpPlusPlus
	OpMinusMinus
	OpSend // !

	// Macro use token (opaque, preserved verbatim).
	MacroUse

	// Node kinds (inner/composite). Leaves stop above; everything from here
	// down only ever tags an inner cst.Node, never a lexer token.
	Module
	FunctionDef
	FunctionClause
	GuardSequence
	ExprBinaryOp
	ExprUnaryOp
	ExprCall
	ExprList
	ExprTuple
	ExprMap
	ExprRecord
	ExprBinary // binary/bitstring literal or comprehension
	ExprFun
	ExprIf
	ExprCase
	ExprTry
	ExprReceive
	ExprBeginEnd
	ExprBlock
	ExprMatch
	ExprCatch
	ExprMacroUse
	Clause
	TypeAnnotation
	PatternNode
)

// trivialKinds are never part of the AST proper; they are attached to
// neighboring nodes as trivia instead of appearing as children.
var trivialKinds = [...]bool{
	Whitespace:      true,
	Newline:         true,
	LineComment:     true,
	MacroDirective:  false, // a directive is its own top-level form
}

// IsTrivia reports whether a token kind is classified as trivia rather than
// significant. MacroDirective is significant: the parser treats "-define"
// and friends as a top-level form of their own, not as whitespace.
func (k Kind) IsTrivia() bool {
	return int(k) < len(trivialKinds) && trivialKinds[k]
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwWhen && k <= KwFun
}

// IsOperator reports whether k is a binary/unary operator token.
func (k Kind) IsOperator() bool {
	return k >= OpPlus && k <= OpSend
}

var kindNames = map[Kind]string{
	EOF: "eof", Error: "error",
	Whitespace: "whitespace", Newline: "newline", LineComment: "comment", MacroDirective: "macro-directive",
	Atom: "atom", Variable: "variable", Integer: "integer", Float: "float", String: "string", Char: "char",
	KwWhen: "when", KwCase: "case", KwOf: "of", KwIf: "if", KwTry: "try", KwCatch: "catch",
	KwAfter: "after", KwReceive: "receive", KwBegin: "begin", KwEnd: "end", KwFun: "fun",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	DoubleLAngle: "<<", DoubleRAngle: ">>", Comma: ",", Semicolon: ";", Dot: ".", Arrow: "->",
	Pipe: "|", Hash: "#", Match: "=", MapArrow: "=>", LArrow: "<-", BarBar: "||",
	Colon: ":", ColonColon: "::",
	OpPlus: "+", OpMinus: "-", OpStar: "*", OpSlash: "/", OpRem: "rem",
	OpAndAlso: "andalso", OpOrElse: "orelse", OpAnd: "and", OpOr: "or", OpNot: "not",
	OpEq: "==", OpNeq: "/=", OpLt: "<", OpLe: "=<", OpGt: ">", OpGe: ">=",
	OpPlusPlus: "++", OpMinusMinus: "--", OpSend: "!",
	MacroUse: "macro-use",
	Module: "module", FunctionDef: "function-def", FunctionClause: "function-clause",
	GuardSequence: "guard-sequence", ExprBinaryOp: "binary-op", ExprUnaryOp: "unary-op",
	ExprCall: "call", ExprList: "list", ExprTuple: "tuple", ExprMap: "map", ExprRecord: "record",
	ExprBinary: "binary", ExprFun: "fun-expr", ExprIf: "if", ExprCase: "case", ExprTry: "try",
	ExprReceive: "receive", ExprBeginEnd: "begin-end", ExprBlock: "block", ExprMatch: "match",
	ExprCatch: "catch", ExprMacroUse: "macro-use-expr", Clause: "clause",
	TypeAnnotation: "type-annotation", PatternNode: "pattern",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
