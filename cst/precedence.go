package cst

import "github.com/fluxfmt/fluxfmt/token"

// Assoc is operator associativity.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
	AssocNone // equal-precedence chains at this level are an error (ambiguous-operator)
)

// precInfo is one entry of the Pratt table: a binding power and
// associativity keyed by operator token kind.
type precInfo struct {
	power int
	assoc Assoc
}

// binaryPrecedence is the full infix operator table. Higher power binds
// tighter. Multiple operators sharing a power and AssocNone trigger
// ambiguous-operator on a non-parenthesized chain.
var binaryPrecedence = map[token.Kind]precInfo{
	token.OpOrElse:     {1, AssocLeft},
	token.OpAndAlso:    {2, AssocLeft},
	token.OpOr:         {3, AssocLeft},
	token.OpAnd:        {4, AssocLeft},
	token.OpEq:         {5, AssocNone},
	token.OpNeq:        {5, AssocNone},
	token.OpLt:         {5, AssocNone},
	token.OpLe:         {5, AssocNone},
	token.OpGt:         {5, AssocNone},
	token.OpGe:         {5, AssocNone},
	token.OpPlusPlus:   {6, AssocRight},
	token.OpMinusMinus: {6, AssocRight},
	token.OpPlus:       {7, AssocLeft},
	token.OpMinus:      {7, AssocLeft},
	token.OpStar:       {8, AssocLeft},
	token.OpSlash:      {8, AssocLeft},
	token.OpRem:        {8, AssocLeft},
	token.OpSend:       {0, AssocRight},
}

// Precedence reports the Pratt binding power and associativity of a binary
// operator token kind, for callers outside cst (the docfmt builder flattens
// same-precedence chains into one group and needs this to tell "part of the
// same chain" from "a tighter nested sub-expression").
func Precedence(k token.Kind) (power int, assoc Assoc, ok bool) {
	info, found := binaryPrecedence[k]
	return info.power, info.assoc, found
}

// unaryPower binds tighter than every binary operator.
const unaryPower = 9

func isUnaryOp(k token.Kind) bool {
	return k == token.OpMinus || k == token.OpPlus || k == token.OpNot
}
