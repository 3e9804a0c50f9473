package parser

import "github.com/gomonkeylang/monkey/token"

// Precedence levels, low to high. Every binary operator maps to exactly one
// of these; CALL binds tightest because a function call's argument list
// should never be split apart by a surrounding operator.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // myFunction(x)
)

// precedences maps each infix-capable token to its precedence level. Tokens
// absent from this table (including all prefix-only tokens) are treated as
// LOWEST by peekPrecedence/curPrecedence, which is what stops
// parseExpression from trying to treat them as infix operators.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}
