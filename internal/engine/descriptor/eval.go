package descriptor

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/forge-api/internal/engine"
)

// Evaluation failures. All of them surface as the renderer placeholder;
// they are distinct errors so authoring tools can report the actual cause.
var (
	// ErrUnresolvedToken indicates an expression referenced a token that is
	// missing from the context or holds a non-numeric value
	ErrUnresolvedToken = errors.New("expression references an unresolved token")

	// ErrMalformedExpression indicates invalid arithmetic syntax
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrDivisionByZero indicates the expression divided by zero
	ErrDivisionByZero = errors.New("division by zero")
)

// floatEpsilon decides when a result counts as an integer for formatting
const floatEpsilon = 1e-9

type exprTokenKind int

const (
	exprNumber exprTokenKind = iota
	exprOperator
	exprLeftParen
	exprRightParen
)

// operators; opNeg is unary minus, inserted by the lexer where a value
// was expected
const (
	opAdd = '+'
	opSub = '-'
	opMul = '*'
	opDiv = '/'
	opNeg = 'n'
)

type exprToken struct {
	kind exprTokenKind
	num  float64
	op   byte
}

// precedence returns operator binding strength; unary minus binds tightest
func precedence(op byte) int {
	switch op {
	case opNeg:
		return 3
	case opMul, opDiv:
		return 2
	default:
		return 1
	}
}

// rightAssociative reports whether an operator groups right-to-left
func rightAssociative(op byte) bool {
	return op == opNeg
}

// Evaluate computes the numeric result of an arithmetic expression.
// Token references like [ArmorSkill] are resolved through the context;
// die-size values contribute their face count. Supported syntax: binary
// + - * /, parentheses, and unary minus anywhere a value is expected.
func Evaluate(expr string, ctx engine.Context) (float64, error) {
	tokens, err := lexExpression(expr, ctx)
	if err != nil {
		return 0, err
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return evalPostfix(postfix)
}

// lexExpression scans the expression into numbers and operators, resolving
// bracketed tokens against the context as it goes.
func lexExpression(expr string, ctx engine.Context) ([]exprToken, error) {
	var tokens []exprToken
	expectValue := true

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c >= '0' && c <= '9' || c == '.':
			end := i
			for end < len(expr) && (expr[end] >= '0' && expr[end] <= '9' || expr[end] == '.') {
				end++
			}
			num, err := strconv.ParseFloat(expr[i:end], 64)
			if err != nil {
				return nil, ErrMalformedExpression
			}
			tokens = append(tokens, exprToken{kind: exprNumber, num: num})
			expectValue = false
			i = end

		case c == '[':
			closing := strings.IndexByte(expr[i+1:], ']')
			if closing < 0 {
				return nil, ErrMalformedExpression
			}
			name := expr[i+1 : i+1+closing]
			value, ok := ctx[name].Numeric()
			if !ok {
				return nil, ErrUnresolvedToken
			}
			tokens = append(tokens, exprToken{kind: exprNumber, num: value})
			expectValue = false
			i += closing + 2

		case c == '(':
			tokens = append(tokens, exprToken{kind: exprLeftParen})
			expectValue = true
			i++

		case c == ')':
			tokens = append(tokens, exprToken{kind: exprRightParen})
			expectValue = false
			i++

		case c == '+' || c == '-' || c == '*' || c == '/':
			op := c
			if expectValue {
				if c != '-' {
					return nil, ErrMalformedExpression
				}
				op = opNeg
			}
			tokens = append(tokens, exprToken{kind: exprOperator, op: op})
			expectValue = true
			i++

		default:
			return nil, ErrMalformedExpression
		}
	}

	return tokens, nil
}

// toPostfix runs the shunting-yard pass: numbers go straight to output,
// operators pop higher-or-equal precedence operators first, parentheses
// group. Returns the expression in postfix order.
func toPostfix(tokens []exprToken) ([]exprToken, error) {
	output := make([]exprToken, 0, len(tokens))
	var ops []exprToken

	for _, t := range tokens {
		switch t.kind {
		case exprNumber:
			output = append(output, t)

		case exprOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != exprOperator {
					break
				}
				if precedence(top.op) < precedence(t.op) ||
					(precedence(top.op) == precedence(t.op) && rightAssociative(t.op)) {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)

		case exprLeftParen:
			ops = append(ops, t)

		case exprRightParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == exprLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, ErrMalformedExpression
			}
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == exprLeftParen {
			return nil, ErrMalformedExpression
		}
		output = append(output, top)
	}

	return output, nil
}

// evalPostfix folds a postfix token sequence with a single value stack
func evalPostfix(postfix []exprToken) (float64, error) {
	if len(postfix) == 0 {
		return 0, ErrMalformedExpression
	}

	var stack []float64
	for _, t := range postfix {
		if t.kind == exprNumber {
			stack = append(stack, t.num)
			continue
		}

		if t.op == opNeg {
			if len(stack) < 1 {
				return 0, ErrMalformedExpression
			}
			stack[len(stack)-1] = -stack[len(stack)-1]
			continue
		}

		if len(stack) < 2 {
			return 0, ErrMalformedExpression
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var result float64
		switch t.op {
		case opAdd:
			result = left + right
		case opSub:
			result = left - right
		case opMul:
			result = left * right
		case opDiv:
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			result = left / right
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, ErrMalformedExpression
	}
	return stack[0], nil
}

// FormatNumber renders an evaluation result for display: integers (within
// floating-point epsilon) print without a decimal point, everything else
// rounds to two decimal places.
func FormatNumber(n float64) string {
	rounded := math.Round(n)
	if math.Abs(n-rounded) < floatEpsilon {
		return strconv.FormatInt(int64(rounded), 10)
	}
	return strconv.FormatFloat(n, 'f', 2, 64)
}
