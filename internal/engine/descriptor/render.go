// Package descriptor implements the descriptor template rendering engine:
// a tokenizer for bracketed placeholders, a shunting-yard arithmetic
// evaluator, and the renderer that combines them into display text.
package descriptor

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/forge-api/internal/engine"
)

// Unresolved is the visible placeholder substituted for tokens and
// sub-expressions that cannot be resolved. Broken authoring content
// previews with placeholders instead of failing the whole render.
const Unresolved = "?"

// wrapper rounding functions, resolved before bare arithmetic
var wrappers = map[string]func(float64) float64{
	"ceil":  math.Ceil,
	"floor": math.Floor,
	"round": math.Round,
}

// Renderer is the engine.Engine implementation. It is stateless; a single
// instance is safe for concurrent use.
type Renderer struct{}

// New creates a renderer
func New() *Renderer {
	return &Renderer{}
}

var _ engine.Engine = (*Renderer)(nil)

// ExtractTokens returns the unique token names in first-occurrence order
func (r *Renderer) ExtractTokens(template string) []string {
	return uniqueTokenNames(scanTokens(template))
}

// Render produces the display string for one template/context pair.
// One left-to-right scan resolves, most specific first: wrapped arithmetic
// (ceil/floor/round), bare parenthesized arithmetic, bare tokens. Literal
// text passes through unchanged. Render never panics.
func (r *Renderer) Render(template string, ctx engine.Context) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		switch template[i] {
		case '(':
			if out, next, ok := renderExpression(template, i, ctx); ok {
				b.WriteString(out)
				i = next
				continue
			}
			b.WriteByte('(')
			i++

		case '[':
			closing := strings.IndexByte(template[i+1:], ']')
			if closing > 0 {
				name := template[i+1 : i+1+closing]
				b.WriteString(displayValue(ctx[name]))
				i += closing + 2
				continue
			}
			b.WriteByte('[')
			i++

		default:
			b.WriteByte(template[i])
			i++
		}
	}

	return b.String()
}

// renderExpression tries to resolve the parenthesized group opening at
// template[start]. ok is false when the group is not arithmetic (prose in
// parentheses, unclosed paren) and should pass through as literal text.
// On ok, next is the index just past the closing paren.
func renderExpression(template string, start int, ctx engine.Context) (out string, next int, ok bool) {
	end := matchingParen(template, start)
	if end < 0 {
		return "", 0, false
	}

	inner := strings.TrimSpace(template[start+1 : end])
	round, expr := splitWrapper(inner)

	if !isExpressionBody(expr) {
		return "", 0, false
	}

	value, err := Evaluate(expr, ctx)
	if err != nil {
		return Unresolved, end + 1, true
	}

	if round != nil {
		return FormatNumber(round(value)), end + 1, true
	}
	return FormatNumber(value), end + 1, true
}

// splitWrapper peels a single ceil/floor/round call spanning the whole
// group, returning its rounding function and inner expression. Anything
// else comes back unchanged with a nil rounding function.
func splitWrapper(inner string) (func(float64) float64, string) {
	for name, fn := range wrappers {
		prefix := name + "("
		if !strings.HasPrefix(inner, prefix) || !strings.HasSuffix(inner, ")") {
			continue
		}
		// the paren after the wrapper name must be the one closing at
		// the end of the group, or this is not a single wrapper call
		if matchingParen(inner, len(prefix)-1) != len(inner)-1 {
			continue
		}
		return fn, inner[len(prefix) : len(inner)-1]
	}
	return nil, inner
}

// matchingParen returns the index of the paren closing the one at open,
// or -1 when the group never closes
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isExpressionBody reports whether a paren group's content looks like
// arithmetic: digits, operators, nested parens, and bracketed tokens.
// Anything else (prose, wrapper calls that failed to peel) is literal.
func isExpressionBody(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == ' ' || c == '\t':
		case c == '+' || c == '-' || c == '*' || c == '/':
		case c == '(' || c == ')':
		case c == '[':
			closing := strings.IndexByte(s[i+1:], ']')
			if closing < 0 {
				return false
			}
			i += closing + 1
		default:
			return false
		}
	}
	return true
}

// displayValue renders a bare token substitution
func displayValue(v engine.Value) string {
	switch v.Kind() {
	case engine.KindNumber:
		return FormatNumber(v.Num())
	case engine.KindDie:
		return "d" + strconv.Itoa(v.Faces())
	case engine.KindText:
		return v.Str()
	default:
		return Unresolved
	}
}
