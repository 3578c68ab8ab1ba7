// Package engine defines the descriptor rendering engine interface
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/forge-api/internal/engine Engine

// Engine turns descriptor templates plus a context into display text.
// Rendering is a pure function of its inputs: no state, no side effects,
// and it never panics. Unresolvable references degrade to a visible
// placeholder so broken authoring content still previews.
type Engine interface {
	// Render produces the display string for one template/context pair
	Render(template string, ctx Context) string

	// ExtractTokens returns the unique token names referenced by a
	// template, in first-occurrence order. Used by authoring flows to
	// validate templates against the allowed token set before save.
	ExtractTokens(template string) []string
}
