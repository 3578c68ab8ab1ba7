package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/internal/engine"
	descriptorengine "github.com/KirkDiggler/forge-api/internal/engine/descriptor"
)

var renderContext string

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a descriptor template from the command line",
	Long: `Render a descriptor template with an optional JSON context, for trying
template text without a running server.

  forge-api render "Deal [Strength]+1 damage" --context '{"Strength": 3}'`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderContext, "context", "{}", "token values as a JSON object")
}

func runRender(cmd *cobra.Command, args []string) error {
	var renderCtx engine.Context
	if err := json.Unmarshal([]byte(renderContext), &renderCtx); err != nil {
		return fmt.Errorf("failed to parse context: %w", err)
	}

	renderer := descriptorengine.New()
	template := args[0]

	cmd.Println(renderer.Render(template, renderCtx))

	if tokens := renderer.ExtractTokens(template); len(tokens) > 0 {
		cmd.Printf("tokens: %s\n", strings.Join(tokens, ", "))
	}
	return nil
}
