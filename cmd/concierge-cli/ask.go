package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgelight-studio/concierge/internal/rag"
)

func newAskCmd() *cobra.Command {
	var showSources bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the concierge a one-shot question",
		Long: `Run a single query through the retrieval engine and print the composed
response.

Example:
  concierge-cli ask "What services do you offer?"
  concierge-cli ask --sources "How much does a chatbot cost?"
  concierge-cli ask --json "Tell me about Modern Websites (AI-Ready)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return runAsk(question, showSources)
		},
	}

	cmd.Flags().BoolVarP(&showSources, "sources", "s", false, "Print ranked sources with relevance scores")

	return cmd
}

func runAsk(question string, showSources bool) error {
	resp := engine.Respond(question, nil)

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(resp)
	}

	ui := NewUI(outputJSON)
	ui.Answer(resp.Answer)
	ui.Confidence(resp.Confidence)

	if showSources {
		fmt.Println()
		ui.Heading("Sources")
		for i, src := range resp.Sources {
			ui.Source(i+1, src.Source, string(src.Category), src.Relevance)
		}
	}

	if len(resp.SuggestedActions) > 0 {
		fmt.Println()
		ui.Heading("Suggested next steps")
		for _, action := range resp.SuggestedActions {
			ui.Action(action)
		}
	}

	return nil
}

// historyToJSON renders a transcript for --json chat output.
func historyToJSON(history []rag.Message) string {
	data, err := json.Marshal(history)
	if err != nil {
		return "[]"
	}
	return string(data)
}
