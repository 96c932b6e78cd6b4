package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/forgelight-studio/concierge/internal/rag"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session with the concierge",
		Long: `Hold an interactive conversation. History stays in memory for the
session, so topic and engagement-stage signals build up across turns the same
way they do in the website widget.

Type 'exit' or 'quit' to leave; with --json a transcript is printed on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat()
		},
	}

	return cmd
}

func runChat() error {
	ui := NewUI(outputJSON)
	ui.Banner("Forgelight Studio Concierge")
	fmt.Println("Ask about our services, projects, technology or pricing. Type 'exit' to quit.")
	fmt.Println()

	var history []rag.Message
	reader := bufio.NewScanner(os.Stdin)

	for {
		ui.Prompt()
		if !reader.Scan() {
			break
		}

		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		var resp rag.Response
		if outputJSON {
			resp = engine.Respond(input, history)
		} else {
			spin := spinner.New(spinner.CharSets[14], 80*time.Millisecond)
			spin.Suffix = " matching..."
			spin.Start()
			resp = engine.Respond(input, history)
			spin.Stop()
		}

		ui.Answer(resp.Answer)
		ui.Confidence(resp.Confidence)
		if len(resp.SuggestedActions) > 0 {
			for _, action := range resp.SuggestedActions {
				ui.Action(action)
			}
		}
		fmt.Println()

		history = append(history, rag.Message{Role: rag.RoleUser, Content: input})
		history = append(history, rag.Message{Role: rag.RoleModel, Content: resp.Answer})
	}

	if outputJSON {
		fmt.Println(historyToJSON(history))
	}

	return nil
}
