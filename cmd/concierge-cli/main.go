// Package main provides the concierge CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgelight-studio/concierge/internal/config"
	"github.com/forgelight-studio/concierge/internal/knowledge"
	"github.com/forgelight-studio/concierge/internal/observability"
	"github.com/forgelight-studio/concierge/internal/rag"
)

var (
	cfgFile    string
	outputJSON bool
	verbose    bool

	cfg    *config.Config
	logger *observability.Logger
	engine *rag.Engine
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "concierge-cli",
	Short: "Concierge CLI for querying the Forgelight Studio knowledge base",
	Long: `Concierge CLI exercises the retrieval-and-response engine behind the
website chat widget without running the API server.

Use this tool to:
- Ask one-shot questions and inspect ranked sources
- Hold an interactive chat session with conversation context
- Tune and debug scoring behavior locally

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Observability.LogLevel
		if verbose {
			level = "debug"
		} else if !outputJSON {
			// Keep interactive output clean unless asked otherwise.
			level = "warn"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      "console",
			ServiceName: "concierge-cli",
		})

		engine = rag.NewEngineWithConfig(
			knowledge.Default(),
			logger,
			rag.DefaultScoringConfig(),
			rag.ContextConfig{
				WindowSize:        cfg.Engine.ContextWindow,
				FullHistoryTopics: cfg.Engine.FullHistoryTopics,
			},
		)

		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON for automation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newChatCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
