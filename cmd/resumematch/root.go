package main

import (
	"os"

	"github.com/spf13/cobra"

	"resume-match/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "resumematch",
		Short:         "Score résumés against job keyword taxonomies",
		Long:          "resumematch extracts text from a résumé (PDF, DOCX or plain text), matches it against a job category and its requirements, and prints the score, keyword hits and suggestions as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			telemetry.SetOutput(cmd.ErrOrStderr())
			telemetry.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level written to stderr")

	root.AddCommand(newAnalyzeCmd(), newCategoriesCmd())
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
