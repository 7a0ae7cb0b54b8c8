package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-match/internal/extract"
	"resume-match/internal/matching"
	"resume-match/internal/shared/telemetry"
)

type analyzeOptions struct {
	file         string
	text         string
	category     string
	requirements []string
	locale       string
	compact      bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a résumé against a job category",
		Long:  "Analyze reads a résumé from --file (use - for stdin) or --text and prints the analysis result as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to a PDF, DOCX or text résumé; - reads stdin")
	cmd.Flags().StringVar(&opts.text, "text", "", "Résumé text, instead of --file")
	cmd.Flags().StringVarP(&opts.category, "category", "c", matching.DefaultCategory, "Job category from the taxonomy")
	cmd.Flags().StringArrayVarP(&opts.requirements, "requirement", "r", nil, "Job requirement text; repeatable")
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", matching.DefaultLocale, "Section rule locale (es or en)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Print JSON on a single line")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
	cmd.MarkFlagsOneRequired("file", "text")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	text, err := loadResumeText(cmd, opts)
	if err != nil {
		return err
	}

	job := matching.JobDescriptor{Category: opts.category}
	if len(opts.requirements) > 0 {
		job.Requirements = opts.requirements
	}

	result, err := matching.NewAnalyzer(opts.locale).TryAnalyze(text, job)
	if err != nil {
		telemetry.Warn("analysis.fail_soft", map[string]any{"error": err.Error()})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func loadResumeText(cmd *cobra.Command, opts *analyzeOptions) (string, error) {
	if opts.file == "" {
		return opts.text, nil
	}

	var (
		data []byte
		err  error
		name = opts.file
	)
	if opts.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		name = "stdin.txt"
	} else {
		data, err = os.ReadFile(opts.file)
	}
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}

	text, err := extract.ExtractTextFromBytes(cmd.Context(), data, extract.MimeFromFileName(name), filepath.Base(name))
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return "", fmt.Errorf("%s: only .pdf, .docx and .txt files are supported", opts.file)
		}
		return "", fmt.Errorf("extract %s: %w", opts.file, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: no text could be extracted", opts.file)
	}
	return text, nil
}
