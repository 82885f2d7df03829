package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/llm"
	"github.com/jonathan/identity-verifier/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract personal details from document text",
	Long:  "Run LLM extraction over OCR text from an identity document and print the canonical personal details.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAPIKey     string
	extractConfig     string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to document text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to write the extracted record JSON (optional)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	cfg, err := loadSettings(extractConfig)
	if err != nil {
		return err
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	docText, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := extraction.New(client).WithTier(modelTier(cfg.Model))
	record, err := extractor.Extract(ctx, string(docText))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	canonical := extraction.CanonicalDetails(record)
	observability.NewPrinter(os.Stdout).PrintExtractedRecord(canonical)

	if extractOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal extracted record: %w", err)
		}
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Extracted record written to %s\n", extractOutputFile)
	}

	return nil
}

// modelTier maps a validated config model name to an LLM tier.
func modelTier(model string) llm.ModelTier {
	switch model {
	case "lite":
		return llm.TierLite
	case "advanced":
		return llm.TierAdvanced
	default:
		return llm.TierStandard
	}
}
