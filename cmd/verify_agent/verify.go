package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/llm"
	"github.com/jonathan/identity-verifier/internal/observability"
	"github.com/jonathan/identity-verifier/internal/reconcile"
	"github.com/jonathan/identity-verifier/internal/types"
	"github.com/jonathan/identity-verifier/internal/validation"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the full verification flow locally",
	Long:  "Extract details from document text, reconcile them against a profile record JSON, check the document number format, and print the verdict.",
	RunE:  runVerify,
}

var (
	verifyProfileFile string
	verifyInputFile   string
	verifyDocType     string
	verifyDocNumber   string
	verifyAPIKey      string
	verifyConfigFile  string
)

func init() {
	verifyCmd.Flags().StringVarP(&verifyProfileFile, "profile", "p", "", "Path to profile record JSON file (required)")
	verifyCmd.Flags().StringVarP(&verifyInputFile, "in", "i", "", "Path to document text file (required)")
	verifyCmd.Flags().StringVarP(&verifyDocType, "doc-type", "t", "", "Document type (aadhaar, pan, passport, ...)")
	verifyCmd.Flags().StringVarP(&verifyDocNumber, "number", "n", "", "Document number to format-check (optional)")
	verifyCmd.Flags().StringVar(&verifyAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	verifyCmd.Flags().StringVar(&verifyConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	if verifyProfileFile == "" || verifyInputFile == "" {
		return fmt.Errorf("both --profile and --in are required")
	}

	cfg, err := loadSettings(verifyConfigFile)
	if err != nil {
		return err
	}
	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}

	apiKey := verifyAPIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	var profile types.ProfileRecord
	if err := readJSONFile(verifyProfileFile, &profile); err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	docText, err := os.ReadFile(verifyInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	record, err := extraction.New(client).WithTier(modelTier(cfg.Model)).Extract(ctx, string(docText))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	extracted := extraction.CanonicalDetails(record)

	report, err := reconcile.NewEngine(opts).Compare(profile, extracted, verifyDocType)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtractedRecord(extracted)
	printer.PrintVerdictReport(report)

	if verifyDocNumber != "" {
		if result, ok := validation.Validate(verifyDocType, verifyDocNumber); ok {
			printer.PrintNumberCheck(verifyDocType, result)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "No number format check available for document type %q\n", verifyDocType)
		}
	}

	return nil
}
