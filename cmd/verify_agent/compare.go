package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/identity-verifier/internal/observability"
	"github.com/jonathan/identity-verifier/internal/reconcile"
	"github.com/jonathan/identity-verifier/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Reconcile a profile JSON against an extracted record JSON",
	Long:  "Compare a trusted profile record against document details already extracted to JSON, and print the field-by-field verdict.",
	RunE:  runCompare,
}

var (
	compareProfileFile   string
	compareExtractedFile string
	compareDocType       string
	compareOutputFile    string
	compareConfig        string
)

func init() {
	compareCmd.Flags().StringVarP(&compareProfileFile, "profile", "p", "", "Path to profile record JSON file (required)")
	compareCmd.Flags().StringVarP(&compareExtractedFile, "extracted", "e", "", "Path to extracted record JSON file (required)")
	compareCmd.Flags().StringVarP(&compareDocType, "doc-type", "t", "", "Document type (aadhaar, pan, passport, bonafide, ...)")
	compareCmd.Flags().StringVarP(&compareOutputFile, "out", "o", "", "Path to write the verdict report JSON (optional)")
	compareCmd.Flags().StringVar(&compareConfig, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	if compareProfileFile == "" || compareExtractedFile == "" {
		return fmt.Errorf("both --profile and --extracted are required")
	}

	cfg, err := loadSettings(compareConfig)
	if err != nil {
		return err
	}
	opts, err := engineOptions(cfg)
	if err != nil {
		return err
	}

	var profile types.ProfileRecord
	if err := readJSONFile(compareProfileFile, &profile); err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var extracted types.ExtractedRecord
	if err := readJSONFile(compareExtractedFile, &extracted); err != nil {
		return fmt.Errorf("failed to read extracted record: %w", err)
	}

	report, err := reconcile.NewEngine(opts).Compare(profile, extracted, compareDocType)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintVerdictReport(report)

	if compareOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(compareOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", compareOutputFile)
	}

	return nil
}

// readJSONFile decodes a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
