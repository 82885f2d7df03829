// Package main provides the entry point for the identity document verifier.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verify_agent",
	Short: "Identity document verification service",
	Long:  "Verify Agent reconciles trusted applicant profiles against details extracted from identity documents (Aadhaar, PAN, passports and more) and serves the verdicts over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
