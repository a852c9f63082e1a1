// Package main provides the resume_extractor command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resume_extractor",
		Short: "Heuristic resume field extractor",
		Long: `Resume Extractor reads plain-text, PDF or HTML resumes and pulls out contact
details, location, skills, experience, job titles and companies using
pattern-based heuristics. Results are written as CSV, XLSX or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd())
	root.AddCommand(newFieldsCmd())
	root.AddCommand(newValidateJSONCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
