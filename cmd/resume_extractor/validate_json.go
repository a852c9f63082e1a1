package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/schemas"
)

func newValidateJSONCmd() *cobra.Command {
	var schemaPath, filePath string

	cmd := &cobra.Command{
		Use:   "validate-json",
		Short: "Validate a JSON export against its schema",
		Long:  "Validates a JSON export against the extraction result schema, or against the schema given with --schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if schemaPath != "" {
				err = schemas.ValidateJSON(schemaPath, filePath)
			} else {
				var content []byte
				content, err = os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("failed to read JSON file: %w", err)
				}
				err = schemas.ValidateExtraction(content)
			}

			if err != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed\n%v\n", err)
				return fmt.Errorf("%s does not match the schema", filePath)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", filePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to JSON Schema file (default: built-in extraction schema)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to JSON file to validate")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
