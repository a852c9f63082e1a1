package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/fields"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields that can be extracted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := fields.Default(fields.Env{})
			if err := registry.Validate(); err != nil {
				return fmt.Errorf("invalid field registry: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(w, "FIELD\tLABEL\tSOURCE")
			for _, def := range registry.Definitions() {
				source := "document"
				if def.Derived {
					source = "derived from " + strings.Join(def.Dependencies, ", ")
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, def.Label, source)
			}
			return w.Flush()
		},
	}
}
