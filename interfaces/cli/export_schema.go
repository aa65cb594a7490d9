package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	infraconfig "github.com/felixgeelhaar/planner-go/infrastructure/config"
)

// exportSchemaOptions holds options for the export-schema command.
type exportSchemaOptions struct {
	outputPath string
}

// newExportSchemaCmd creates the export-schema command.
func (a *App) newExportSchemaCmd() *cobra.Command {
	opts := &exportSchemaOptions{}

	cmd := &cobra.Command{
		Use:   "export-schema",
		Short: "Export the run-configuration JSON schema",
		Long: `Export the JSON Schema for planner run-configuration files (the YAML
alternative to the inline parenthesized search-spec grammar).

The exported schema can be used for:
  - IDE validation and autocompletion
  - CI/CD configuration validation
  - Documentation generation

The schema follows JSON Schema draft 2020-12.

Examples:
  # Export schema to stdout
  planner export-schema

  # Export schema to a file
  planner export-schema -o schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportSchema(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// exportSchema exports the run-configuration JSON schema.
func (a *App) exportSchema(opts *exportSchemaOptions) error {
	schemaJSON, err := infraconfig.SchemaJSON()
	if err != nil {
		return fmt.Errorf("%w: generating schema: %v", searcherr.Internal, err)
	}

	if opts.outputPath == "" {
		_, _ = fmt.Fprintln(a.stdout, schemaJSON)
		return nil
	}

	if err := os.WriteFile(opts.outputPath, []byte(schemaJSON), 0600); err != nil {
		return fmt.Errorf("%w: writing schema file: %v", searcherr.Input, err)
	}

	_, _ = fmt.Fprintf(a.stdout, "Schema exported to %s\n", opts.outputPath)
	return nil
}
