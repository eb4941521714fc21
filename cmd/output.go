package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/eventorkit/config"
)

// printResult writes v to the command's output in the configured format
func printResult(cmd *cobra.Command, v any) error {
	return writeOutput(cmd.OutOrStdout(), cfg.Output, v)
}

func writeOutput(w io.Writer, out config.OutputConfig, v any) error {
	switch out.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if out.Indent > 0 {
			enc.SetIndent(out.Indent)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if out.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", out.Indent))
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}
