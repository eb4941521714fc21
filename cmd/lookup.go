package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var lookupTables = map[string]func() []eventor.LookupEntry{
	"classifications": eventor.Classifications,
	"statuses":        eventor.EventStatuses,
	"disciplines":     eventor.Disciplines,
	"forms":           eventor.EventForms,
}

var lookupCmd = &cobra.Command{
	Use:         "lookup [classifications|statuses|disciplines|forms]",
	Short:       "Show the codes used in Eventor responses and filters",
	Args:        cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs:   []string{"classifications", "statuses", "disciplines", "forms"},
	Annotations: skipConfigAnnotations,
	RunE:        runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		table, ok := lookupTables[args[0]]
		if !ok {
			return fmt.Errorf("unknown lookup table %q", args[0])
		}
		return printResult(cmd, lookupRows(table()))
	}

	all := make(map[string][]map[string]string, len(lookupTables))
	for _, name := range slices.Sorted(maps.Keys(lookupTables)) {
		all[name] = lookupRows(lookupTables[name]())
	}
	return printResult(cmd, all)
}

// lookupRows gives entries lower case keys in JSON and YAML output
func lookupRows(entries []eventor.LookupEntry) []map[string]string {
	rows := make([]map[string]string, len(entries))
	for i, e := range entries {
		rows[i] = map[string]string{"code": e.Code, "label": e.Label}
	}
	return rows
}
