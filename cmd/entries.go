package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	entriesOpts  eventor.EntriesOptions
	countEvents  []int64
	countPersons []int64
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List entries in events",
	Long: `List entries by organisation, event or event class. Without any id flag
the entries of the API key's organisation are listed.`,
	Args: cobra.NoArgs,
	RunE: runEntries,
}

var competitorCountCmd = &cobra.Command{
	Use:   "competitor-count <organisationId>...",
	Short: "Count entered competitors per organisation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompetitorCount,
}

func init() {
	f := entriesCmd.Flags()
	f.Int64SliceVar(&entriesOpts.OrganisationIDs, "organisation-ids", nil, "only entries from these organisations")
	f.Int64SliceVar(&entriesOpts.EventIDs, "event-ids", nil, "only entries in these events")
	f.Int64SliceVar(&entriesOpts.EventClassIDs, "class-ids", nil, "only entries in these event classes")
	f.StringVar(&entriesOpts.FromEventDate, "from", "", "first event date (yyyy-mm-dd)")
	f.StringVar(&entriesOpts.ToEventDate, "to", "", "last event date (yyyy-mm-dd)")
	f.StringVar(&entriesOpts.FromEntryDate, "entered-from", "", "entered since (yyyy-mm-dd hh:mm:ss)")
	f.StringVar(&entriesOpts.ToEntryDate, "entered-to", "", "entered before (yyyy-mm-dd hh:mm:ss)")
	f.StringVar(&entriesOpts.FromModifyDate, "modified-from", "", "modified since (yyyy-mm-dd hh:mm:ss)")
	f.StringVar(&entriesOpts.ToModifyDate, "modified-to", "", "modified before (yyyy-mm-dd hh:mm:ss)")
	f.BoolVar(&entriesOpts.IncludeEntryFees, "entry-fees", false, "include entry fees")
	f.BoolVar(&entriesOpts.IncludePersonElement, "persons", false, "include the Person element")
	f.BoolVar(&entriesOpts.IncludeOrganisationElement, "organisations", false, "include the Organisation element")
	f.BoolVar(&entriesOpts.IncludeEventElement, "events", false, "include the Event element")
	addFilterFlags(entriesCmd)

	competitorCountCmd.Flags().Int64SliceVar(&countEvents, "event-ids", nil, "only these events")
	competitorCountCmd.Flags().Int64SliceVar(&countPersons, "person-ids", nil, "only these persons")

	rootCmd.AddCommand(entriesCmd, competitorCountCmd)
}

func runEntries(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	opts := entriesOpts
	if len(opts.OrganisationIDs) == 0 && len(opts.EventIDs) == 0 && len(opts.EventClassIDs) == 0 {
		orgID, err := organisationFromKey(ctx)
		if err != nil {
			return err
		}
		opts.OrganisationIDs = []int64{orgID}
	}

	resp, err := client.Entries(ctx, opts)
	if err != nil {
		return err
	}

	entries, err := listRecords(resp, "EntryList", "Entry")
	if err != nil {
		return err
	}

	entries, err = applyFilter(ctx, entries)
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(entries)).Msg("Found entries")
	return printResult(cmd, entries)
}

func runCompetitorCount(cmd *cobra.Command, args []string) error {
	orgIDs, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := client.CompetitorCount(cmd.Context(), orgIDs, eventor.CompetitorCountOptions{
		EventIDs:  countEvents,
		PersonIDs: countPersons,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
