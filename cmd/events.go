package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	eventsFrom              string
	eventsTo                string
	eventsModifiedFrom      string
	eventsModifiedTo        string
	eventsIDs               []int64
	eventsOrganisationIDs   []int64
	eventsClassifications   []int
	eventsIncludeBreaks     bool
	eventsIncludeAttributes bool
	eventClassesEntryFees   bool
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Search events",
	Long: `Search events by date, modification time, organiser and classification.
The matching Event records are printed after filtering. Without --filter or
--preset the configured filter.default_expression is used.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

var eventCmd = &cobra.Command{
	Use:   "event <eventId>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvent,
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List documents attached to events",
	Args:  cobra.NoArgs,
	RunE:  runDocuments,
}

var classesCmd = &cobra.Command{
	Use:   "classes <eventId>",
	Short: "List the classes of an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runClasses,
}

var entryFeesCmd = &cobra.Command{
	Use:   "entryfees <eventId>",
	Short: "List the entry fees of an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryFees,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsFrom, "from", "", "first event date (yyyy-mm-dd)")
	eventsCmd.Flags().StringVar(&eventsTo, "to", "", "last event date (yyyy-mm-dd)")
	eventsCmd.Flags().StringVar(&eventsModifiedFrom, "modified-from", "", "modified since (yyyy-mm-dd hh:mm:ss)")
	eventsCmd.Flags().StringVar(&eventsModifiedTo, "modified-to", "", "modified before (yyyy-mm-dd hh:mm:ss)")
	eventsCmd.Flags().Int64SliceVar(&eventsIDs, "event-ids", nil, "only these events")
	eventsCmd.Flags().Int64SliceVar(&eventsOrganisationIDs, "organisation-ids", nil, "only events organised by these organisations")
	eventsCmd.Flags().IntSliceVar(&eventsClassifications, "classifications", nil, "only these classifications (see 'lookup classifications')")
	eventsCmd.Flags().BoolVar(&eventsIncludeBreaks, "entry-breaks", false, "include entry breaks")
	eventsCmd.Flags().BoolVar(&eventsIncludeAttributes, "attributes", false, "include event attributes")
	addFilterFlags(eventsCmd)

	documentsCmd.Flags().StringVar(&eventsFrom, "from", "", "first event date (yyyy-mm-dd)")
	documentsCmd.Flags().StringVar(&eventsTo, "to", "", "last event date (yyyy-mm-dd)")
	documentsCmd.Flags().Int64SliceVar(&eventsIDs, "event-ids", nil, "only these events")
	documentsCmd.Flags().Int64SliceVar(&eventsOrganisationIDs, "organisation-ids", nil, "only events organised by these organisations")

	classesCmd.Flags().BoolVar(&eventClassesEntryFees, "entry-fees", false, "include entry fees per class")

	rootCmd.AddCommand(eventsCmd, eventCmd, documentsCmd, classesCmd, entryFeesCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	resp, err := client.Events(ctx, eventor.EventsOptions{
		FromDate:           eventsFrom,
		ToDate:             eventsTo,
		FromModifyDate:     eventsModifiedFrom,
		ToModifyDate:       eventsModifiedTo,
		EventIDs:           eventsIDs,
		OrganisationIDs:    eventsOrganisationIDs,
		ClassificationIDs:  toClassifications(eventsClassifications),
		IncludeEntryBreaks: eventsIncludeBreaks,
		IncludeAttributes:  eventsIncludeAttributes,
	})
	if err != nil {
		return err
	}

	events, err := listRecords(resp, "EventList", "Event")
	if err != nil {
		return err
	}

	events, err = applyFilterWithDefault(ctx, events, cfg.Filter.DefaultExpression)
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(events)).Msg("Found events")
	return printResult(cmd, events)
}

func runEvent(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.Event(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runDocuments(cmd *cobra.Command, args []string) error {
	resp, err := client.EventDocuments(cmd.Context(), eventor.EventDocumentsOptions{
		FromDate:        eventsFrom,
		ToDate:          eventsTo,
		EventIDs:        eventsIDs,
		OrganisationIDs: eventsOrganisationIDs,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runClasses(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.EventClasses(cmd.Context(), id, eventor.EventClassesOptions{
		IncludeEntryFees: eventClassesEntryFees,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runEntryFees(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.EventEntryFees(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
