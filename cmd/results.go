package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	resultsIOFXML   bool
	resultsSplits   bool
	resultsTop      int
	resultsRaceID   int64
	resultsTotal    bool
	resultsEventIDs []int64
	resultsFrom     string
	resultsTo       string
	resultsEventID  int64
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Fetch result lists",
}

var resultsEventCmd = &cobra.Command{
	Use:   "event <eventId>...",
	Short: "Result lists of one or more events",
	Long: `Fetch the result lists of one or more events. Several events are fetched
in parallel, bounded by concurrency.max_requests, and printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResultsEvent,
}

var resultsPersonCmd = &cobra.Command{
	Use:   "person <personId>",
	Short: "Results of a person, one result list per event",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsPerson,
}

var resultsOrganisationCmd = &cobra.Command{
	Use:   "organisation <organisationId>...",
	Short: "Results of the competitors of one or more organisations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResultsOrganisation,
}

func init() {
	resultsEventCmd.Flags().BoolVar(&resultsIOFXML, "iof", false, "fetch IOF XML 3.0 result lists")
	resultsEventCmd.Flags().BoolVar(&resultsSplits, "splits", false, "include split times")
	resultsEventCmd.Flags().IntVar(&resultsTop, "top", 0, "only the best competitors per class, 0 means all (not with --iof)")
	resultsEventCmd.Flags().Int64Var(&resultsRaceID, "race", 0, "race of a multi day event (IOF XML only)")
	resultsEventCmd.Flags().BoolVar(&resultsTotal, "total", false, "overall result of a multi day event (IOF XML only)")

	resultsPersonCmd.Flags().Int64SliceVar(&resultsEventIDs, "event-ids", nil, "only these events")
	resultsPersonCmd.Flags().StringVar(&resultsFrom, "from", "", "first event date (yyyy-mm-dd)")
	resultsPersonCmd.Flags().StringVar(&resultsTo, "to", "", "last event date (yyyy-mm-dd)")
	resultsPersonCmd.Flags().BoolVar(&resultsSplits, "splits", false, "include split times")
	resultsPersonCmd.Flags().IntVar(&resultsTop, "top", 0, "also include this many competitors from the top")
	addFilterFlags(resultsPersonCmd)

	resultsOrganisationCmd.Flags().Int64Var(&resultsEventID, "event", 0, "only this event")
	resultsOrganisationCmd.Flags().BoolVar(&resultsSplits, "splits", false, "include split times")
	resultsOrganisationCmd.Flags().IntVar(&resultsTop, "top", 0, "also include this many competitors from the top of each class")

	resultsCmd.AddCommand(resultsEventCmd, resultsPersonCmd, resultsOrganisationCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runResultsEvent(cmd *cobra.Command, args []string) error {
	if resultsIOFXML && resultsTop > 0 {
		return errors.New("--top is not supported with --iof")
	}
	if !resultsIOFXML && (resultsRaceID != 0 || resultsTotal) {
		return errors.New("--race and --total require --iof")
	}

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	fetch := func(ctx context.Context, id int64) (eventor.Node, error) {
		if resultsIOFXML {
			return client.ResultsPerEventIOFXML(ctx, id, eventor.IOFXMLResultOptions{
				EventRaceID:       resultsRaceID,
				IncludeSplitTimes: resultsSplits,
				TotalResult:       resultsTotal,
			})
		}
		return client.ResultsPerEvent(ctx, id, eventor.EventResultOptions{
			IncludeSplitTimes: resultsSplits,
			Top:               resultsTop,
		})
	}

	results, err := fetchAll(cmd.Context(), ids, cfg.Concurrency.MaxRequests, fetch)
	if err != nil {
		return err
	}

	if len(results) == 1 {
		return printResult(cmd, results[0])
	}
	return printResult(cmd, results)
}

// fetchAll calls fetch for every id with at most limit calls in flight. The
// responses keep the order of ids; the first failure cancels the rest.
func fetchAll(ctx context.Context, ids []int64, limit int, fetch func(context.Context, int64) (eventor.Node, error)) ([]eventor.Node, error) {
	results := make([]eventor.Node, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, id := range ids {
		g.Go(func() error {
			resp, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("event %d: %w", id, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runResultsPerson(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	results, err := client.ResultsPerPerson(ctx, id, eventor.PersonResultOptions{
		EventIDs:          resultsEventIDs,
		FromDate:          resultsFrom,
		ToDate:            resultsTo,
		IncludeSplitTimes: resultsSplits,
		Top:               resultsTop,
	})
	if err != nil {
		return err
	}

	results, err = applyFilter(ctx, results)
	if err != nil {
		return err
	}

	logger.Info().Int64("person", id).Int("events", len(results)).Msg("Found results")
	return printResult(cmd, results)
}

func runResultsOrganisation(cmd *cobra.Command, args []string) error {
	orgIDs, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := client.ResultsPerOrganisation(cmd.Context(), orgIDs, eventor.OrganisationResultOptions{
		EventID:           resultsEventID,
		IncludeSplitTimes: resultsSplits,
		Top:               resultsTop,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
