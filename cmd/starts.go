package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	startsIOFXML   bool
	startsRaceID   int64
	startsEventIDs []int64
	startsFrom     string
	startsTo       string
	startsEventID  int64
)

var startsCmd = &cobra.Command{
	Use:   "starts",
	Short: "Fetch start lists",
}

var startsEventCmd = &cobra.Command{
	Use:   "event <eventId>",
	Short: "Start list of an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runStartsEvent,
}

var startsPersonCmd = &cobra.Command{
	Use:   "person <personId>",
	Short: "Start times of a person",
	Args:  cobra.ExactArgs(1),
	RunE:  runStartsPerson,
}

var startsOrganisationCmd = &cobra.Command{
	Use:   "organisation <organisationId>...",
	Short: "Start times of the competitors of one or more organisations",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStartsOrganisation,
}

func init() {
	startsEventCmd.Flags().BoolVar(&startsIOFXML, "iof", false, "fetch the IOF XML 3.0 start list")
	startsEventCmd.Flags().Int64Var(&startsRaceID, "race", 0, "race of a multi day event (IOF XML only)")

	startsPersonCmd.Flags().Int64SliceVar(&startsEventIDs, "event-ids", nil, "only these events")
	startsPersonCmd.Flags().StringVar(&startsFrom, "from", "", "first event date (yyyy-mm-dd)")
	startsPersonCmd.Flags().StringVar(&startsTo, "to", "", "last event date (yyyy-mm-dd)")

	startsOrganisationCmd.Flags().Int64Var(&startsEventID, "event", 0, "only this event")

	startsCmd.AddCommand(startsEventCmd, startsPersonCmd, startsOrganisationCmd)
	rootCmd.AddCommand(startsCmd)
}

func runStartsEvent(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var resp eventor.Node
	if startsIOFXML {
		resp, err = client.StartTimesPerEventIOFXML(cmd.Context(), id, eventor.IOFXMLStartOptions{EventRaceID: startsRaceID})
	} else {
		resp, err = client.StartTimesPerEvent(cmd.Context(), id)
	}
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runStartsPerson(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.StartTimesPerPerson(cmd.Context(), id, eventor.PersonStartOptions{
		EventIDs: startsEventIDs,
		FromDate: startsFrom,
		ToDate:   startsTo,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runStartsOrganisation(cmd *cobra.Command, args []string) error {
	orgIDs, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := client.StartTimesPerOrganisation(cmd.Context(), orgIDs, eventor.OrganisationStartOptions{
		EventID: startsEventID,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
