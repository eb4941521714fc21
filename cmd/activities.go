package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	activitiesFrom          string
	activitiesTo            string
	activitiesRegistrations bool
)

var activitiesCmd = &cobra.Command{
	Use:   "activities [organisationId]",
	Short: "List club activities",
	Long: `List the activities of an organisation between --from and --to. The API key's
own organisation is used when no id is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runActivities,
}

var activityCmd = &cobra.Command{
	Use:   "activity <organisationId> <activityId>",
	Short: "Show a single club activity",
	Args:  cobra.ExactArgs(2),
	RunE:  runActivity,
}

func init() {
	activitiesCmd.Flags().StringVar(&activitiesFrom, "from", "", "first date (yyyy-mm-dd)")
	activitiesCmd.Flags().StringVar(&activitiesTo, "to", "", "last date (yyyy-mm-dd)")
	activitiesCmd.Flags().BoolVar(&activitiesRegistrations, "registrations", false, "include registrations")
	addFilterFlags(activitiesCmd)

	activityCmd.Flags().BoolVar(&activitiesRegistrations, "registrations", false, "include registrations")

	rootCmd.AddCommand(activitiesCmd, activityCmd)
}

func runActivities(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgID, err := organisationArg(ctx, args)
	if err != nil {
		return err
	}

	activities, err := client.Activities(ctx, orgID, activitiesFrom, activitiesTo, eventor.ActivitiesOptions{
		IncludeRegistrations: activitiesRegistrations,
	})
	if err != nil {
		return err
	}

	activities, err = applyFilter(ctx, activities)
	if err != nil {
		return err
	}

	logger.Info().Int64("organisation", orgID).Int("count", len(activities)).Msg("Found activities")
	return printResult(cmd, activities)
}

func runActivity(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := client.Activity(cmd.Context(), ids[0], ids[1], eventor.ActivityOptions{
		IncludeRegistrations: activitiesRegistrations,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
