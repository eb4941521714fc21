package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

var (
	organisationsProperties bool
	membersContactDetails   bool
)

var organisationsCmd = &cobra.Command{
	Use:   "organisations",
	Short: "List federations, districts and clubs",
	Args:  cobra.NoArgs,
	RunE:  runOrganisations,
}

var organisationCmd = &cobra.Command{
	Use:   "organisation <organisationId>",
	Short: "Show a single organisation",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrganisation,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the organisation owning the API key",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var membersCmd = &cobra.Command{
	Use:   "members [organisationId]",
	Short: "List the members of an organisation",
	Long: `List the members of an organisation. Eventor only returns members of the
organisation owning the API key, which is used when no id is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMembers,
}

var competitorsCmd = &cobra.Command{
	Use:   "competitors [organisationId]",
	Short: "List competitor settings of an organisation's members",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompetitors,
}

func init() {
	organisationsCmd.Flags().BoolVar(&organisationsProperties, "properties", false, "include organisation properties")
	addFilterFlags(organisationsCmd)

	membersCmd.Flags().BoolVar(&membersContactDetails, "contact-details", false, "include contact details")
	addFilterFlags(membersCmd)

	addFilterFlags(competitorsCmd)

	rootCmd.AddCommand(organisationsCmd, organisationCmd, whoamiCmd, membersCmd, competitorsCmd)
}

func runOrganisations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgs, err := client.Organisations(ctx, eventor.OrganisationsOptions{
		IncludeProperties: organisationsProperties,
	})
	if err != nil {
		return err
	}

	orgs, err = applyFilter(ctx, orgs)
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(orgs)).Msg("Found organisations")
	return printResult(cmd, orgs)
}

func runOrganisation(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.Organisation(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	resp, err := client.OrganisationFromAPIKey(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runMembers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgID, err := organisationArg(ctx, args)
	if err != nil {
		return err
	}

	members, err := client.MembersInOrganisation(ctx, orgID, eventor.MembersOptions{
		IncludeContactDetails: membersContactDetails,
	})
	if err != nil {
		return err
	}

	members, err = applyFilter(ctx, members)
	if err != nil {
		return err
	}

	logger.Info().Int64("organisation", orgID).Int("count", len(members)).Msg("Found members")
	return printResult(cmd, members)
}

func runCompetitors(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgID, err := organisationArg(ctx, args)
	if err != nil {
		return err
	}

	competitors, err := client.Competitors(ctx, orgID)
	if err != nil {
		return err
	}

	competitors, err = applyFilter(ctx, competitors)
	if err != nil {
		return err
	}

	logger.Info().Int64("organisation", orgID).Int("count", len(competitors)).Msg("Found competitors")
	return printResult(cmd, competitors)
}
