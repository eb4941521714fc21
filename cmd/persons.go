package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/eventor"
)

const passwordEnv = "EVENTORKIT_PASSWORD"

var (
	loginContactDetails bool
	authUsername        string
)

var competitorCmd = &cobra.Command{
	Use:   "competitor <personId>",
	Short: "Show the competitor settings of a person",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompetitor,
}

var loginURLCmd = &cobra.Command{
	Use:   "login-url <personId> <organisationId>",
	Short: "Create a one time Eventor login link for a person",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoginURL,
}

var authenticateCmd = &cobra.Command{
	Use:   "authenticate",
	Short: "Verify an Eventor username and password",
	Long: `Verify an Eventor username and password and print the matching person.
The password is read from the ` + passwordEnv + ` environment variable.`,
	Args: cobra.NoArgs,
	RunE: runAuthenticate,
}

func init() {
	loginURLCmd.Flags().BoolVar(&loginContactDetails, "contact-details", false, "include contact details")

	authenticateCmd.Flags().StringVar(&authUsername, "username", "", "Eventor username")
	authenticateCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(competitorCmd, loginURLCmd, authenticateCmd)
}

func runCompetitor(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.Competitor(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runLoginURL(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := client.ExternalLoginURL(cmd.Context(), ids[0], ids[1], eventor.ExternalLoginOptions{
		IncludeContactDetails: loginContactDetails,
	})
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}

func runAuthenticate(cmd *cobra.Command, args []string) error {
	password := os.Getenv(passwordEnv)
	if password == "" {
		return errors.New(passwordEnv + " must be set")
	}

	resp, err := client.AuthenticatePerson(cmd.Context(), authUsername, password)
	if err != nil {
		return err
	}
	return printResult(cmd, resp)
}
