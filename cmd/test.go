package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Eventor",
	Long:  `Test the connection and API key by looking up the organisation owning the key.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to Eventor at %s...\n", client.BaseURL())

	org, err := client.OrganisationFromAPIKey(cmd.Context())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	id, err := org.Text("Organisation.OrganisationId")
	if err != nil {
		return fmt.Errorf("unexpected response, is the API key valid? %w", err)
	}
	name, _ := org.Text("Organisation.Name")

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "\nAPI key organisation:\n")
	fmt.Fprintf(out, "- Name: %s\n", name)
	fmt.Fprintf(out, "- ID: %s\n", id)

	return nil
}
