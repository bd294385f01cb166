// Command editorialctl is the operator CLI for the editorial workflow service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "editorialctl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Operate the editorial workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		migrateCmd(),
		journalsCmd(),
		usersCmd(),
		submissionsCmd(),
		rolesCmd(),
		participantsCmd(),
	)

	return cmd
}
