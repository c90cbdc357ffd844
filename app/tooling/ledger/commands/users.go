package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usersCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Prints a list of users.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for user := range cfg.Chain.Participants() {
				fmt.Fprintln(cmd.OutOrStdout(), user)
			}
		},
	}
}
