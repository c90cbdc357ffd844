package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Checks that the block chain is valid.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := cfg.Chain.Verify(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "The blockchain does not check out: %s\n", err)
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), "The blockchain checks out.")
		},
	}
}
