package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Removes the last block from the end of the chain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !cfg.Chain.RemoveLast() {
				fmt.Fprintln(cmd.OutOrStdout(), "No last element to remove.")
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Removed last element.")
		},
	}
}
