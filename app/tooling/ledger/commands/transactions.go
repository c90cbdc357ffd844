package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func transactionsCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Prints out the chain of transactions.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for tx := range cfg.Chain.Transactions() {
				fmt.Fprintln(cmd.OutOrStdout(), tx)
			}
		},
	}
}
