package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd(cfg Config, p prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [user]",
		Short: "Finds a user's balance.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user string
			switch len(args) {
			case 0:
				var err error
				if user, err = p.ask(cmd, "User: "); err != nil {
					return err
				}
			default:
				user = args[0]
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s's balance is %d\n", user, cfg.Chain.BalanceOf(user))
			return nil
		},
	}
}
