package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func mineCmd(cfg Config, p prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "mine [source] <target> <amount>",
		Short: "Discovers the nonce for a given transaction.",
		Args:  txArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, _, err := readTx(cmd, p, args, nil)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if cfg.MineTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.MineTimeout)
				defer cancel()
			}

			block, err := cfg.Chain.Mine(ctx, tx)
			if err != nil {
				return fmt.Errorf("mining: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Nonce: %d\n", block.Nonce())
			return nil
		},
	}
}
