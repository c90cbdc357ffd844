package commands

import (
	"encoding/json"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/spf13/cobra"
)

func blocksCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "Prints out the chain of blocks (for debugging only).",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for block := range cfg.Chain.Blocks() {
				fmt.Fprintf(cmd.OutOrStdout(), "Block %d (Transaction: %s, Nonce: %d, prevHash: %s, hash: %s)\n",
					block.Number(), block.Tx(), block.Nonce(), block.PrevHash(), block)
			}
		},
	}
}

func exportCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Prints the blocks as JSON, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for block := range cfg.Chain.Blocks() {
				if err := enc.Encode(chain.NewBlockData(block)); err != nil {
					return fmt.Errorf("encoding block %d: %w", block.Number(), err)
				}
			}

			return nil
		},
	}
}
