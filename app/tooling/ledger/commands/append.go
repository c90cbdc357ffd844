package commands

import (
	"fmt"
	"strconv"

	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/spf13/cobra"
)

func appendCmd(cfg Config, p prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "append [source] <target> <amount> <nonce>",
		Short: "Appends a new block onto the end of the chain.",
		Args:  txArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, rest, err := readTx(cmd, p, args, []string{"Nonce: "})
			if err != nil {
				return err
			}

			nonce, err := strconv.ParseUint(rest[0], 10, 64)
			if err != nil {
				return fmt.Errorf("nonce %q is not an unsigned integer", rest[0])
			}

			// The block is rebuilt from the nonce found by an earlier mine.
			number := uint32(cfg.Chain.Size())
			block := chain.NewBlock(number, tx, cfg.Chain.TailHash(), nonce)

			if err := cfg.Chain.Append(block); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Appended: Block %d (Transaction: %s, Nonce: %d)\n", number, tx, nonce)
			return nil
		},
	}
}
