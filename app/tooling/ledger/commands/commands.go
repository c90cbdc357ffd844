// Package commands contains the ledger shell commands.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Config represents what the commands need to operate on the ledger.
type Config struct {
	Log         *zap.SugaredLogger
	Chain       *chain.Chain
	MineTimeout time.Duration
}

// Run reads commands from in, one per line, until quit or the end of the
// input and writes the results to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, instructions)

	for {
		fmt.Fprint(out, "\nCommand: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading command: %w", err)
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		args[0] = strings.ToLower(args[0])

		if args[0] == "quit" || args[0] == "exit" {
			break
		}

		if args[0] == "help" && len(args) == 1 {
			fmt.Fprintln(out, instructions)
			continue
		}

		// A new command tree is constructed for every line so no flag or
		// argument state leaks between commands.
		root := newRoot(cfg, reader)
		root.SetArgs(args)
		root.SetOut(out)
		root.SetErr(out)

		if err := root.ExecuteContext(ctx); err != nil {
			cfg.Log.Infow("command", "command", args[0], "ERROR", err)
			fmt.Fprintf(out, "%s: %s\n", args[0], err)
		}
	}

	fmt.Fprintln(out, "\nGoodbye")
	return nil
}

const instructions = `Valid commands:
  mine: discovers the nonce for a given transaction
  append: appends a new block onto the end of the chain
  remove: removes the last block from the end of the chain
  check: checks that the block chain is valid
  users: prints a list of users
  balance: finds a user's balance
  transactions: prints out the chain of transactions
  blocks: prints out the chain of blocks (for debugging only)
  export: prints the blocks as JSON, one per line
  help: prints this list of commands
  quit: quits the program`

// newRoot constructs the command tree for a single line of input.
func newRoot(cfg Config, in *bufio.Reader) *cobra.Command {
	root := cobra.Command{
		Use:           "ledger",
		Short:         "A single node hash-linked ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	p := prompter{in: in}

	root.AddCommand(
		mineCmd(cfg, p),
		appendCmd(cfg, p),
		removeCmd(cfg),
		checkCmd(cfg),
		usersCmd(cfg),
		balanceCmd(cfg, p),
		transactionsCmd(cfg),
		blocksCmd(cfg),
		exportCmd(cfg),
	)

	return &root
}

// =============================================================================

// prompter asks for values that were not provided on the command line.
type prompter struct {
	in *bufio.Reader
}

// ask writes the prompt and reads the answer from the next line of input.
func (p prompter) ask(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(prompt), err)
	}

	return strings.TrimSpace(line), nil
}
