package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/spf13/cobra"
)

// txInput represents the transaction values provided by the user.
type txInput struct {
	Source string `json:"source" validate:"omitempty,nefield=Target"`
	Target string `json:"target" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0,lte=2147483647"`
}

// toTx validates the input and converts it into a transaction.
func (ti txInput) toTx() (chain.Tx, error) {
	if err := validate.Check(ti); err != nil {
		return chain.Tx{}, err
	}

	return chain.NewTx(ti.Source, ti.Target, int32(ti.Amount)), nil
}

// txArgs accepts no arguments, in which case the values are prompted for,
// or the optional source followed by the target, amount and any extra
// trailing values.
func txArgs(extra int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0, 2 + extra, 3 + extra:
			return nil
		}

		return fmt.Errorf("accepts 0, %d or %d arg(s), received %d", 2+extra, 3+extra, len(args))
	}
}

// readTx builds the transaction from the arguments, prompting for the
// values when no arguments are provided. Any values after the amount are
// returned as rest.
func readTx(cmd *cobra.Command, p prompter, args []string, extra []string) (chain.Tx, []string, error) {
	if len(args) == 0 {
		source, err := p.ask(cmd, "Source (return for deposit): ")
		if err != nil {
			return chain.Tx{}, nil, err
		}
		target, err := p.ask(cmd, "Target: ")
		if err != nil {
			return chain.Tx{}, nil, err
		}
		amount, err := p.ask(cmd, "Amount: ")
		if err != nil {
			return chain.Tx{}, nil, err
		}

		args = []string{source, target, amount}
		for _, prompt := range extra {
			v, err := p.ask(cmd, prompt)
			if err != nil {
				return chain.Tx{}, nil, err
			}
			args = append(args, v)
		}
	}

	// Without a source the transaction is a deposit.
	if len(args) == 2+len(extra) {
		args = append([]string{""}, args...)
	}

	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || amount > math.MaxInt32 || amount < math.MinInt32 {
		return chain.Tx{}, nil, fmt.Errorf("amount %q is not a 32 bit integer", args[2])
	}

	ti := txInput{
		Source: args[0],
		Target: args[1],
		Amount: amount,
	}

	tx, err := ti.toTx()
	if err != nil {
		return chain.Tx{}, nil, err
	}

	return tx, args[3:], nil
}
