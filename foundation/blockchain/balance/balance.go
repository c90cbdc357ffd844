// Package balance maintains account balances in memory.
package balance

import (
	"errors"
	"fmt"
	"sync"
)

// Set of error variables for applying transactions.
var (
	ErrNegativeAmount    = errors.New("negative amount")
	ErrSelfTransfer      = errors.New("sending money to yourself")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Sheet represents the data representation to maintain account balances.
// An empty from account represents a deposit into the system.
type Sheet struct {
	sheet map[string]int64
	mu    sync.RWMutex
}

// NewSheet constructs a new balance sheet for use, expects a starting
// balance sheet which can be nil.
func NewSheet(sheet map[string]int64) *Sheet {
	bs := Sheet{
		sheet: make(map[string]int64),
	}

	if sheet != nil {
		bs.Reset(sheet)
	}

	return &bs
}

// Reset takes the specified sheet and resets the balances.
func (bs *Sheet) Reset(sheet map[string]int64) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	bs.sheet = make(map[string]int64)
	for account, value := range sheet {
		bs.sheet[account] = value
	}
}

// Copy makes a copy of the current balance sheet but returns the raw data.
func (bs *Sheet) Copy() map[string]int64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	sheet := make(map[string]int64)
	for account, value := range bs.sheet {
		sheet[account] = value
	}
	return sheet
}

// Balance returns the balance for the specified account. Accounts not
// on the sheet have a balance of zero.
func (bs *Sheet) Balance(account string) int64 {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	return bs.sheet[account]
}

// ApplyValue moves the value between the accounts without performing any
// accounting checks.
func (bs *Sheet) ApplyValue(from string, to string, value int64) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if from != "" {
		bs.sheet[from] -= value
	}
	if to != "" {
		bs.sheet[to] += value
	}
}

// ApplyTransaction performs the business logic for applying a transaction
// to the balance sheet. The sheet is left untouched when the transaction
// is rejected.
func (bs *Sheet) ApplyTransaction(from string, to string, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, value)
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	{
		if from != "" {
			if from == to {
				return fmt.Errorf("%w: from %s, to %s", ErrSelfTransfer, from, to)
			}

			if value > bs.sheet[from] {
				return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, from, bs.sheet[from], value)
			}

			bs.sheet[from] -= value
		}

		if to != "" {
			bs.sheet[to] += value
		}
	}

	return nil
}
