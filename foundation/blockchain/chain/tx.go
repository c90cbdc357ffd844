package chain

import "fmt"

// Tx is the transactional information between two parties. An empty
// source represents a deposit into the system. Only the genesis block
// carries an empty target.
type Tx struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Amount int32  `json:"amount"`
}

// NewTx constructs a new transaction.
func NewTx(source string, target string, amount int32) Tx {
	return Tx{
		Source: source,
		Target: target,
		Amount: amount,
	}
}

// IsDeposit reports whether the transaction credits the target without
// debiting any account.
func (tx Tx) IsDeposit() bool {
	return tx.Source == ""
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	if tx.IsDeposit() {
		return fmt.Sprintf("[Deposit, Target: %s, Amount: %d]", tx.Target, tx.Amount)
	}

	return fmt.Sprintf("[Source: %s, Target: %s, Amount: %d]", tx.Source, tx.Target, tx.Amount)
}
