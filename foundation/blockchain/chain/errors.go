package chain

import (
	"errors"
	"fmt"
)

// Set of error variables describing why a block can't be trusted.
var (
	ErrBrokenLink   = errors.New("previous hash does not match the prior block")
	ErrHashMismatch = errors.New("stored hash does not match block contents")
	ErrHashRejected = errors.New("hash does not satisfy the proof of work")
	ErrWrongNumber  = errors.New("block number is not the next number")
)

// AcceptanceError is returned when a block can't be appended to the chain.
type AcceptanceError struct {
	Number uint32
	Err    error
}

// Error implements the error interface.
func (ae *AcceptanceError) Error() string {
	return fmt.Sprintf("block %d not accepted: %s", ae.Number, ae.Err)
}

// Unwrap provides access to the reason the block was rejected.
func (ae *AcceptanceError) Unwrap() error {
	return ae.Err
}

// IntegrityError is returned when verification of the chain finds the first
// block that violates the rules of the ledger.
type IntegrityError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (ie *IntegrityError) Error() string {
	return fmt.Sprintf("chain invalid at block %d: %s", ie.Index, ie.Err)
}

// Unwrap provides access to the violation that was found.
func (ie *IntegrityError) Unwrap() error {
	return ie.Err
}
