// Package pow provides the acceptance rules a block hash must satisfy
// before it can be added to the ledger.
package pow

import "github.com/ardanlabs/ledger/foundation/blockchain/digest"

// Validator decides if a hash solves the proof of work puzzle.
type Validator func(hash digest.Hash) bool

// AcceptAll accepts every hash. Mining completes on the first attempt.
var AcceptAll = ZeroBytes(0)

// ZeroBytes constructs a validator that requires the first difficulty
// bytes of the hash to be zero. A hash shorter than the difficulty is
// never solved.
func ZeroBytes(difficulty int) Validator {
	return func(hash digest.Hash) bool {
		if hash.Len() < difficulty {
			return false
		}

		for i := 0; i < difficulty; i++ {
			if b, _ := hash.At(i); b != 0 {
				return false
			}
		}

		return true
	}
}
