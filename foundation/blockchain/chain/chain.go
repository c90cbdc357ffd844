// Package chain maintains an append-only ledger of blocks, each holding a
// single transfer between accounts, linked together by hash and protected
// by a proof of work acceptance rule.
package chain

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/balance"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// EventHandler defines a function that is called when events
// occur in the processing of the chain.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start
// the chain.
type Config struct {
	Validator pow.Validator
	EvHandler EventHandler
}

// Chain manages the blocks of the ledger. The genesis block is always
// present and can't be removed.
//
// Iterating with Blocks, Transactions or Participants while the chain is
// being changed by Append or RemoveLast has undefined results. Callers are
// responsible for not doing that.
type Chain struct {
	mu sync.RWMutex

	validator pow.Validator
	evHandler EventHandler
	blocks    []Block
}

// New constructs a chain and mines the genesis block.
func New(ctx context.Context, cfg Config) (*Chain, error) {

	// Setup a validator that accepts every hash if one is not provided.
	validator := cfg.Validator
	if validator == nil {
		validator = pow.AcceptAll
	}

	// Setup a nil event handler function if one is not provided.
	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	// The genesis block carries the empty transaction and links to the
	// empty hash.
	genesis, err := MineBlock(ctx, 0, Tx{}, digest.Empty, validator, ev)
	if err != nil {
		return nil, fmt.Errorf("mining genesis: %w", err)
	}

	ch := Chain{
		validator: validator,
		evHandler: ev,
		blocks:    []Block{genesis},
	}

	return &ch, nil
}

// Mine builds a new block for the transaction that can be appended to the
// end of the chain. The chain is not changed.
func (ch *Chain) Mine(ctx context.Context, tx Tx) (Block, error) {
	ch.mu.RLock()
	number := uint32(len(ch.blocks))
	prevHash := ch.blocks[len(ch.blocks)-1].hash
	ch.mu.RUnlock()

	return MineBlock(ctx, number, tx, prevHash, ch.validator, ch.evHandler)
}

// Append adds the block to the end of the chain after validating the block
// belongs there.
func (ch *Chain) Append(block Block) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	tail := ch.blocks[len(ch.blocks)-1]

	if err := ch.validateNextBlock(block, tail); err != nil {
		return &AcceptanceError{Number: block.number, Err: err}
	}

	ch.blocks = append(ch.blocks, block)

	ch.evHandler("chain: Append: blk[%d]: hash[%s]", block.number, block.hash)

	return nil
}

// RemoveLast drops the last block from the chain. The genesis block is
// never removed and false is returned when it's the only block.
func (ch *Chain) RemoveLast() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if len(ch.blocks) < 2 {
		return false
	}

	last := len(ch.blocks) - 1
	ch.evHandler("chain: RemoveLast: blk[%d]: hash[%s]", last, ch.blocks[last].hash)

	ch.blocks[last] = Block{}
	ch.blocks = ch.blocks[:last]

	return true
}

// Size returns the number of blocks in the chain, including genesis.
func (ch *Chain) Size() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return len(ch.blocks)
}

// Tail returns the last block in the chain.
func (ch *Chain) Tail() Block {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return ch.blocks[len(ch.blocks)-1]
}

// TailHash returns the hash of the last block in the chain. This is the
// previous hash for the next block to be mined.
func (ch *Chain) TailHash() digest.Hash {
	return ch.Tail().hash
}

// Verify walks the entire chain from genesis and checks the links between
// blocks, the hash of each block, the proof of work and that no account
// spends more than it holds. The first violation found is returned.
func (ch *Chain) Verify() error {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	sheet := balance.NewSheet(nil)
	prevHash := digest.Empty

	for i, block := range ch.blocks {
		ch.evHandler("chain: Verify: blk[%d]: hash[%s]", i, block.hash)

		if !block.prevHash.Equal(prevHash) {
			return &IntegrityError{Index: i, Err: ErrBrokenLink}
		}

		if !block.ComputeHash().Equal(block.hash) {
			return &IntegrityError{Index: i, Err: ErrHashMismatch}
		}

		if !ch.validator(block.hash) {
			return &IntegrityError{Index: i, Err: ErrHashRejected}
		}

		// The sheet only holds the results of prior blocks at this point.
		tx := block.tx
		if err := sheet.ApplyTransaction(tx.Source, tx.Target, int64(tx.Amount)); err != nil {
			return &IntegrityError{Index: i, Err: err}
		}

		prevHash = block.hash
	}

	return nil
}

// IsValid reports whether Verify finds no violations.
func (ch *Chain) IsValid() bool {
	return ch.Verify() == nil
}

// BalanceOf returns the sum of everything credited to the account minus
// everything debited from it. Accounts never seen have a balance of zero.
func (ch *Chain) BalanceOf(account string) int64 {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	sheet := balance.NewSheet(nil)
	for _, block := range ch.blocks {
		if block.tx.Source != account && block.tx.Target != account {
			continue
		}
		sheet.ApplyValue(block.tx.Source, block.tx.Target, int64(block.tx.Amount))
	}

	return sheet.Balance(account)
}

// Blocks returns a sequence over the blocks in chain order starting with
// genesis. Each iteration works from a copy of the blocks taken when the
// iteration starts.
func (ch *Chain) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for _, block := range ch.snapshot() {
			if !yield(block) {
				return
			}
		}
	}
}

// Transactions returns a sequence over the transactions in chain order
// starting with the genesis transaction.
func (ch *Chain) Transactions() iter.Seq[Tx] {
	return func(yield func(Tx) bool) {
		for block := range ch.Blocks() {
			if !yield(block.Tx()) {
				return
			}
		}
	}
}

// Participants returns a sequence over every account that has been credited
// at least once, in the order they were first credited.
func (ch *Chain) Participants() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for tx := range ch.Transactions() {
			if tx.Target == "" {
				continue
			}

			if _, exists := seen[tx.Target]; exists {
				continue
			}
			seen[tx.Target] = struct{}{}

			if !yield(tx.Target) {
				return
			}
		}
	}
}

// =============================================================================

// snapshot makes a copy of the current set of blocks.
func (ch *Chain) snapshot() []Block {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	blocks := make([]Block, len(ch.blocks))
	copy(blocks, ch.blocks)
	return blocks
}

// validateNextBlock checks the block can follow the tail of the chain.
func (ch *Chain) validateNextBlock(block Block, tail Block) error {
	ch.evHandler("chain: validateNextBlock: blk[%d]: check: hash matches contents", block.number)

	if !block.ComputeHash().Equal(block.hash) {
		return ErrHashMismatch
	}

	ch.evHandler("chain: validateNextBlock: blk[%d]: check: hash has been solved", block.number)

	if !ch.validator(block.hash) {
		return ErrHashRejected
	}

	ch.evHandler("chain: validateNextBlock: blk[%d]: check: parent hash does match tail block", block.number)

	if !block.prevHash.Equal(tail.hash) {
		return fmt.Errorf("%w: got %s, exp %s", ErrBrokenLink, block.prevHash, tail.hash)
	}

	ch.evHandler("chain: validateNextBlock: blk[%d]: check: block number is the next number", block.number)

	if block.number != tail.number+1 {
		return fmt.Errorf("%w: got %d, exp %d", ErrWrongNumber, block.number, tail.number+1)
	}

	return nil
}
