package chain

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Block represents a single transaction recorded in the ledger and linked
// to the block before it by hash. The fields can't be changed after the
// block is mined or reconstructed, so the stored hash always matches the
// contents unless the block was tampered with.
type Block struct {
	number   uint32
	tx       Tx
	prevHash digest.Hash
	nonce    uint64
	hash     digest.Hash
}

// MineBlock constructs a new Block and performs the work to find a nonce
// that solves the proof of work puzzle defined by the validator.
func MineBlock(ctx context.Context, number uint32, tx Tx, prevHash digest.Hash, validator pow.Validator, evHandler func(v string, args ...any)) (Block, error) {
	nb := Block{
		number:   number,
		tx:       tx,
		prevHash: prevHash,
	}

	// Peform the proof of work mining operation.
	if err := nb.performPOW(ctx, validator, evHandler); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// NewBlock reconstructs a Block from known values. No mining is performed,
// the hash is computed once from the provided nonce.
func NewBlock(number uint32, tx Tx, prevHash digest.Hash, nonce uint64) Block {
	nb := Block{
		number:   number,
		tx:       tx,
		prevHash: prevHash,
		nonce:    nonce,
	}
	nb.hash = nb.ComputeHash()

	return nb
}

// performPOW does the work of mining to find a valid hash for the block.
// Pointer semantics are being used since a nonce is being discovered.
func (b *Block) performPOW(ctx context.Context, validator pow.Validator, ev func(v string, args ...any)) error {
	ev("chain: MineBlock: MINING: started: blk[%d]: tx%s", b.number, b.tx)
	defer ev("chain: MineBlock: MINING: completed: blk[%d]", b.number)

	// Choose a random starting point for the nonce. After this, the nonce
	// will be incremented by 1 until a solution is found.
	nBig, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return err
	}
	b.nonce = nBig.Uint64()

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("chain: MineBlock: MINING: attempts[%d]", attempts)
		}

		// Did we timeout trying to solve the problem.
		if err := ctx.Err(); err != nil {
			ev("chain: MineBlock: MINING: CANCELLED: attempts[%d]", attempts)
			return err
		}

		// Hash the block and check if we have solved the puzzle.
		b.hash = b.ComputeHash()
		if !validator(b.hash) {
			b.nonce++
			continue
		}

		ev("chain: MineBlock: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: nonce[%d]", b.prevHash, b.hash, b.nonce)
		ev("chain: MineBlock: MINING: attempts[%d]", attempts)

		return nil
	}
}

// ComputeHash calculates the hash for the block from its contents. The
// SHA-256 digest is fed, in this order:
//
//	number  4 bytes big endian
//	source  raw bytes of the account name
//	target  raw bytes of the account name
//	amount  4 bytes big endian, two's complement
//	prev    raw bytes of the previous hash
//	nonce   8 bytes big endian
//
// Changing this layout invalidates every previously mined chain.
func (b Block) ComputeHash() digest.Hash {
	var number [4]byte
	binary.BigEndian.PutUint32(number[:], b.number)

	var amount [4]byte
	binary.BigEndian.PutUint32(amount[:], uint32(b.tx.Amount))

	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], b.nonce)

	return digest.Sum(
		number[:],
		[]byte(b.tx.Source),
		[]byte(b.tx.Target),
		amount[:],
		b.prevHash.Bytes(),
		nonce[:],
	)
}

// Number returns the position of the block in the chain.
func (b Block) Number() uint32 {
	return b.number
}

// Tx returns a copy of the transaction stored in the block.
func (b Block) Tx() Tx {
	return b.tx
}

// Nonce returns the value that solved the proof of work.
func (b Block) Nonce() uint64 {
	return b.nonce
}

// PrevHash returns the hash of the previous block.
func (b Block) PrevHash() digest.Hash {
	return b.prevHash
}

// Hash returns the stored hash for the block.
func (b Block) Hash() digest.Hash {
	return b.hash
}

// String implements the fmt.Stringer interface for logging.
func (b Block) String() string {
	return b.hash.Hex()
}
