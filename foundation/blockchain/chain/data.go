package chain

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BlockData represents what is serialized for a block. Only the number,
// transaction, previous hash and nonce define a block, the hash is carried
// so it can be checked when the block is rebuilt.
type BlockData struct {
	Number   uint32        `json:"number"`
	Tx       Tx            `json:"tx"`
	PrevHash hexutil.Bytes `json:"prev_hash"`
	Nonce    uint64        `json:"nonce"`
	Hash     hexutil.Bytes `json:"hash"`
}

// NewBlockData constructs block data from a block.
func NewBlockData(block Block) BlockData {
	bd := BlockData{
		Number:   block.number,
		Tx:       block.tx,
		PrevHash: block.prevHash.Bytes(),
		Nonce:    block.nonce,
		Hash:     block.hash.Bytes(),
	}

	return bd
}

// ToBlock converts the block data back into a block by recomputing the
// hash from the serialized nonce. If the data carries a hash it must
// match the recomputed one.
func ToBlock(bd BlockData) (Block, error) {
	block := NewBlock(bd.Number, bd.Tx, digest.New(bd.PrevHash), bd.Nonce)

	if bd.Hash != nil && !block.hash.Equal(digest.New(bd.Hash)) {
		return Block{}, fmt.Errorf("block %d: %w: got %s, exp %s", bd.Number, ErrHashMismatch, digest.New(bd.Hash), block.hash)
	}

	return block, nil
}
