package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// These tests reach into the blocks to simulate malicious changes that
// can't be made through the package API.

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func tamperedChain(t *testing.T) *Chain {
	ch, err := New(context.Background(), Config{Validator: pow.ZeroBytes(1)})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the chain: %v", failed, err)
	}

	for _, tx := range []Tx{NewTx("", "alice", 100), NewTx("alice", "bob", 30), NewTx("bob", "carol", 10)} {
		block, err := ch.Mine(context.Background(), tx)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to mine: %v", failed, err)
		}
		if err := ch.Append(block); err != nil {
			t.Fatalf("\t%s\tShould be able to append: %v", failed, err)
		}
	}

	return ch
}

func TestAppendTampered(t *testing.T) {
	t.Log("Given the need to reject blocks changed after mining.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the amount is changed after mining.", testID)
		{
			ch := tamperedChain(t)

			block, err := ch.Mine(context.Background(), NewTx("carol", "alice", 5))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to mine: %v", failed, testID, err)
			}
			block.tx.Amount = 500

			err = ch.Append(block)

			var ae *AcceptanceError
			if !errors.As(err, &ae) || !errors.Is(err, ErrHashMismatch) {
				t.Fatalf("\t%s\tTest %d:\tShould reject the block, got %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject the block.", success, testID)

			if ae.Number != block.number {
				t.Fatalf("\t%s\tTest %d:\tShould report the block number, got %d", failed, testID, ae.Number)
			}
			t.Logf("\t%s\tTest %d:\tShould report the block number.", success, testID)
		}
	}
}

func TestVerifyTampered(t *testing.T) {
	type table struct {
		name   string
		tamper func(ch *Chain)
		index  int
		err    error
	}

	tt := []table{
		{
			name: "amount",
			tamper: func(ch *Chain) {
				ch.blocks[2].tx.Amount = 1
			},
			index: 2,
			err:   ErrHashMismatch,
		},
		{
			name: "nonce",
			tamper: func(ch *Chain) {
				ch.blocks[1].nonce++
			},
			index: 1,
			err:   ErrHashMismatch,
		},
		{
			name: "rehashed",
			tamper: func(ch *Chain) {
				b := ch.blocks[1]
				b.tx.Amount = 1000
				b.hash = b.ComputeHash()
				ch.blocks[1] = b
			},
			index: 1,
			err:   ErrHashRejected,
		},
		{
			name: "relinked",
			tamper: func(ch *Chain) {
				b := ch.blocks[3]
				ch.blocks[3] = NewBlock(b.number, b.tx, digest.Sum([]byte("elsewhere")), b.nonce)
			},
			index: 3,
			err:   ErrBrokenLink,
		},
		{
			name: "genesis",
			tamper: func(ch *Chain) {
				b := ch.blocks[0]
				ch.blocks[0] = NewBlock(b.number, b.tx, digest.Sum([]byte("before")), b.nonce)
			},
			index: 0,
			err:   ErrBrokenLink,
		},
		{
			name: "first-of-many",
			tamper: func(ch *Chain) {
				ch.blocks[1].tx.Target = "mallory"
				ch.blocks[3].tx.Amount = 9
			},
			index: 1,
			err:   ErrHashMismatch,
		},
	}

	t.Log("Given the need to detect changes made to blocks in the chain.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen the %s is tampered with.", testID, tst.name)
			{
				f := func(t *testing.T) {
					ch := tamperedChain(t)

					if err := ch.Verify(); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould verify before tampering: %v", failed, testID, err)
					}

					tst.tamper(ch)

					// A rehashed block only passes the proof of work by luck.
					if tst.err == ErrHashRejected && ch.validator(ch.blocks[tst.index].hash) {
						t.Skip("rehashed block happens to solve the puzzle")
					}

					err := ch.Verify()

					var ie *IntegrityError
					if !errors.As(err, &ie) || !errors.Is(err, tst.err) {
						t.Fatalf("\t%s\tTest %d:\tShould fail with %v, got %v", failed, testID, tst.err, err)
					}
					t.Logf("\t%s\tTest %d:\tShould fail with %v.", success, testID, tst.err)

					if ie.Index != tst.index {
						t.Fatalf("\t%s\tTest %d:\tShould report block %d, got %d", failed, testID, tst.index, ie.Index)
					}
					t.Logf("\t%s\tTest %d:\tShould report block %d.", success, testID, tst.index)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
