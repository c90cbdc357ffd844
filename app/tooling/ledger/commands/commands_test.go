package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/app/tooling/ledger/commands"
	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// runScript feeds the script to a shell over a chain that accepts every
// hash so any nonce can be appended.
func runScript(t *testing.T, script string) (*chain.Chain, string) {
	ch, err := chain.New(context.Background(), chain.Config{})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the chain: %v", failed, err)
	}

	cfg := commands.Config{
		Log:   zap.NewNop().Sugar(),
		Chain: ch,
	}

	var out bytes.Buffer
	if err := commands.Run(context.Background(), cfg, strings.NewReader(script), &out); err != nil {
		t.Fatalf("\t%s\tShould be able to run the script: %v", failed, err)
	}

	return ch, out.String()
}

func TestShell(t *testing.T) {
	type table struct {
		name   string
		script string
		size   int
		expect []string
	}

	tt := []table{
		{
			name: "arguments",
			script: strings.Join([]string{
				"append alice 100 1",
				"APPEND alice bob 30 2",
				"users",
				"balance alice",
				"balance carol",
				"check",
				"transactions",
				"quit",
				"remove",
			}, "\n"),
			size: 3,
			expect: []string{
				"Appended: Block 1 (Transaction: [Deposit, Target: alice, Amount: 100], Nonce: 1)",
				"Appended: Block 2 (Transaction: [Source: alice, Target: bob, Amount: 30], Nonce: 2)",
				"alice\nbob\n",
				"alice's balance is 70",
				"carol's balance is 0",
				"The blockchain checks out.",
				"[Source: alice, Target: bob, Amount: 30]",
				"Goodbye",
			},
		},
		{
			name:   "prompts",
			script: "mine\n\nalice\n5\nappend\n\nalice\n5\n7\nbalance\nalice\n",
			size:   2,
			expect: []string{
				"Source (return for deposit): ",
				"Nonce: ",
				"Appended: Block 1 (Transaction: [Deposit, Target: alice, Amount: 5], Nonce: 7)",
				"User: alice's balance is 5",
				"Goodbye",
			},
		},
		{
			name:   "remove",
			script: "append alice 1 1\nremove\nremove\n",
			size:   1,
			expect: []string{
				"Removed last element.",
				"No last element to remove.",
			},
		},
		{
			name:   "overdraft",
			script: "append alice bob 1000 3\ncheck\n",
			size:   2,
			expect: []string{
				"The blockchain does not check out: chain invalid at block 1: insufficient funds",
			},
		},
		{
			name:   "rejected-input",
			script: "append alice alice 5 1\nappend\n\nbob\n-5\n1\nappend bob 5 x\nmine bob\nbogus\n",
			size:   1,
			expect: []string{
				"append: source",
				"append: amount must be 0 or greater",
				`append: nonce "x" is not an unsigned integer`,
				"mine: accepts 0, 2 or 3 arg(s), received 1",
				"bogus: unknown command",
			},
		},
		{
			name:   "export",
			script: "append alice 100 1\nblocks\nexport\n",
			size:   2,
			expect: []string{
				"Block 1 (Transaction: [Deposit, Target: alice, Amount: 100], Nonce: 1, prevHash: ",
				`"number":0,"tx":{"source":"","target":"","amount":0},"prev_hash":"0x"`,
				`"number":1,"tx":{"source":"","target":"alice","amount":100}`,
			},
		},
	}

	t.Log("Given the need to drive the ledger from the shell.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen running the %s script.", testID, tst.name)
			{
				f := func(t *testing.T) {
					ch, out := runScript(t, tst.script)

					for _, exp := range tst.expect {
						if !strings.Contains(out, exp) {
							t.Fatalf("\t%s\tTest %d:\tShould see %q in:\n%s", failed, testID, exp, out)
						}
						t.Logf("\t%s\tTest %d:\tShould see %q.", success, testID, exp)
					}

					if ch.Size() != tst.size {
						t.Fatalf("\t%s\tTest %d:\tShould leave %d blocks, got %d", failed, testID, tst.size, ch.Size())
					}
					t.Logf("\t%s\tTest %d:\tShould leave %d blocks.", success, testID, tst.size)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
