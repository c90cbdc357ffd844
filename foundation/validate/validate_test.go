package validate_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/validate"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

type transfer struct {
	Source string `json:"source" validate:"omitempty,nefield=Target"`
	Target string `json:"target" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0"`
}

func TestCheck(t *testing.T) {
	t.Log("Given the need to validate user input.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the input is valid.", testID)
		{
			if err := validate.Check(transfer{Target: "alice", Amount: 10}); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould pass validation: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould pass validation.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the input is invalid.", testID)
		{
			err := validate.Check(transfer{Source: "bob", Amount: -1})
			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tTest %d:\tShould get field errors, got %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get field errors.", success, testID)

			fields := validate.GetFieldErrors(err).Fields()
			for _, name := range []string{"target", "amount"} {
				if _, exists := fields[name]; !exists {
					t.Fatalf("\t%s\tTest %d:\tShould name the %s field using the json tag, got %v", failed, testID, name, fields)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould name the fields using the json tags.", success, testID)

			if got, exp := fields["amount"], "amount must be 0 or greater"; got != exp {
				t.Fatalf("\t%s\tTest %d:\tShould translate the message, got %q, exp %q", failed, testID, got, exp)
			}
			t.Logf("\t%s\tTest %d:\tShould translate the message.", success, testID)
		}
	}
}
