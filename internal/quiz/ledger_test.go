package quiz

import "testing"

func TestLedgerJudge(t *testing.T) {
	testCases := []struct {
		name          string
		correctOption int
		proposed      int
		wantCorrect   bool
	}{
		{"matching option", 2, 2, true},
		{"wrong option", 2, 0, false},
		{"zero index match", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newPendingLedger()
			ledger.register("inst-1", tc.correctOption)

			correct, correctOption, err := ledger.judge("inst-1", tc.proposed)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if correct != tc.wantCorrect {
				t.Errorf("Expected correct=%v, got %v", tc.wantCorrect, correct)
			}
			if correctOption != tc.correctOption {
				t.Errorf("Expected correct option %d, got %d", tc.correctOption, correctOption)
			}
		})
	}
}

func TestLedgerUnknownInstance(t *testing.T) {
	ledger := newPendingLedger()

	if _, _, err := ledger.judge("never-issued", 0); err != ErrInstanceNotFound {
		t.Errorf("Expected ErrInstanceNotFound, got %v", err)
	}
}

func TestLedgerConsumedOnce(t *testing.T) {
	ledger := newPendingLedger()
	ledger.register("inst-1", 1)

	if _, _, err := ledger.judge("inst-1", 1); err != nil {
		t.Fatalf("First judgment failed: %v", err)
	}
	if _, _, err := ledger.judge("inst-1", 1); err != ErrAlreadyAnswered {
		t.Errorf("Expected ErrAlreadyAnswered on replay, got %v", err)
	}
	// Wrong answers consume the entry too.
	ledger.register("inst-2", 1)
	if _, _, err := ledger.judge("inst-2", 0); err != nil {
		t.Fatalf("First judgment failed: %v", err)
	}
	if _, _, err := ledger.judge("inst-2", 1); err != ErrAlreadyAnswered {
		t.Errorf("Expected ErrAlreadyAnswered after wrong answer, got %v", err)
	}
}

func TestLedgerPendingCount(t *testing.T) {
	ledger := newPendingLedger()
	ledger.register("a", 0)
	ledger.register("b", 1)

	if got := ledger.pendingCount(); got != 2 {
		t.Errorf("Expected 2 pending entries, got %d", got)
	}

	if _, _, err := ledger.judge("a", 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := ledger.pendingCount(); got != 1 {
		t.Errorf("Expected 1 pending entry after judgment, got %d", got)
	}
}
