package captable

import (
	"errors"
	"testing"
)

// founded returns a ledger with the canonical 50/40 founders and a 10% pool
// over the default 1,000,000 share base.
func founded(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger(
		[]Founder{{Name: "Alice", Ownership: 50}, {Name: "Bob", Ownership: 40}},
		[]Pool{{Note: "Employee Pool", Ownership: 10}},
	)
	if err != nil {
		t.Fatalf("NewLedger() returned an unexpected error: %v", err)
	}
	return l
}

func assertEntry(t *testing.T, got Entry, name string, shares Shares, class ShareClass) {
	t.Helper()
	if got.Name != name {
		t.Errorf("entry name. Got: %q, want: %q", got.Name, name)
	}
	if got.Shares != shares {
		t.Errorf("entry %q shares. Got: %s, want: %s", name, got.Shares, shares)
	}
	if got.Class != class {
		t.Errorf("entry %q class. Got: %s, want: %s", name, got.Class, class)
	}
}

func TestNewLedger(t *testing.T) {
	l := founded(t)
	table := l.CapTable()

	if len(table.Entries) != 3 {
		t.Fatalf("entry count. Got: %d, want: 3", len(table.Entries))
	}
	assertEntry(t, table.Entries[0], "Alice", 500_000, Common)
	assertEntry(t, table.Entries[1], "Bob", 400_000, Common)
	assertEntry(t, table.Entries[2], "Employee Pool", 100_000, Option)
	if table.TotalShares != 1_000_000 {
		t.Errorf("total shares. Got: %s, want: 1000000", table.TotalShares)
	}

	history := l.History()
	if len(history) != 1 {
		t.Fatalf("history length. Got: %d, want: 1", len(history))
	}
	if history[0].Label != "Initial Cap Table" {
		t.Errorf("initial snapshot label. Got: %q, want: %q", history[0].Label, "Initial Cap Table")
	}
	if !history[0].Entries[0].Percent.Equal(50) {
		t.Errorf("Alice initial percent. Got: %s, want: 50.00%%", history[0].Entries[0].Percent)
	}
}

func TestNewLedger_Oversubscribed(t *testing.T) {
	// Percentages over 100% are accepted: the total simply exceeds the base.
	l, err := NewLedger(
		[]Founder{{Name: "Alice", Ownership: 80}, {Name: "Bob", Ownership: 40}},
		nil,
	)
	if err != nil {
		t.Fatalf("NewLedger() returned an unexpected error: %v", err)
	}
	if got := l.CapTable().TotalShares; got != 1_200_000 {
		t.Errorf("oversubscribed total. Got: %s, want: 1200000", got)
	}
}

func TestNewLedgerWithBase_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		founders []Founder
		base     Shares
	}{
		{name: "zero base", founders: []Founder{{Name: "A", Ownership: 50}}, base: 0},
		{name: "negative base", founders: []Founder{{Name: "A", Ownership: 50}}, base: -1},
		{name: "negative founder percent", founders: []Founder{{Name: "A", Ownership: -5}}, base: 1_000_000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewLedgerWithBase(tc.founders, nil, tc.base); err == nil {
				t.Error("NewLedgerWithBase() expected an error, got nil")
			}
		})
	}
}

func TestGiveEquity(t *testing.T) {
	l, err := NewLedger(
		[]Founder{{Name: "Alice", Ownership: 50}, {Name: "Bob", Ownership: 40}},
		nil,
	)
	if err != nil {
		t.Fatalf("NewLedger() returned an unexpected error: %v", err)
	}
	// 10% of the post-issuance total on 900,000 shares: 10/90 x 900,000.
	if err := l.GiveEquity(10, "X", Common); err != nil {
		t.Fatalf("GiveEquity() returned an unexpected error: %v", err)
	}

	table := l.CapTable()
	assertEntry(t, table.Entries[2], "X", 100_000, Common)
	if table.TotalShares != 1_000_000 {
		t.Errorf("total shares after grant. Got: %s, want: 1000000", table.TotalShares)
	}

	history := l.History()
	last := history[len(history)-1]
	if !last.Entries[2].Percent.Equal(10) {
		t.Errorf("grantee percent. Got: %s, want: 10.00%%", last.Entries[2].Percent)
	}
	if want := `Granted 10.00% of the company to "X"`; last.Label != want {
		t.Errorf("grant snapshot label. Got: %q, want: %q", last.Label, want)
	}
}

func TestGiveEquity_Rounding(t *testing.T) {
	// 5/95 x 1,000,000 = 52,631.578..., rounded half away from zero.
	l := founded(t)
	if err := l.GiveEquity(5, "Carol", Common); err != nil {
		t.Fatalf("GiveEquity() returned an unexpected error: %v", err)
	}
	table := l.CapTable()
	assertEntry(t, table.Entries[3], "Carol", 52_632, Common)
}

func TestGiveEquity_SameNameAppends(t *testing.T) {
	// A stakeholder receiving equity twice gets two rows, never a merge.
	l := founded(t)
	if err := l.GiveEquity(5, "Carol", Common); err != nil {
		t.Fatalf("GiveEquity() returned an unexpected error: %v", err)
	}
	if err := l.GiveEquity(5, "Carol", Common); err != nil {
		t.Fatalf("GiveEquity() returned an unexpected error: %v", err)
	}
	table := l.CapTable()
	if len(table.Entries) != 5 {
		t.Fatalf("entry count. Got: %d, want: 5", len(table.Entries))
	}
	if table.Entries[3].Name != "Carol" || table.Entries[4].Name != "Carol" {
		t.Error("expected two separate Carol entries")
	}
}

func TestGiveEquity_InvalidPercent(t *testing.T) {
	testCases := []struct {
		name    string
		percent Percent
	}{
		{name: "exactly 100", percent: 100},
		{name: "over 100", percent: 150},
		{name: "negative", percent: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := founded(t)
			before := l.CapTable()
			beforeHistory := len(l.History())

			err := l.GiveEquity(tc.percent, "X", Common)
			if !errors.Is(err, ErrInvalidPercent) {
				t.Fatalf("GiveEquity(%s) error. Got: %v, want: ErrInvalidPercent", tc.percent, err)
			}

			// A failed grant commits nothing: no entry, no snapshot.
			after := l.CapTable()
			if len(after.Entries) != len(before.Entries) || after.TotalShares != before.TotalShares {
				t.Error("failed GiveEquity() mutated the cap table")
			}
			if len(l.History()) != beforeHistory {
				t.Error("failed GiveEquity() recorded a snapshot")
			}
		})
	}
}

func TestSignSafe(t *testing.T) {
	l := founded(t)
	before := l.CapTable()

	err := l.SignSafe(SafeTerms{
		Name:   "Angel",
		Amount: M(100_000, "USD"),
		Cap:    CapAt(M(5_000_000, "USD")),
	})
	if err != nil {
		t.Fatalf("SignSafe() returned an unexpected error: %v", err)
	}

	t.Run("Shares are untouched", func(t *testing.T) {
		after := l.CapTable()
		if len(after.Entries) != len(before.Entries) || after.TotalShares != before.TotalShares {
			t.Error("SignSafe() changed the share state")
		}
	})

	t.Run("Instrument is outstanding", func(t *testing.T) {
		safes := l.Safes()
		if len(safes) != 1 {
			t.Fatalf("safe count. Got: %d, want: 1", len(safes))
		}
		s := safes[0]
		if s.Name != "Angel" || s.Converted {
			t.Errorf("outstanding safe. Got: %+v", s)
		}
		if s.Kind != PostMoney {
			t.Errorf("default kind. Got: %s, want: post-money", s.Kind)
		}
		if !s.Cap.IsCapped() {
			t.Error("cap was lost")
		}
	})

	t.Run("Paper event is in the audit trail", func(t *testing.T) {
		history := l.History()
		if len(history) != 2 {
			t.Fatalf("history length. Got: %d, want: 2", len(history))
		}
		last := history[len(history)-1]
		if last.TotalShares != history[0].TotalShares {
			t.Error("safe snapshot changed the total")
		}
		if want := `Signed post-money SAFE "Angel" for $100,000.00, $5,000,000.00 cap`; last.Label != want {
			t.Errorf("safe snapshot label. Got: %q, want: %q", last.Label, want)
		}
	})
}

func TestSignSafe_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		terms SafeTerms
	}{
		{name: "zero amount", terms: SafeTerms{Name: "A", Amount: M(0, "USD")}},
		{name: "negative amount", terms: SafeTerms{Name: "A", Amount: M(-1, "USD")}},
		{name: "zero cap", terms: SafeTerms{Name: "A", Amount: M(1, "USD"), Cap: CapAt(M(0, "USD"))}},
		{name: "discount of 100", terms: SafeTerms{Name: "A", Amount: M(1, "USD"), Discount: 100}},
		{name: "cap currency differs from amount", terms: SafeTerms{Name: "A", Amount: M(1, "USD"), Cap: CapAt(M(1_000_000, "EUR"))}},
		{name: "negative discount", terms: SafeTerms{Name: "A", Amount: M(1, "USD"), Discount: -10}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := founded(t)
			if err := l.SignSafe(tc.terms); err == nil {
				t.Error("SignSafe() expected an error, got nil")
			}
			if len(l.Safes()) != 0 {
				t.Error("failed SignSafe() recorded an instrument")
			}
		})
	}
}
