package captable

import (
	"errors"
	"fmt"
	"slices"
)

// Precondition violations surfaced by ledger operations. They are detected
// before any state changes, so a failed operation commits nothing: no new
// entry, no snapshot, no command.
var (
	// ErrInvalidPercent reports a percentage outside [0, 100).
	ErrInvalidPercent = errors.New("percent must be in [0,100)")
	// ErrDegenerateState reports a priced round on a ledger with no shares
	// outstanding, where no price per share can be implied.
	ErrDegenerateState = errors.New("no shares outstanding")
)

// DefaultInitialShares is the share base a company is founded on unless the
// caller picks another one.
const DefaultInitialShares Shares = 1_000_000

// Founder is one founding stakeholder and the percentage of the initial
// share base they receive as common stock.
type Founder struct {
	Name      string  `json:"name"`
	Ownership Percent `json:"percent"`
}

// Pool is a reserved option pool and the percentage of the initial share
// base set aside for it.
type Pool struct {
	Note      string  `json:"note"`
	Ownership Percent `json:"percent"`
}

// CapTable is the live state of the ledger: the current entries and the
// running total they sum to.
type CapTable struct {
	Entries     []Entry
	TotalShares Shares
}

// Ledger owns the cap table entries, the running share total, the list of
// convertible instruments, and the append-only snapshot history.
//
// Entries accumulate monotonically: share counts only ever grow across the
// ledger's lifetime. A ledger is exclusively owned by its single caller;
// the conversion algorithm's multi-pass accumulator is not safe under
// interleaved mutation.
type Ledger struct {
	entries      []Entry
	totalShares  Shares
	safes        []*SAFE
	history      []Snapshot
	transactions []Transaction
}

// NewLedger creates a ledger from founder and pool percentages over the
// default 1,000,000 share base.
func NewLedger(founders []Founder, pools []Pool) (*Ledger, error) {
	return NewLedgerWithBase(founders, pools, DefaultInitialShares)
}

// NewLedgerWithBase creates a ledger from founder and pool percentages over
// the given share base. Founders become common entries and pools option
// entries, in the order given, each sized round(ownership/100 x base).
//
// No upper bound is enforced on the percentage sum: founders and pools over
// 100% simply make the total exceed the requested base.
func NewLedgerWithBase(founders []Founder, pools []Pool, base Shares) (*Ledger, error) {
	if !base.IsPositive() {
		return nil, fmt.Errorf("found company: share base must be positive, got %s", base)
	}
	l := &Ledger{}
	for _, f := range founders {
		if f.Ownership < 0 {
			return nil, fmt.Errorf("found company: founder %q: %w: got %s", f.Name, ErrInvalidPercent, f.Ownership)
		}
		l.addEntry(Entry{Name: f.Name, Shares: percentOfBase(f.Ownership, base), Class: Common})
	}
	for _, p := range pools {
		if p.Ownership < 0 {
			return nil, fmt.Errorf("found company: pool %q: %w: got %s", p.Note, ErrInvalidPercent, p.Ownership)
		}
		l.addEntry(Entry{Name: p.Note, Shares: percentOfBase(p.Ownership, base), Class: Option})
	}
	l.commit("Initial Cap Table", foundCmd{
		baseCmd:  baseCmd{Command: CmdFound},
		Base:     base,
		Founders: slices.Clone(founders),
		Pools:    slices.Clone(pools),
	})
	return l, nil
}

// percentOfBase sizes an initial entry: round(pct/100 x base).
func percentOfBase(pct Percent, base Shares) Shares {
	hundred := Percent(100)
	return roundShares(pct.decimal().Mul(base.Decimal()).Div(hundred.decimal()))
}

// GiveEquity issues new shares so that, after issuance, the grantee owns
// exactly the given percentage of the post-issuance total. Solving
// n/(T+n) = p/100 for the new shares n gives n = round(p/(100-p) x T).
// A new entry is always appended, even when the grantee already holds one.
func (l *Ledger) GiveEquity(percent Percent, name string, class ShareClass) error {
	if percent < 0 || percent >= 100 {
		return fmt.Errorf("give equity to %q: %w: got %s", name, ErrInvalidPercent, percent)
	}
	num := percent.decimal().Mul(l.totalShares.Decimal())
	den := Percent(100 - percent).decimal()
	l.addEntry(Entry{Name: name, Shares: roundShares(num.Div(den)), Class: class})
	l.commit(fmt.Sprintf("Granted %s of the company to %q", percent, name), grantCmd{
		baseCmd: baseCmd{Command: CmdGrant},
		Name:    name,
		Percent: percent,
		Class:   class,
	})
	return nil
}

// SignSafe records a new, unconverted SAFE. Shares and totals are
// untouched; the snapshot history still gains a descriptive record, so
// paper events stay in the audit trail alongside share events.
func (l *Ledger) SignSafe(t SafeTerms) error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("sign safe %q: amount must be positive, got %s", t.Name, t.Amount)
	}
	if cap, ok := t.Cap.Value(); ok && !cap.IsPositive() {
		return fmt.Errorf("sign safe %q: cap must be positive, got %s", t.Name, cap)
	}
	if cap, ok := t.Cap.Value(); ok && !cap.SameCurrency(t.Amount) {
		return fmt.Errorf("sign safe %q: currency mismatch: %s amount, %s cap",
			t.Name, t.Amount.Currency(), cap.Currency())
	}
	if t.Discount < 0 || t.Discount >= 100 {
		return fmt.Errorf("sign safe %q: discount: %w: got %s", t.Name, ErrInvalidPercent, t.Discount)
	}
	s := newSafe(t)
	l.safes = append(l.safes, s)
	l.commit(s.describe(), signSafeCmd{
		baseCmd: baseCmd{Command: CmdSignSafe},
		Terms:   t,
	})
	return nil
}

// CapTable returns the current entries and total. The returned slice is a
// copy; reading never mutates the ledger.
func (l *Ledger) CapTable() CapTable {
	return CapTable{Entries: slices.Clone(l.entries), TotalShares: l.totalShares}
}

// History returns the full snapshot history, oldest first.
func (l *Ledger) History() []Snapshot {
	return slices.Clone(l.history)
}

// Safes returns the recorded instruments, converted ones included, in
// signing order.
func (l *Ledger) Safes() []SAFE {
	out := make([]SAFE, 0, len(l.safes))
	for _, s := range l.safes {
		out = append(out, *s)
	}
	return out
}

// Transactions returns the command log, oldest first.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// addEntry appends one line and grows the running total, the only way
// entries and the total ever change.
func (l *Ledger) addEntry(e Entry) {
	l.entries = append(l.entries, e)
	l.totalShares = l.totalShares.Add(e.Shares)
}

// commit seals a completed operation: it records the command and pushes a
// snapshot of the resulting state.
func (l *Ledger) commit(label string, tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.history = append(l.history, newSnapshot(label, l.entries, l.totalShares))
}
