package captable

import "fmt"

// SafeKind discriminates the two SAFE valuation semantics.
type SafeKind int

const (
	// PostMoney SAFEs target a fixed ownership of the post-conversion
	// company; their capped price depends on the shares issued to all
	// post-money SAFEs converting in the same round.
	PostMoney SafeKind = iota
	// PreMoney SAFEs price their cap against the share total as it stands
	// before the round converts anything.
	PreMoney
)

func (k SafeKind) String() string {
	switch k {
	case PostMoney:
		return "post-money"
	case PreMoney:
		return "pre-money"
	default:
		return "unknown"
	}
}

// ParseSafeKind parses a string into a SafeKind.
func ParseSafeKind(s string) (SafeKind, error) {
	switch s {
	case "post-money":
		return PostMoney, nil
	case "pre-money":
		return PreMoney, nil
	default:
		return 0, fmt.Errorf("unknown safe kind: %q", s)
	}
}

// SafeTerms are the terms of a SAFE as signed. The zero values of Cap, Kind
// and Discount mean uncapped, post-money, and no discount respectively.
// A discount of exactly 0 is identical to no discount: both convert at the
// full round price.
type SafeTerms struct {
	Name     string
	Amount   Money
	Cap      ValuationCap
	Discount Percent
	Kind     SafeKind
}

// SAFE is one outstanding (or converted) convertible instrument. It is
// created when signed and mutated exactly once, when a priced round folds
// it into preferred shares; it is never deleted.
type SAFE struct {
	Name      string
	Amount    Money
	Cap       ValuationCap
	Discount  Percent
	Kind      SafeKind
	Converted bool
}

func newSafe(t SafeTerms) *SAFE {
	return &SAFE{
		Name:     t.Name,
		Amount:   t.Amount,
		Cap:      t.Cap,
		Discount: t.Discount,
		Kind:     t.Kind,
	}
}

// conversionPrice returns the effective price per share for this SAFE given
// the round's price and the share count the cap valuation is spread over.
// The price is the lower of the (possibly discounted) round price and the
// cap-implied price.
func (s *SAFE) conversionPrice(roundPrice Money, capBase Shares) Money {
	price := roundPrice
	if s.Discount > 0 {
		price = roundPrice.Discounted(s.Discount)
	}
	if cap, ok := s.Cap.Value(); ok {
		capPrice := cap.DivShares(capBase)
		if capPrice.LessThan(price) {
			price = capPrice
		}
	}
	return price
}

func (s *SAFE) describe() string {
	d := fmt.Sprintf("Signed %s SAFE %q for %s", s.Kind, s.Name, s.Amount)
	if cap, ok := s.Cap.Value(); ok {
		d += fmt.Sprintf(", %s cap", cap)
	} else {
		d += ", uncapped"
	}
	if s.Discount > 0 {
		d += fmt.Sprintf(", %s discount", s.Discount)
	}
	return d
}
