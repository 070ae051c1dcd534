package captable

// ValuationCap is the tagged variant {Capped(value) | Uncapped}. The zero
// value is Uncapped, so a SAFE with no cap needs no explicit setup.
type ValuationCap struct {
	value  Money
	capped bool
}

// CapAt returns a cap at the given valuation.
func CapAt(value Money) ValuationCap {
	return ValuationCap{value: value, capped: true}
}

// Uncapped returns the absent cap.
func Uncapped() ValuationCap {
	return ValuationCap{}
}

func (c ValuationCap) IsCapped() bool { return c.capped }

// Value returns the cap valuation, and whether the cap is present.
func (c ValuationCap) Value() (Money, bool) {
	return c.value, c.capped
}

func (c ValuationCap) String() string {
	if !c.capped {
		return "uncapped"
	}
	return c.value.String()
}
