package captable

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value: a SAFE investment, a valuation, or a
// price per share. Prices are kept as exact decimals; only share counts
// round.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrappers around decimal.Decimal

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// SameCurrency reports whether the two values may take part in the same
// computation. The "" currency is totally weak: it is compatible with
// anything.
func (m Money) SameCurrency(n Money) bool {
	return m.cur == "" || n.cur == "" || m.cur == n.cur
}

// DivShares returns the price per share implied by spreading this value
// over n shares.
func (m Money) DivShares(n Shares) Money {
	return Money{value: m.value.Div(n.Decimal()), cur: m.cur}
}

// DivPrice returns the whole number of shares this value buys at the given
// price per share, rounding the exact quotient half away from zero.
func (m Money) DivPrice(p Money) Shares {
	return roundShares(m.value.Div(p.value))
}

// Discounted returns the money reduced by the given percentage.
// A zero percent leaves the value unchanged.
func (m Money) Discounted(p Percent) Money {
	factor := decimal.NewFromInt(1).Sub(p.decimal().Div(decimal.NewFromInt(100)))
	return Money{value: m.value.Mul(factor), cur: m.cur}
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
