package captable

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Shares is a whole number of shares. Share counts are always integers:
// every fractional quotient in the package goes through roundShares.
type Shares int64

func (s Shares) Add(n Shares) Shares       { return s + n }
func (s Shares) IsZero() bool              { return s == 0 }
func (s Shares) IsPositive() bool          { return s > 0 }
func (s Shares) Decimal() decimal.Decimal  { return decimal.NewFromInt(int64(s)) }
func (s Shares) String() string            { return strconv.FormatInt(int64(s), 10) }

// PercentOf returns the percentage this count represents of the given total,
// or 0 when the total is zero.
func (s Shares) PercentOf(total Shares) Percent {
	if total.IsZero() {
		return 0
	}
	ratio := s.Decimal().Mul(decimal.NewFromInt(100)).Div(total.Decimal())
	return Percent(ratio.InexactFloat64())
}

// roundShares rounds the mathematically exact quotient to the nearest whole
// share. Ties round half away from zero, the package-wide policy; cumulative
// rounding error is never reconciled against nominal round totals.
func roundShares(d decimal.Decimal) Shares {
	return Shares(d.Round(0).IntPart())
}
