package captable

import "fmt"

// DefaultRoundName names a priced round when the caller does not.
const DefaultRoundName = "Series A"

// PricedRound executes a priced financing: it implies a price per share
// from the pre-money valuation, converts every outstanding SAFE that prices
// to at least one whole share into preferred stock, and issues the round's
// own preferred shares for the new money.
//
// All conversion prices are computed against the share total as it stands
// when the round starts. Post-money SAFEs first go through a pre-pass that
// accumulates the shares the whole post-money set converts to, because each
// capped post-money price is spread over the pre-round total plus the other
// post-money conversions; the pre-pass commits nothing, it only fixes the
// denominator the conversion pass then reuses. Pre-money caps are spread
// over the pre-round total alone.
//
// A SAFE whose conversion rounds to zero shares stays outstanding; that is
// a valid outcome, not an error.
func (l *Ledger) PricedRound(preMoney, newMoney Money, name string) error {
	if name == "" {
		name = DefaultRoundName
	}
	if l.totalShares.IsZero() {
		return fmt.Errorf("priced round %q: %w", name, ErrDegenerateState)
	}
	if !preMoney.IsPositive() {
		return fmt.Errorf("priced round %q: pre-money valuation must be positive, got %s", name, preMoney)
	}
	if !newMoney.IsPositive() {
		return fmt.Errorf("priced round %q: new money must be positive, got %s", name, newMoney)
	}
	if !newMoney.SameCurrency(preMoney) {
		return fmt.Errorf("priced round %q: currency mismatch: %s pre-money, %s new money",
			name, preMoney.Currency(), newMoney.Currency())
	}
	for _, s := range l.unconverted() {
		if !s.Amount.SameCurrency(preMoney) {
			return fmt.Errorf("priced round %q: currency mismatch: safe %q is in %s, round is in %s",
				name, s.Name, s.Amount.Currency(), preMoney.Currency())
		}
	}

	preRound := l.totalShares
	pricePerShare := preMoney.DivShares(preRound)

	// Pre-pass: resolve the post-money cross-dependency. Each instrument
	// prices against the pre-round total plus the post-money shares
	// accumulated before it, in signing order.
	var postMoneyShares Shares
	for _, s := range l.unconverted() {
		if s.Kind != PostMoney {
			continue
		}
		price := s.conversionPrice(pricePerShare, preRound.Add(postMoneyShares))
		postMoneyShares = postMoneyShares.Add(s.Amount.DivPrice(price))
	}

	// Conversion pass: one iteration over all unconverted instruments,
	// post-money ones reusing the final accumulator as denominator offset.
	for _, s := range l.unconverted() {
		capBase := preRound
		if s.Kind == PostMoney {
			capBase = preRound.Add(postMoneyShares)
		}
		shares := s.Amount.DivPrice(s.conversionPrice(pricePerShare, capBase))
		if !shares.IsPositive() {
			continue
		}
		l.addEntry(Entry{Name: s.Name + " (SAFE)", Shares: shares, Class: Preferred})
		s.Converted = true
	}

	// The round's own lead shares, at the undiscounted round price.
	l.addEntry(Entry{Name: name, Shares: newMoney.DivPrice(pricePerShare), Class: Preferred})

	l.commit(fmt.Sprintf("%s: %s pre-money, %s raised", name, preMoney, newMoney), pricedRoundCmd{
		baseCmd:  baseCmd{Command: CmdPricedRound},
		Name:     name,
		PreMoney: preMoney,
		NewMoney: newMoney,
	})
	return nil
}

// unconverted returns the instruments still outstanding, in signing order.
func (l *Ledger) unconverted() []*SAFE {
	out := make([]*SAFE, 0, len(l.safes))
	for _, s := range l.safes {
		if !s.Converted {
			out = append(out, s)
		}
	}
	return out
}
