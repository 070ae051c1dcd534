package captable

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the ledger's command log as JSONL, one command per
// line in application order. The output is human-readable and stable, so a
// simulation can live in version control and be replayed later.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		b, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("could not encode %q command: %w", tx.What(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL command stream and replays each command
// through the public ledger operations, reconstructing the full state and
// snapshot history. The first command must be "found"; precondition
// violations surface exactly as they would from the live operations.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var ledger *Ledger
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		if identifier.Command == CmdFound {
			if ledger != nil {
				return nil, fmt.Errorf("duplicate %q command in line %q", CmdFound, string(lineBytes))
			}
			var temp struct {
				Base     Shares    `json:"base"`
				Founders []Founder `json:"founders"`
				Pools    []Pool    `json:"pools"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			if temp.Base.IsZero() {
				temp.Base = DefaultInitialShares
			}
			var err error
			if ledger, err = NewLedgerWithBase(temp.Founders, temp.Pools, temp.Base); err != nil {
				return nil, err
			}
			continue
		}
		if ledger == nil {
			return nil, fmt.Errorf("first command must be %q, got %q", CmdFound, identifier.Command)
		}

		switch identifier.Command {
		case CmdGrant:
			var temp struct {
				Name    string     `json:"name"`
				Percent Percent    `json:"percent"`
				Class   ShareClass `json:"class"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			if err := ledger.GiveEquity(temp.Percent, temp.Name, temp.Class); err != nil {
				return nil, err
			}
		case CmdSignSafe:
			var temp struct {
				Name     string           `json:"name"`
				Amount   decimal.Decimal  `json:"amount"`
				Currency string           `json:"currency"`
				Cap      *decimal.Decimal `json:"cap"`
				Discount Percent          `json:"discount"`
				Kind     string           `json:"kind"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			terms := SafeTerms{
				Name:     temp.Name,
				Amount:   M(temp.Amount, temp.Currency),
				Discount: temp.Discount,
			}
			if temp.Cap != nil {
				terms.Cap = CapAt(M(*temp.Cap, temp.Currency))
			}
			if temp.Kind != "" {
				kind, err := ParseSafeKind(temp.Kind)
				if err != nil {
					return nil, fmt.Errorf("could not decode line %q: %w", string(lineBytes), err)
				}
				terms.Kind = kind
			}
			if err := ledger.SignSafe(terms); err != nil {
				return nil, err
			}
		case CmdPricedRound:
			var temp struct {
				Name     string          `json:"name"`
				PreMoney decimal.Decimal `json:"preMoney"`
				NewMoney decimal.Decimal `json:"newMoney"`
				Currency string          `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			if err := ledger.PricedRound(M(temp.PreMoney, temp.Currency), M(temp.NewMoney, temp.Currency), temp.Name); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown command %q in line %q", identifier.Command, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	if ledger == nil {
		return nil, fmt.Errorf("empty ledger stream: missing %q command", CmdFound)
	}
	return ledger, nil
}
