package captable

// CommandType is a typed string for identifying ledger commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdFound       CommandType = "found"
	CmdGrant       CommandType = "grant"
	CmdSignSafe    CommandType = "sign-safe"
	CmdPricedRound CommandType = "priced-round"
)

// Transaction is one recorded ledger command. The ledger appends one per
// mutating operation, in application order; replaying the log through the
// same operations reconstructs an identical ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "grant").
}

type baseCmd struct {
	Command CommandType `json:"command"` // Command specifies the type of transaction.
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType {
	return t.Command
}

// foundCmd records the company founding: the share base and the founder and
// pool percentages the initial entries were sized from.
type foundCmd struct {
	baseCmd
	Base     Shares
	Founders []Founder
	Pools    []Pool
}

// MarshalJSON implements the json.Marshaler interface for foundCmd.
func (c foundCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Append("base", c.Base)
	w.Append("founders", c.Founders)
	w.Optional("pools", c.Pools)
	return w.MarshalJSON()
}

// grantCmd records one equity grant.
type grantCmd struct {
	baseCmd
	Name    string
	Percent Percent
	Class   ShareClass
}

// MarshalJSON implements the json.Marshaler interface for grantCmd.
func (c grantCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Append("name", c.Name)
	w.Append("percent", c.Percent)
	w.Append("class", c.Class)
	return w.MarshalJSON()
}

// signSafeCmd records a SAFE signing. The cap and discount fields are
// omitted when absent, matching the terms' zero values.
type signSafeCmd struct {
	baseCmd
	Terms SafeTerms
}

// MarshalJSON implements the json.Marshaler interface for signSafeCmd.
func (c signSafeCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Append("name", c.Terms.Name)
	w.EmbedFrom(c.Terms.Amount)
	if cap, ok := c.Terms.Cap.Value(); ok {
		w.Append("cap", cap.value)
	}
	w.Optional("discount", c.Terms.Discount)
	w.Append("kind", c.Terms.Kind.String())
	return w.MarshalJSON()
}

// pricedRoundCmd records a priced financing round. Both valuations share
// the round's currency.
type pricedRoundCmd struct {
	baseCmd
	Name     string
	PreMoney Money
	NewMoney Money
}

// MarshalJSON implements the json.Marshaler interface for pricedRoundCmd.
func (c pricedRoundCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Append("name", c.Name)
	w.Append("preMoney", c.PreMoney.value)
	w.Append("newMoney", c.NewMoney.value)
	w.Optional("currency", c.PreMoney.cur)
	return w.MarshalJSON()
}
