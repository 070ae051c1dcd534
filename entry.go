package captable

import (
	"encoding/json"
	"fmt"
)

// ShareClass defines the class of a cap table entry.
type ShareClass int

const (
	// Common stock, held by founders and grantees.
	Common ShareClass = iota
	// Preferred stock, issued to investors in a priced round.
	Preferred
	// Option marks a reserved option pool.
	Option
)

func (c ShareClass) String() string {
	switch c {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	case Option:
		return "option"
	default:
		return "unknown"
	}
}

// ParseShareClass parses a string into a ShareClass.
func ParseShareClass(s string) (ShareClass, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	case "option":
		return Option, nil
	default:
		return 0, fmt.Errorf("unknown share class: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for ShareClass.
func (c ShareClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for ShareClass.
func (c *ShareClass) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseShareClass(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Entry is one line of ownership in the cap table. Entries are append-only:
// dilution is modeled by growing the total, never by editing or removing an
// existing line, even when the same stakeholder receives equity twice.
type Entry struct {
	Name   string
	Shares Shares
	Class  ShareClass
}
