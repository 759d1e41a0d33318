package models

import (
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
)

// Certainty is ranked confidence tier of a product matching.
// Tiers are ordered from the lowest to the highest confidence and the order is part of the contract:
// NotMatch < AutoLowConfidence < AutoLowConfidenceSkipped < AutoHighConfidence < ManualInput.
type Certainty int

const (
	CertaintyNotMatch Certainty = iota
	CertaintyAutoLowConfidence
	CertaintyAutoLowConfidenceSkipped
	CertaintyAutoHighConfidence
	CertaintyManualInput
)

var certaintyNames = [...]string{
	CertaintyNotMatch:                 "not_match",
	CertaintyAutoLowConfidence:        "auto_low_confidence",
	CertaintyAutoLowConfidenceSkipped: "auto_low_confidence_skipped",
	CertaintyAutoHighConfidence:       "auto_high_confidence",
	CertaintyManualInput:              "manual_input",
}

// ParseCertainty returns Certainty for its database name.
func ParseCertainty(name string) (Certainty, error) {
	for ix, n := range certaintyNames {
		if n == name {
			return Certainty(ix), nil
		}
	}
	return CertaintyNotMatch, fmt.Errorf("%w: unknown certainty %q", platform.ErrValidation, name)
}

// String returns database name of the certainty.
func (c Certainty) String() string {
	if !c.Valid() {
		return fmt.Sprintf("certainty(%d)", int(c))
	}
	return certaintyNames[c]
}

// Valid reports whether c is one of the defined tiers.
func (c Certainty) Valid() bool {
	return c >= CertaintyNotMatch && c <= CertaintyManualInput
}

// Rank returns position of the tier, 0 is the lowest confidence.
func (c Certainty) Rank() int {
	return int(c)
}

// Less reports whether c is a lower confidence tier than other.
func (c Certainty) Less(other Certainty) bool {
	return c.Rank() < other.Rank()
}

// IsMatched reports whether pairing is considered a match.
func (c Certainty) IsMatched() bool {
	return c != CertaintyNotMatch && c != CertaintyAutoLowConfidence
}

// MarshalText encodes certainty as its database name.
func (c Certainty) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("can't marshal invalid certainty %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes certainty from its database name.
func (c *Certainty) UnmarshalText(text []byte) error {
	parsed, err := ParseCertainty(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MatchedCertainties returns all tiers considered a match, lowest first.
func MatchedCertainties() []Certainty {
	result := make([]Certainty, 0, len(certaintyNames))
	for ix := range certaintyNames {
		if c := Certainty(ix); c.IsMatched() {
			result = append(result, c)
		}
	}
	return result
}
