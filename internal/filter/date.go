package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
)

var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	time.RFC3339,
}

// Date is filter date accepting YYYY-MM-DD, DD/MM/YYYY and RFC 3339 forms.
// Zero Date means no date restriction.
type Date struct {
	time.Time
}

// ParseDate parses value in one of accepted layouts.
func ParseDate(value string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{Time: t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: can't parse date %q", platform.ErrValidation, value)
}

// UnmarshalJSON decodes date from JSON string, null and empty string decode to zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: date must be a string", platform.ErrValidation)
	}
	if value == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes date in YYYY-MM-DD form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.DateOnly))
}
