package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserType distinguishes account holders.
type UserType string

const (
	UserTypeNatural   UserType = "natural"
	UserTypeJuridical UserType = "juridical"
)

// UserID is an opaque account identifier. Input files carry it either as a
// JSON number or as a string.
type UserID string

// UnmarshalJSON accepts numeric and string identifiers.
func (u *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id must be a number or a string: %w", err)
	}
	*u = UserID(n.String())
	return nil
}
