package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an identifier assigned by the remote store. The store hands out
// numeric ids, the in-memory store uses UUIDs; both decode into ID.
type ID string

// String returns the identifier as a plain string
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts either a JSON string or a JSON number
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(n.String())
		return nil
	}
}

// MarshalJSON writes numeric identifiers back as numbers so the remote store
// keeps its native id type
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) isNumeric() bool {
	if id == "" || len(id) > 15 {
		return false
	}
	if len(id) > 1 && id[0] == '0' {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
