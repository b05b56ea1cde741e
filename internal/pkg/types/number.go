package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Number holds a decimal integer exactly as it was received.
//
// Block explorers encode integers either as JSON strings ("1700000000") or as
// JSON numbers (1700000000). Number accepts both forms on unmarshal and defers
// parsing to Int64, so a single malformed value does not fail the decoding of
// the whole document.
type Number string

// UnmarshalJSON stores the raw digits of a JSON string or JSON number.
// A JSON null leaves the value empty.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid number string: %w", err)
		}

		*n = Number(s)
		return nil
	}

	*n = Number(data)
	return nil
}

// MarshalJSON encodes the Number as a JSON string.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// Int64 parses the value as a base-10 signed 64-bit integer.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}
