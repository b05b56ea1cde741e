package types

import (
	"strings"
)

// HexData represents raw bytes encoded as a hexadecimal string, such as a
// transaction input payload. The "0x" (or "0X") prefix is optional.
type HexData string

// Unprefixed returns the hex digits without the optional "0x"/"0X" prefix.
// The case of the digits is preserved.
func (h HexData) Unprefixed() string {
	s := string(h)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}

	return s
}

// HasDigitsPrefix reports whether the unprefixed digits start with prefix.
// The comparison is case-sensitive.
func (h HexData) HasDigitsPrefix(prefix string) bool {
	return strings.HasPrefix(h.Unprefixed(), prefix)
}

// IsEmpty reports whether the value carries no hex digits at all.
func (h HexData) IsEmpty() bool {
	return h.Unprefixed() == ""
}
