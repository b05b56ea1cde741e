package transfer

import (
	"encoding/hex"
	"fmt"
)

// Decode extracts the TransferEvent carried by a transfer or transferFrom call.
//
// The first 8 hex digits of the input (after an optional "0x") select the
// method. The rest must be exactly one 32-byte ABI word per parameter. For
// transfer the sender is the record's From; for transferFrom it is the owner
// passed as the first argument.
//
// Decode never panics on malformed input. Failures wrap one of
// ErrPayloadTooShort, ErrUnknownSelector, ErrMalformedPayload,
// ErrParameterLength or ErrMissingSender.
func Decode(record TransactionRecord) (TransferEvent, error) {
	event, _, err := decode(record)
	return event, err
}

// decode is Decode that also reports which method the input called.
func decode(record TransactionRecord) (TransferEvent, MethodSelector, error) {
	digits := record.Input.Unprefixed()
	if len(digits) < selectorLength {
		return TransferEvent{}, 0, fmt.Errorf("%w: %d hex digits", ErrPayloadTooShort, len(digits))
	}

	selector, block := digits[:selectorLength], digits[selectorLength:]
	m, ok := methods[selector]
	if !ok {
		return TransferEvent{}, 0, fmt.Errorf("%w: %s", ErrUnknownSelector, selector)
	}

	data, err := hex.DecodeString(block)
	if err != nil {
		return TransferEvent{}, 0, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, m.kind, err)
	}

	if want := wordSize * len(m.params); len(data) != want {
		return TransferEvent{}, 0, fmt.Errorf("%w: %s: got %d bytes, want %d", ErrParameterLength, m.kind, len(data), want)
	}

	values, err := m.params.Unpack(data)
	if err != nil {
		return TransferEvent{}, 0, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, m.kind, err)
	}

	event, err := m.build(record, values)
	if err != nil {
		return TransferEvent{}, 0, fmt.Errorf("%s: %w", m.kind, err)
	}

	return event, m.kind, nil
}
