package transfer

import "errors"

var (
	// ErrPayloadTooShort is returned when the input cannot hold a 4-byte selector.
	ErrPayloadTooShort = errors.New("payload shorter than a method selector")

	// ErrUnknownSelector is returned for calls to methods outside the transfer table.
	ErrUnknownSelector = errors.New("unknown method selector")

	// ErrMalformedPayload is returned when the parameter block is not valid hex
	// or a decoded word does not have the expected ABI type.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrParameterLength is returned when the parameter block is not exactly
	// one 32-byte word per declared parameter.
	ErrParameterLength = errors.New("unexpected parameter block length")

	// ErrMissingSender is returned for a transfer call whose record carries no sender.
	ErrMissingSender = errors.New("transaction record has no sender")

	// ErrInvalidTimestamp is returned when a record timestamp is not a base-10 integer.
	ErrInvalidTimestamp = errors.New("invalid transaction timestamp")
)
