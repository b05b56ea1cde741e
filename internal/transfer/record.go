// Package transfer decodes ERC-20 token-transfer calls out of raw transaction
// records and merges them into a chronologically ordered timeline.
//
// The package is purely computational. It performs no I/O, holds no shared
// state and never mutates its inputs, so every function is safe for concurrent
// use on independent batches.
package transfer

import (
	"math/big"

	"github.com/pysyun/etherscan-transfers/internal/pkg/types"
)

// TransactionRecord is one transaction as reported by a block explorer.
//
// Only Input, From and Timestamp are read while building a timeline. The
// remaining fields are carried through untouched for diagnostics.
type TransactionRecord struct {
	Input     types.HexData // selector followed by the ABI parameter block
	From      string        // account that signed the transaction
	Timestamp types.Number  // seconds since the Unix epoch, parsed during assembly

	Hash            string
	BlockNumber     string
	To              string
	Value           string
	IsError         string
	ContractAddress string
	FunctionName    string
	MethodID        string
}

// TransferEvent is a decoded token movement.
//
// From and To are never empty for an event returned by Decode. Decoded
// addresses are lowercase, 0x-prefixed and 40 hex digits long.
type TransferEvent struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Amount *big.Int `json:"amount" yaml:"amount"`
}

// TimelineEntry pairs a TransferEvent with the time of its transaction.
//
// TxHash and Method identify the call the event was decoded from. They are
// not part of the rendered entry.
type TimelineEntry struct {
	Time  int64         `json:"time" yaml:"time"`
	Value TransferEvent `json:"value" yaml:"value"`

	TxHash string         `json:"-" yaml:"-"`
	Method MethodSelector `json:"-" yaml:"-"`
}

// Timeline is a sequence of entries in non-decreasing Time order. Entries
// sharing a Time keep the relative order of their source records.
type Timeline []TimelineEntry
