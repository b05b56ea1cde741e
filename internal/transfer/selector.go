package transfer

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Hex-encoded 4-byte selectors of the supported ERC-20 methods.
const (
	TransferSelector     = "a9059cbb" // transfer(address,uint256)
	TransferFromSelector = "23b872dd" // transferFrom(address,address,uint256)
)

// selectorLength is the number of hex digits in a method selector.
const selectorLength = 8

// wordSize is the size in bytes of one ABI parameter word.
const wordSize = 32

// MethodSelector identifies one of the supported token-transfer methods.
type MethodSelector int

const (
	Transfer MethodSelector = iota
	TransferFrom
)

// String returns the Solidity name of the method.
func (s MethodSelector) String() string {
	switch s {
	case Transfer:
		return "transfer"
	case TransferFrom:
		return "transferFrom"
	default:
		return fmt.Sprintf("MethodSelector(%d)", int(s))
	}
}

// Selector returns the hex-encoded 4-byte selector of the method, without prefix.
func (s MethodSelector) Selector() string {
	switch s {
	case Transfer:
		return TransferSelector
	case TransferFrom:
		return TransferFromSelector
	default:
		return ""
	}
}

// method binds a selector to its parameter schema and to the mapping from
// decoded values onto a TransferEvent.
type method struct {
	kind   MethodSelector
	params abi.Arguments
	build  func(record TransactionRecord, values []any) (TransferEvent, error)
}

var (
	addressType = mustNewType("address")
	uint256Type = mustNewType("uint256")
)

// methods is the closed selector table. Adding a supported call means adding
// an entry here.
var methods = map[string]method{
	TransferSelector: {
		kind: Transfer,
		params: abi.Arguments{
			{Name: "to", Type: addressType},
			{Name: "amount", Type: uint256Type},
		},
		build: func(record TransactionRecord, values []any) (TransferEvent, error) {
			if record.From == "" {
				return TransferEvent{}, ErrMissingSender
			}

			to, err := addressAt(values, 0)
			if err != nil {
				return TransferEvent{}, err
			}

			amount, err := amountAt(values, 1)
			if err != nil {
				return TransferEvent{}, err
			}

			return TransferEvent{From: record.From, To: to, Amount: amount}, nil
		},
	},
	TransferFromSelector: {
		kind: TransferFrom,
		params: abi.Arguments{
			{Name: "from", Type: addressType},
			{Name: "to", Type: addressType},
			{Name: "amount", Type: uint256Type},
		},
		// The token owner is the first argument. The record sender is only the
		// approved spender relaying the call.
		build: func(_ TransactionRecord, values []any) (TransferEvent, error) {
			from, err := addressAt(values, 0)
			if err != nil {
				return TransferEvent{}, err
			}

			to, err := addressAt(values, 1)
			if err != nil {
				return TransferEvent{}, err
			}

			amount, err := amountAt(values, 2)
			if err != nil {
				return TransferEvent{}, err
			}

			return TransferEvent{From: from, To: to, Amount: amount}, nil
		},
	},
}

func mustNewType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(fmt.Sprintf("transfer: abi type %q: %v", name, err))
	}

	return t
}

func addressAt(values []any, i int) (string, error) {
	addr, ok := values[i].(common.Address)
	if !ok {
		return "", fmt.Errorf("%w: parameter %d is %T, want address", ErrMalformedPayload, i, values[i])
	}

	return hexutil.Encode(addr.Bytes()), nil
}

func amountAt(values []any, i int) (*big.Int, error) {
	amount, ok := values[i].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: parameter %d is %T, want uint256", ErrMalformedPayload, i, values[i])
	}

	return new(big.Int).Set(amount), nil
}
