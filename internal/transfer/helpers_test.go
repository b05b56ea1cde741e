package transfer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pysyun/etherscan-transfers/internal/pkg/types"
)

const (
	addrA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa1"
	addrB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb2"
	addrC = "0xccccccccccccccccccccccccccccccccccccccc3"

	sender  = "0x5e4de5000000000000000000000000000000a001"
	relayer = "0x7e1a4e000000000000000000000000000000b002"
)

// addressWord left-pads a 0x-prefixed address to one ABI word.
func addressWord(addr string) string {
	return strings.Repeat("0", 24) + strings.TrimPrefix(addr, "0x")
}

// amountWord encodes n as one big-endian ABI word.
func amountWord(n int64) string {
	return fmt.Sprintf("%064x", n)
}

func transferInput(to string, amount int64) types.HexData {
	return types.HexData("0x" + TransferSelector + addressWord(to) + amountWord(amount))
}

func transferFromInput(from, to string, amount int64) types.HexData {
	return types.HexData("0x" + TransferFromSelector + addressWord(from) + addressWord(to) + amountWord(amount))
}

func event(from, to string, amount int64) TransferEvent {
	return TransferEvent{From: from, To: to, Amount: big.NewInt(amount)}
}
