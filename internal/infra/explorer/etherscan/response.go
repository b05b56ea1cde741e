package etherscan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pysyun/etherscan-transfers/internal/pkg/types"
	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

var (
	// ErrAPIStatus is returned when the API answers with a non-success status.
	ErrAPIStatus = errors.New("etherscan returned an error status")

	// ErrRateLimited is returned when the API rejects a call for exceeding the
	// key's request rate. It is the only error retried by default.
	ErrRateLimited = errors.New("etherscan rate limit reached")

	// ErrMalformedResponse is returned when the body is not a valid response.
	ErrMalformedResponse = errors.New("malformed etherscan response")
)

const (
	statusOK            = "1"
	noTransactionsFound = "No transactions found"
)

// envelope is the wrapper around every Etherscan account API response. On
// failure Result holds a string describing the problem instead of a list.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Err maps a non-success envelope to ErrRateLimited or ErrAPIStatus. An
// empty history is reported by the API as a failure and is not an error here.
func (e envelope) Err() error {
	if e.Status == statusOK || e.isEmptyHistory() {
		return nil
	}

	detail := e.resultText()
	if strings.Contains(strings.ToLower(detail), "rate limit") {
		return fmt.Errorf("%w: %s", ErrRateLimited, detail)
	}

	return fmt.Errorf("%w: status %q: %s: %s", ErrAPIStatus, e.Status, e.Message, detail)
}

func (e envelope) isEmptyHistory() bool {
	return strings.EqualFold(e.Message, noTransactionsFound)
}

func (e envelope) resultText() string {
	var s string
	if err := json.Unmarshal(e.Result, &s); err == nil {
		return s
	}

	return string(e.Result)
}

// records decodes the transactions carried by a successful envelope.
func (e envelope) records() ([]transfer.TransactionRecord, error) {
	if err := e.Err(); err != nil {
		return nil, err
	}

	// Err accepted a non-success status only for an empty history.
	if e.Status != statusOK {
		return []transfer.TransactionRecord{}, nil
	}

	return decodeList(e.Result)
}

// txResponse is one entry of the txlist result.
type txResponse struct {
	Hash            string        `json:"hash"`
	BlockNumber     string        `json:"blockNumber"`
	TimeStamp       types.Number  `json:"timeStamp"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	Value           string        `json:"value"`
	Input           types.HexData `json:"input"`
	IsError         string        `json:"isError"`
	ContractAddress string        `json:"contractAddress"`
	FunctionName    string        `json:"functionName"`
	MethodID        string        `json:"methodId"`
}

func (r txResponse) toRecord() transfer.TransactionRecord {
	return transfer.TransactionRecord{
		Input:           r.Input,
		From:            r.From,
		Timestamp:       r.TimeStamp,
		Hash:            r.Hash,
		BlockNumber:     r.BlockNumber,
		To:              r.To,
		Value:           r.Value,
		IsError:         r.IsError,
		ContractAddress: r.ContractAddress,
		FunctionName:    r.FunctionName,
		MethodID:        r.MethodID,
	}
}

func decodeList(data json.RawMessage) ([]transfer.TransactionRecord, error) {
	var txs []txResponse
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	records := make([]transfer.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, tx.toRecord())
	}

	return records, nil
}

// DecodeTransactions parses either a bare JSON array of txlist entries or a
// complete API response envelope, as saved from an earlier request.
func DecodeTransactions(data []byte) ([]transfer.TransactionRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return decodeList(data)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return env.records()
}
