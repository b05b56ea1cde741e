package timeline

import (
	"context"

	"github.com/pysyun/etherscan-transfers/internal/transfer"
)

// TransactionSource returns the transaction history of an address.
type TransactionSource interface {
	// Transactions returns the records of the single page selected by q, in
	// the order requested by q.Sort. An address without history yields an
	// empty slice and a nil error.
	//
	// Implementations enforce their own request spacing and retry policy.
	Transactions(ctx context.Context, q Query) ([]transfer.TransactionRecord, error)
}

// Publisher delivers a built timeline downstream.
type Publisher interface {
	PublishTimeline(ctx context.Context, address string, tl transfer.Timeline) error
}
