package timeline

import "strings"

// Sort orders accepted by a TransactionSource.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Defaults of the explorer request: the whole chain, newest first, one page
// of 100 records.
const (
	DefaultStartBlock uint64 = 0
	DefaultEndBlock   uint64 = 99999999
	DefaultPage              = 1
	DefaultOffset            = 100
	DefaultSort              = SortDesc
)

// Query selects the transactions of one address.
type Query struct {
	Address    string `json:"address" validate:"required,eth_addr"`
	StartBlock uint64 `json:"startblock"`
	EndBlock   uint64 `json:"endblock" validate:"gtefield=StartBlock"`
	Page       int    `json:"page" validate:"gte=1"`
	Offset     int    `json:"offset" validate:"gte=1,lte=10000"`
	Sort       string `json:"sort" validate:"oneof=asc desc"`

	// Pages bounds how many pages one Build requests. Zero keeps the
	// service's limit. It is never sent to the source.
	Pages int `json:"pages,omitempty" validate:"gte=0"`
}

// DefaultQuery returns the query used when nothing but an address is given.
func DefaultQuery(address string) Query {
	return Query{
		Address:    strings.TrimSpace(address),
		StartBlock: DefaultStartBlock,
		EndBlock:   DefaultEndBlock,
		Page:       DefaultPage,
		Offset:     DefaultOffset,
		Sort:       DefaultSort,
	}
}
