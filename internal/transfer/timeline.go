package transfer

import (
	"cmp"
	"fmt"
	"slices"
)

// SkipReason tells why a record did not make it into the timeline.
type SkipReason string

const (
	// SkipDecode marks records whose input could not be decoded.
	SkipDecode SkipReason = "decode"

	// SkipTimestamp marks records whose timestamp could not be parsed.
	SkipTimestamp SkipReason = "timestamp"
)

// Skip describes one record left out of a timeline.
type Skip struct {
	Record TransactionRecord
	Reason SkipReason
	Err    error
}

// Result is the outcome of assembling a batch: the ordered timeline plus every
// record that was skipped along the way.
type Result struct {
	Timeline Timeline
	Skipped  []Skip
}

// Assemble decodes each record, attaches its timestamp and returns the events
// sorted by time. The sort is stable, so entries with equal timestamps keep
// the order of their records. A record that fails to decode or carries an
// invalid timestamp is reported in Result.Skipped and the batch continues.
//
// Assemble does not filter. Records for unsupported methods are skipped with
// SkipDecode; use Build to filter first.
func Assemble(records []TransactionRecord) Result {
	result := Result{Timeline: make(Timeline, 0, len(records))}

	for _, record := range records {
		event, kind, err := decode(record)
		if err != nil {
			result.Skipped = append(result.Skipped, Skip{Record: record, Reason: SkipDecode, Err: err})
			continue
		}

		ts, err := record.Timestamp.Int64()
		if err != nil {
			result.Skipped = append(result.Skipped, Skip{
				Record: record,
				Reason: SkipTimestamp,
				Err:    fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, string(record.Timestamp), err),
			})
			continue
		}

		result.Timeline = append(result.Timeline, TimelineEntry{
			Time:   ts,
			Value:  event,
			TxHash: record.Hash,
			Method: kind,
		})
	}

	slices.SortStableFunc(result.Timeline, func(a, b TimelineEntry) int {
		return cmp.Compare(a.Time, b.Time)
	})

	return result
}

// Build runs the full pipeline over a batch: Filter, then Assemble.
func Build(records []TransactionRecord) Result {
	return Assemble(Filter(records))
}
