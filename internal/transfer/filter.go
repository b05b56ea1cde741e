package transfer

// Filter returns the records whose input starts with a supported transfer
// selector, in their original relative order. The optional "0x" prefix is
// ignored but the selector digits are matched case-sensitively. Records with
// an empty input are dropped.
//
// The input slice is not modified.
func Filter(records []TransactionRecord) []TransactionRecord {
	filtered := make([]TransactionRecord, 0, len(records))
	for _, record := range records {
		if isTransferCall(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func isTransferCall(record TransactionRecord) bool {
	if record.Input.IsEmpty() {
		return false
	}

	for selector := range methods {
		if record.Input.HasDigitsPrefix(selector) {
			return true
		}
	}

	return false
}
