package ticket

import (
	"strconv"
	"strings"
)

// NextID computes the next ticket ID for the given day bucket from a ledger
// snapshot. IDs take the form VB<DDMMYYYY><sequence>, where the sequence
// starts at 1 each day and carries no leading zeros.
//
// The prior sequence is taken from the last row in ledger order whose ID
// carries today's prefix, not from the maximum parsed sequence. Append order
// and numeric order coincide only while all writers go through one
// serialization point; callers own that serialization (see the submit use
// case). A malformed or non-positive suffix on the last row resets the prior
// sequence to 0.
func NextID(snapshot []Ticket, bucket string) string {
	prefix := IDPrefix + bucket

	last := ""
	for _, t := range snapshot {
		if strings.HasPrefix(t.ID, prefix) {
			last = t.ID
		}
	}

	prior := 0
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil && n > 0 {
			prior = n
		}
	}

	return prefix + strconv.Itoa(prior+1)
}
