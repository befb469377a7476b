// Package ticket holds the support ticket record and the ticket ID
// allocation policy.
package ticket

import "strings"

// IDPrefix is the constant prefix of every ticket ID, followed by the
// DDMMYYYY day bucket and the sequence number within that day.
const IDPrefix = "VB"

// ReasonPlaceholder is substituted for an empty reason when rendering a
// ticket for notifications. The stored value stays empty.
const ReasonPlaceholder = "Not Provided"

// Ticket is one support request record. Reason may be empty; every other
// field is mandatory.
type Ticket struct {
	ID        string
	Name      string
	Mobile    string
	Email     string
	Reason    string
	Timestamp string
}

// DisplayReason returns the stored reason, or the placeholder when the
// caller did not provide one.
func (t Ticket) DisplayReason() string {
	if strings.TrimSpace(t.Reason) == "" {
		return ReasonPlaceholder
	}
	return t.Reason
}
