// Package ledger persists support tickets to the tabular system of record.
package ledger

import "vbuddy/internal/domain/ticket"

// Store is the durable ticket ledger. ReadAll returns every historical row
// in stored order; Append adds one row and rewrites the whole backing file.
type Store interface {
	ReadAll() ([]ticket.Ticket, error)
	Append(t ticket.Ticket) error
}
