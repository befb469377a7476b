// Package email dispatches the two notification mails raised by a finalized
// support ticket: the support-team alert and the requester confirmation.
package email

import (
	"context"

	"vbuddy/internal/domain/ticket"
)

// Dispatcher sends the per-ticket notifications. Each call is one attempt
// with no retries; a failure is reported to the caller, never fatal to the
// other recipient.
type Dispatcher interface {
	NotifySupportTeam(ctx context.Context, t ticket.Ticket) error
	NotifyRequester(ctx context.Context, t ticket.Ticket) error
}
