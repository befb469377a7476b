package usecases

import (
	"context"

	"vbuddy/internal/domain/ticket"
)

// LedgerStore is the durable ticket ledger as consumed by the use cases.
type LedgerStore interface {
	ReadAll() ([]ticket.Ticket, error)
	Append(t ticket.Ticket) error
}

// NotificationDispatcher sends the two per-ticket notifications.
type NotificationDispatcher interface {
	NotifySupportTeam(ctx context.Context, t ticket.Ticket) error
	NotifyRequester(ctx context.Context, t ticket.Ticket) error
}

// ChatTranscript appends chat messages to the transcript collaborator.
type ChatTranscript interface {
	Append(role, message string) error
}

// SubmitTicketExecutor executes the submit ticket use case.
type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

// LogChatMessageExecutor executes the log chat message use case.
type LogChatMessageExecutor interface {
	Execute(ctx context.Context, cmd LogChatMessageCommand) error
}
