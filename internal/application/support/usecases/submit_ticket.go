package usecases

import (
	"context"
	"strings"
	"sync"

	"vbuddy/internal/domain/ticket"
	"vbuddy/internal/shared/biztime"
	"vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/goroutine"
	"vbuddy/internal/shared/logger"
)

type SubmitTicketCommand struct {
	Name   string
	Mobile string
	Email  string
	Reason string
}

type SubmitTicketResult struct {
	TicketID          string
	SupportNotified   bool
	RequesterNotified bool
}

// SubmitTicketUseCase validates a support request, allocates the next
// per-day ticket ID, persists the ticket, then dispatches both
// notifications and reports their outcomes.
//
// The ledger has no locking authority of its own and the ID allocation is a
// read-then-write over the whole file, so allocate+append runs under the
// use case mutex. That mutex is the process-wide serialization point: two
// overlapping submissions always observe each other's rows and can neither
// collide on an ID nor clobber each other's append.
type SubmitTicketUseCase struct {
	ledger     LedgerStore
	dispatcher NotificationDispatcher
	logger     logger.Interface

	mu sync.Mutex
}

func NewSubmitTicketUseCase(
	ledger LedgerStore,
	dispatcher NotificationDispatcher,
	log logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ledger:     ledger,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid submit ticket command", "error", err)
		return nil, err
	}

	tkt, err := uc.allocateAndPersist(cmd)
	if err != nil {
		uc.logger.Errorw("failed to persist ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket recorded", "ticket_id", tkt.ID)

	// Persistence is complete; the two sends are independent and run
	// concurrently. Their failures degrade the result, never the ticket.
	var wg sync.WaitGroup
	var supportErr, requesterErr error

	wg.Add(2)
	goroutine.SafeGo(uc.logger, "notify-support-team", func() {
		defer wg.Done()
		supportErr = uc.dispatcher.NotifySupportTeam(ctx, tkt)
	})
	goroutine.SafeGo(uc.logger, "notify-requester", func() {
		defer wg.Done()
		requesterErr = uc.dispatcher.NotifyRequester(ctx, tkt)
	})
	wg.Wait()

	if supportErr != nil {
		uc.logger.Errorw("support team notification failed", "ticket_id", tkt.ID, "error", supportErr)
	}
	if requesterErr != nil {
		uc.logger.Warnw("requester notification failed", "ticket_id", tkt.ID, "error", requesterErr)
	}

	return &SubmitTicketResult{
		TicketID:          tkt.ID,
		SupportNotified:   supportErr == nil,
		RequesterNotified: requesterErr == nil,
	}, nil
}

// allocateAndPersist is the single critical section: snapshot the ledger,
// compute the next ID for today's bucket, and append the new row.
func (uc *SubmitTicketUseCase) allocateAndPersist(cmd SubmitTicketCommand) (ticket.Ticket, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := biztime.Now()

	snapshot, err := uc.ledger.ReadAll()
	if err != nil {
		return ticket.Ticket{}, err
	}

	tkt := ticket.Ticket{
		ID:        ticket.NextID(snapshot, biztime.DayBucketAt(now)),
		Name:      cmd.Name,
		Mobile:    cmd.Mobile,
		Email:     cmd.Email,
		Reason:    cmd.Reason,
		Timestamp: biztime.TimestampAt(now),
	}

	if err := uc.ledger.Append(tkt); err != nil {
		return ticket.Ticket{}, err
	}
	return tkt, nil
}

func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Mobile) == "" {
		return errors.NewValidationError("mobile is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	return nil
}
