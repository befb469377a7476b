package support

import "vbuddy/internal/application/support/usecases"

type SubmitTicketRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	Mobile string `json:"mobile" binding:"required,notblank"`
	Email  string `json:"email" binding:"required,notblank"`
	Reason string `json:"reason"`
}

func (r *SubmitTicketRequest) ToCommand() usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		Name:   r.Name,
		Mobile: r.Mobile,
		Email:  r.Email,
		Reason: r.Reason,
	}
}

type LogChatMessageRequest struct {
	Role    string `json:"role" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

func (r *LogChatMessageRequest) ToCommand() usecases.LogChatMessageCommand {
	return usecases.LogChatMessageCommand{
		Role:    r.Role,
		Message: r.Message,
	}
}

// SubmitTicketResponse is the wire shape consumed by the chat widget. A 500
// may still carry a ticket ID: the ticket is recorded before notifications
// are attempted, so a failed support alert does not undo it.
type SubmitTicketResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID string `json:"ticketID,omitempty"`
}

type LogChatMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
