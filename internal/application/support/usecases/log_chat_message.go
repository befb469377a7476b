package usecases

import (
	"context"
	"strings"

	"vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/logger"
)

type LogChatMessageCommand struct {
	Role    string
	Message string
}

// LogChatMessageUseCase appends one chat message to the transcript.
type LogChatMessageUseCase struct {
	transcript ChatTranscript
	logger     logger.Interface
}

func NewLogChatMessageUseCase(transcript ChatTranscript, log logger.Interface) *LogChatMessageUseCase {
	return &LogChatMessageUseCase{
		transcript: transcript,
		logger:     log,
	}
}

func (uc *LogChatMessageUseCase) Execute(ctx context.Context, cmd LogChatMessageCommand) error {
	if strings.TrimSpace(cmd.Role) == "" {
		return errors.NewValidationError("role is required")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return errors.NewValidationError("message is required")
	}

	if err := uc.transcript.Append(cmd.Role, cmd.Message); err != nil {
		uc.logger.Errorw("failed to append chat message", "role", cmd.Role, "error", err)
		return err
	}
	return nil
}
