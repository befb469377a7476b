// Package chatlog appends chat transcript entries to a flat structured-text
// file. It is a pure I/O collaborator: failures are reported to the caller
// and never touch the ticket flow.
package chatlog

import (
	"encoding/json"
	"os"
	"sync"

	"vbuddy/internal/shared/biztime"
	apperrors "vbuddy/internal/shared/errors"
)

type Entry struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// FileLog appends one JSON line per chat message to an append-only file.
type FileLog struct {
	path string
	mu   sync.Mutex
}

func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Append records one {role, message} pair with the business timestamp.
func (l *FileLog) Append(role, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line, err := json.Marshal(Entry{
		Role:      role,
		Message:   message,
		Timestamp: biztime.Timestamp(),
	})
	if err != nil {
		return apperrors.NewInternalError("failed to encode chat entry", err.Error())
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return apperrors.NewInternalError("failed to open chat log", err.Error())
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return apperrors.NewInternalError("failed to append chat entry", err.Error())
	}
	return nil
}
