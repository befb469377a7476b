package ledger

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"vbuddy/internal/domain/ticket"
	apperrors "vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/logger"
)

const sheetName = "Tickets"

var headerRow = []string{"Ticket ID", "Name", "Mobile", "Email", "Reason", "Timestamp"}

// XLSXStore keeps the ticket ledger in a single xlsx workbook with one
// Tickets sheet. The backing format has no streaming append, so every
// Append is a read-modify-rewrite of the whole file. Writes go to a temp
// file in the same directory and are renamed into place, so a reader
// observes either the old or the new complete contents, never a partial
// row. The internal mutex serializes file access within the process; it
// does not protect against concurrent writers from other processes.
type XLSXStore struct {
	path string
	mu   sync.Mutex
	log  logger.Interface
}

var _ Store = (*XLSXStore)(nil)

func NewXLSXStore(path string, log logger.Interface) *XLSXStore {
	return &XLSXStore{
		path: path,
		log:  log.Named("ledger"),
	}
}

// ReadAll returns all ticket rows in stored order. A missing backing file
// yields an empty ledger; an existing file without a readable Tickets sheet
// is reported as corrupt.
func (s *XLSXStore) ReadAll() ([]ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Append adds one ticket as the last row and persists the full table.
func (s *XLSXStore) Append(t ticket.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readAll()
	if err != nil {
		return err
	}

	rows := append(existing, t)
	if err := s.writeAll(rows); err != nil {
		return err
	}

	s.log.Debugw("ticket appended to ledger", "ticket_id", t.ID, "rows", len(rows))
	return nil
}

func (s *XLSXStore) readAll() ([]ticket.Ticket, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, apperrors.NewLedgerCorruptError("ticket ledger is unreadable", err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.NewLedgerCorruptError("ticket ledger has no Tickets table", err.Error())
	}

	tickets := make([]ticket.Ticket, 0, len(rows))
	for i, r := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		tickets = append(tickets, ticket.Ticket{
			ID:        cell(r, 0),
			Name:      cell(r, 1),
			Mobile:    cell(r, 2),
			Email:     cell(r, 3),
			Reason:    cell(r, 4),
			Timestamp: cell(r, 5),
		})
	}
	return tickets, nil
}

func (s *XLSXStore) writeAll(rows []ticket.Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return apperrors.NewLedgerWriteError("failed to build ledger workbook", err.Error())
	}

	header := make([]interface{}, len(headerRow))
	for i, h := range headerRow {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return apperrors.NewLedgerWriteError("failed to write ledger header", err.Error())
	}

	for i, t := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewLedgerWriteError("failed to address ledger row", err.Error())
		}
		values := []interface{}{t.ID, t.Name, t.Mobile, t.Email, t.Reason, t.Timestamp}
		if err := f.SetSheetRow(sheetName, cellRef, &values); err != nil {
			return apperrors.NewLedgerWriteError("failed to write ledger row", err.Error())
		}
	}

	return s.persist(f)
}

func (s *XLSXStore) persist(f *excelize.File) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperrors.NewLedgerWriteError("failed to create ledger temp file", err.Error())
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewLedgerWriteError("failed to write ledger file", err.Error())
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewLedgerWriteError("failed to sync ledger file", err.Error())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewLedgerWriteError("failed to close ledger temp file", err.Error())
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperrors.NewLedgerWriteError("failed to replace ledger file", err.Error())
	}
	return nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
