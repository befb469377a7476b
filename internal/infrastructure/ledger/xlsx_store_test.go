package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"vbuddy/internal/domain/ticket"
	apperrors "vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/logger"
)

func newTestStore(t *testing.T) *XLSXStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "support_tickets.xlsx")
	return NewXLSXStore(path, logger.NewLogger())
}

func sampleTicket(id string) ticket.Ticket {
	return ticket.Ticket{
		ID:        id,
		Name:      "Asha Rao",
		Mobile:    "+91 98765 43210",
		Email:     "asha@example.com",
		Reason:    "cannot log in",
		Timestamp: "09/03/2025, 18:00:45",
	}
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppendRoundTrip(t *testing.T) {
	store := newTestStore(t)

	first := sampleTicket("VB090320251")
	second := sampleTicket("VB090320252")
	second.Reason = ""

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	rows, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, first, rows[0])
	assert.Equal(t, second, rows[1])
	// Empty reason is stored empty, not as the display placeholder.
	assert.Equal(t, "", rows[1].Reason)
}

func TestAppendPreservesOrderAcrossManyRewrites(t *testing.T) {
	store := newTestStore(t)

	ids := []string{"VB010120251", "VB010120252", "VB010120253", "VB020120251", "VB020120252"}
	for _, id := range ids {
		require.NoError(t, store.Append(sampleTicket(id)))
	}

	rows, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, rows[i].ID)
	}
}

func TestLedgerHeaderAndColumnOrder(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(sampleTicket("VB090320251")))

	f, err := excelize.OpenFile(store.path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Ticket ID", "Name", "Mobile", "Email", "Reason", "Timestamp"}, rows[0])
}

func TestReadAllGarbageFileIsCorrupt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("not a workbook"), 0o644))

	_, err := store.ReadAll()
	require.Error(t, err)
	assert.True(t, apperrors.IsLedgerCorruptError(err))
}

func TestReadAllMissingTicketsSheetIsCorrupt(t *testing.T) {
	store := newTestStore(t)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Other"))
	require.NoError(t, f.SaveAs(store.path))
	require.NoError(t, f.Close())

	_, err := store.ReadAll()
	require.Error(t, err)
	assert.True(t, apperrors.IsLedgerCorruptError(err))
}

func TestAppendAfterCorruptionFails(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("not a workbook"), 0o644))

	err := store.Append(sampleTicket("VB090320251"))
	require.Error(t, err)
	assert.True(t, apperrors.IsLedgerCorruptError(err))
}
