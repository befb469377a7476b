package ticket

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(id string) Ticket {
	return Ticket{ID: id}
}

func TestNextID(t *testing.T) {
	bucket := "09032025"

	tests := []struct {
		name     string
		snapshot []Ticket
		expected string
	}{
		{
			name:     "empty ledger starts at one",
			snapshot: nil,
			expected: "VB090320251",
		},
		{
			name:     "increments after existing rows",
			snapshot: []Ticket{row("VB090320251"), row("VB090320252")},
			expected: "VB090320253",
		},
		{
			name:     "rows from other days are ignored",
			snapshot: []Ticket{row("VB080320257"), row("VB0803202512")},
			expected: "VB090320251",
		},
		{
			name:     "continues after day rollover rows",
			snapshot: []Ticket{row("VB080320259"), row("VB090320251")},
			expected: "VB090320252",
		},
		{
			name:     "no fixed width beyond nine",
			snapshot: []Ticket{row("VB090320259")},
			expected: "VB0903202510",
		},
		{
			name:     "malformed suffix on last row resets the sequence",
			snapshot: []Ticket{row("VB090320254"), row("VB09032025abc")},
			expected: "VB090320251",
		},
		{
			name:     "non-positive suffix resets the sequence",
			snapshot: []Ticket{row("VB09032025-3")},
			expected: "VB090320251",
		},
		{
			name: "last row wins over a numerically larger earlier row",
			// Deliberate policy: sequence derives from the last matching
			// row in append order, not the maximum.
			snapshot: []Ticket{row("VB090320255"), row("VB090320252")},
			expected: "VB090320253",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextID(tt.snapshot, bucket))
		})
	}
}

func TestNextIDSequentialAssignment(t *testing.T) {
	bucket := "01012025"

	var snapshot []Ticket
	for i := 1; i <= 12; i++ {
		id := NextID(snapshot, bucket)
		assert.Equal(t, "VB01012025"+strconv.Itoa(i), id)
		snapshot = append(snapshot, row(id))
	}
}

func TestDisplayReason(t *testing.T) {
	assert.Equal(t, ReasonPlaceholder, Ticket{}.DisplayReason())
	assert.Equal(t, ReasonPlaceholder, Ticket{Reason: "   "}.DisplayReason())
	assert.Equal(t, "password reset", Ticket{Reason: "password reset"}.DisplayReason())
}
