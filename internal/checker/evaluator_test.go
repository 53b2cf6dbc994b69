package checker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
)

func TestRemainingDays(t *testing.T) {
	today := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		endDate time.Time
		want    int
	}{
		{"same day", today, 0},
		{"tomorrow", today.AddDate(0, 0, 1), 1},
		{"next week", today.AddDate(0, 0, 7), 7},
		{"next month", today.AddDate(0, 0, 30), 30},
		{"yesterday", today.AddDate(0, 0, -1), -1},
		{"time of day is ignored", time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RemainingDays(today, tc.endDate))
		})
	}

	// The checker runs mid-day, not at midnight; the calculation must not
	// see a fractional day.
	lateToday := time.Date(2026, time.August, 31, 17, 45, 12, 0, time.UTC)
	require.Equal(t, 7, RemainingDays(lateToday, today.AddDate(0, 0, 7)))
}

func TestKindForRemainingDays(t *testing.T) {
	testCases := []struct {
		remainingDays int
		wantKind      db.NotificationKind
		wantOK        bool
	}{
		{-10, "", false},
		{-1, "", false},
		{0, db.NotificationKindCritical1day, true},
		{1, db.NotificationKindCritical1day, true},
		{2, db.NotificationKindWarning7days, true},
		{7, db.NotificationKindWarning7days, true},
		{8, db.NotificationKindWarning30days, true},
		{30, db.NotificationKindWarning30days, true},
		{31, "", false},
		{365, "", false},
	}

	for _, tc := range testCases {
		kind, ok := KindForRemainingDays(tc.remainingDays)
		require.Equal(t, tc.wantOK, ok, "remaining days %d", tc.remainingDays)
		require.Equal(t, tc.wantKind, kind, "remaining days %d", tc.remainingDays)
	}
}

func TestMessageForKind(t *testing.T) {
	contract := db.Contract{Name: "Siti Aminah", Position: "Staff Administrasi"}

	msg := MessageForKind(db.NotificationKindCritical1day, contract)
	require.Contains(t, msg, "URGENT")
	require.Contains(t, msg, "Siti Aminah")
	require.Contains(t, msg, "besok")

	msg = MessageForKind(db.NotificationKindWarning7days, contract)
	require.Contains(t, msg, "7 hari")

	msg = MessageForKind(db.NotificationKindWarning30days, contract)
	require.Contains(t, msg, "30 hari")
}
