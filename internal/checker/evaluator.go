package checker

import (
	"fmt"
	"time"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
)

// Threshold buckets, most urgent first. A bucket match (remaining <= N)
// rather than an exact-day match (remaining == N) means a cycle that was
// delayed past the exact day still raises the correct notification instead
// of skipping it.
const (
	criticalThresholdDays = 1
	warningThresholdDays  = 7
	infoThresholdDays     = 30
)

// RemainingDays returns the number of calendar days from today until the
// contract end date, midnight to midnight. Both instants are stripped to
// dates in UTC first so daylight-saving shifts and time-of-day drift cannot
// produce fractional days.
func RemainingDays(today, endDate time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	return int(e.Sub(t) / (24 * time.Hour))
}

// KindForRemainingDays returns the single most urgent notification kind
// applicable to the given remaining days, or false when none applies.
// Contracts already past their end date yield nothing: flipping them to
// Expired is the CRUD side's job, not the checker's.
func KindForRemainingDays(remainingDays int) (db.NotificationKind, bool) {
	switch {
	case remainingDays < 0:
		return "", false
	case remainingDays <= criticalThresholdDays:
		return db.NotificationKindCritical1day, true
	case remainingDays <= warningThresholdDays:
		return db.NotificationKindWarning7days, true
	case remainingDays <= infoThresholdDays:
		return db.NotificationKindWarning30days, true
	default:
		return "", false
	}
}

// MessageForKind renders the inbox message stored alongside a notification.
func MessageForKind(kind db.NotificationKind, contract db.Contract) string {
	switch kind {
	case db.NotificationKindCritical1day:
		return fmt.Sprintf("🚨 URGENT: Kontrak PKWT untuk %s (%s) akan berakhir besok!", contract.Name, contract.Position)
	case db.NotificationKindWarning7days:
		return fmt.Sprintf("⚠️ Kontrak PKWT untuk %s (%s) akan berakhir dalam 7 hari!", contract.Name, contract.Position)
	default:
		return fmt.Sprintf("Kontrak PKWT untuk %s (%s) akan berakhir dalam 30 hari.", contract.Name, contract.Position)
	}
}
