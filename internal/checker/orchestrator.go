package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/mailer"
)

// Store is the part of db.Store the checker needs: read-only views of
// contracts and recipients plus the append-only notification ledger.
type Store interface {
	ListActiveContractsByEndDate(ctx context.Context) ([]db.Contract, error)
	ListUserEmails(ctx context.Context) ([]string, error)
	NotificationExists(ctx context.Context, arg db.NotificationExistsParams) (bool, error)
	CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error)
}

// Mailer delivers expiry alerts. Implemented by mailer.ExpirySender.
type Mailer interface {
	SendExpiryAlert(ctx context.Context, recipients []string, contract db.Contract, remainingDays int) mailer.DispatchResult
}

// CycleReport summarizes one complete pass over all active contracts.
type CycleReport struct {
	ContractsChecked     int `json:"contracts_checked"`
	NotificationsCreated int `json:"notifications_created"`
	EmailsSent           int `json:"emails_sent"`
	Failures             int `json:"failures"`
}

// Checker runs expiry-check cycles. All collaborators are injected at
// construction; the checker holds no connection state of its own.
type Checker struct {
	store  Store
	mailer Mailer
	now    func() time.Time
}

func NewChecker(store Store, m Mailer) *Checker {
	return &Checker{
		store:  store,
		mailer: m,
		now:    time.Now,
	}
}

// RunCycle performs one full scan: fetch active contracts ordered most
// urgent first, evaluate each against the thresholds, deduplicate against
// already-recorded notifications, dispatch email best-effort and record the
// outcome. Contracts are processed in isolation: a ledger or transport
// failure for one contract is logged and the cycle moves on. Only failing
// to fetch the contract list at all aborts the cycle, and even that never
// terminates the process.
func (c *Checker) RunCycle(ctx context.Context) (CycleReport, error) {
	var report CycleReport

	contracts, err := c.store.ListActiveContractsByEndDate(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list active contracts: %w", err)
	}

	log.Info().Int("active_contracts", len(contracts)).Msg("starting contract expiry check")

	if len(contracts) == 0 {
		return report, nil
	}

	// One recipient snapshot per cycle, not per contract.
	recipients, err := c.store.ListUserEmails(ctx)
	if err != nil {
		// Notifications are still worth recording without email.
		log.Error().Err(err).Msg("failed to list recipient emails, proceeding without email delivery")
		recipients = nil
	}

	today := c.now()
	for _, contract := range contracts {
		// Shutdown or the cycle ceiling: finish nothing new, keep what is done.
		if ctx.Err() != nil {
			log.Warn().
				Err(ctx.Err()).
				Int("contracts_checked", report.ContractsChecked).
				Int("contracts_total", len(contracts)).
				Msg("cycle interrupted, remaining contracts are picked up next run")
			break
		}

		report.ContractsChecked++
		if err := c.checkContract(ctx, contract, today, recipients, &report); err != nil {
			report.Failures++
			log.Error().Err(err).Int64("contract_id", contract.ID).Str("name", contract.Name).Msg("contract check failed")
		}
	}

	log.Info().
		Int("contracts_checked", report.ContractsChecked).
		Int("notifications_created", report.NotificationsCreated).
		Int("emails_sent", report.EmailsSent).
		Int("failures", report.Failures).
		Msg("contract expiry check complete")

	return report, nil
}

func (c *Checker) checkContract(ctx context.Context, contract db.Contract, today time.Time, recipients []string, report *CycleReport) error {
	remainingDays := RemainingDays(today, contract.EndDate)

	kind, ok := KindForRemainingDays(remainingDays)
	if !ok {
		return nil
	}

	exists, err := c.store.NotificationExists(ctx, db.NotificationExistsParams{
		ContractID: contract.ID,
		Kind:       kind,
	})
	if err != nil {
		return fmt.Errorf("failed to check existing notification: %w", err)
	}
	if exists {
		// Already notified at this urgency. Never re-sent, to avoid spamming
		// the same alert every hour.
		return nil
	}

	log.Info().
		Int64("contract_id", contract.ID).
		Str("name", contract.Name).
		Str("kind", string(kind)).
		Int("remaining_days", remainingDays).
		Msg("creating expiry notification")

	// Email is best-effort. Missing configuration or an empty recipient set
	// is not an error, just email_sent=false.
	result := c.mailer.SendExpiryAlert(ctx, recipients, contract, remainingDays)
	report.EmailsSent += result.TotalSent

	_, err = c.store.CreateNotification(ctx, db.CreateNotificationParams{
		ContractID: contract.ID,
		Kind:       kind,
		Message:    MessageForKind(kind, contract),
		EmailSent:  result.EmailSent(),
	})
	if err != nil {
		if db.IsUniqueViolation(err, db.UniqueNotificationConstraint) {
			// Another checker instance won the race. The row exists, which is
			// all that matters.
			log.Info().Int64("contract_id", contract.ID).Str("kind", string(kind)).Msg("notification already created by a concurrent checker")
			return nil
		}
		return fmt.Errorf("failed to create notification: %w", err)
	}

	report.NotificationsCreated++
	return nil
}
