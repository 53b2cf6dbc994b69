package checker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/mailer"
)

type ledgerKey struct {
	contractID int64
	kind       db.NotificationKind
}

// fakeStore implements Store in memory and enforces the same uniqueness
// rule the notifications table does, answering duplicate inserts with a
// Postgres unique-violation error.
type fakeStore struct {
	mu sync.Mutex

	contracts []db.Contract
	listErr   error

	emails     []string
	emailsErr  error
	emailCalls int

	notifications map[ledgerKey]db.Notification
	createErrFor  map[int64]error
	existsErrFor  map[int64]error
	nextID        int64
}

func newFakeStore(contracts []db.Contract, emails []string) *fakeStore {
	return &fakeStore{
		contracts:     contracts,
		emails:        emails,
		notifications: make(map[ledgerKey]db.Notification),
		createErrFor:  make(map[int64]error),
		existsErrFor:  make(map[int64]error),
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{
		Code:           db.UniqueViolationCode,
		ConstraintName: db.UniqueNotificationConstraint,
	}
}

func (s *fakeStore) ListActiveContractsByEndDate(_ context.Context) ([]db.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.contracts, nil
}

func (s *fakeStore) ListUserEmails(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailCalls++
	if s.emailsErr != nil {
		return nil, s.emailsErr
	}
	return s.emails, nil
}

func (s *fakeStore) NotificationExists(_ context.Context, arg db.NotificationExistsParams) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.existsErrFor[arg.ContractID]; err != nil {
		return false, err
	}
	_, ok := s.notifications[ledgerKey{arg.ContractID, arg.Kind}]
	return ok, nil
}

func (s *fakeStore) CreateNotification(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.createErrFor[arg.ContractID]; err != nil {
		return db.Notification{}, err
	}

	key := ledgerKey{arg.ContractID, arg.Kind}
	if _, ok := s.notifications[key]; ok {
		return db.Notification{}, uniqueViolation()
	}

	s.nextID++
	notification := db.Notification{
		ID:         s.nextID,
		ContractID: arg.ContractID,
		Kind:       arg.Kind,
		Message:    arg.Message,
		EmailSent:  arg.EmailSent,
		CreatedAt:  time.Now(),
	}
	s.notifications[key] = notification
	return notification, nil
}

type fakeMailer struct {
	mu     sync.Mutex
	calls  int
	result mailer.DispatchResult
}

func (m *fakeMailer) SendExpiryAlert(_ context.Context, recipients []string, _ db.Contract, _ int) mailer.DispatchResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if !m.result.Success && m.result.Reason == "" {
		if len(recipients) == 0 {
			return mailer.DispatchResult{Success: false, Reason: mailer.ReasonNoRecipients}
		}
		return mailer.DispatchResult{Success: true, TotalSent: len(recipients)}
	}
	return m.result
}

func activeContract(id int64, name string, endDate time.Time) db.Contract {
	return db.Contract{
		ID:       id,
		Name:     name,
		Position: "Operator Produksi",
		EndDate:  endDate,
		Status:   db.ContractStatusActive,
	}
}

var testToday = time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

func newTestChecker(store Store, m Mailer) *Checker {
	c := NewChecker(store, m)
	c.now = func() time.Time { return testToday }
	return c
}

func TestRunCycleCreatesSingleWarningNotification(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(1, "Budi Santoso", testToday.AddDate(0, 0, 7))},
		[]string{"hr@example.com"},
	)
	c := newTestChecker(store, &fakeMailer{})

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.ContractsChecked)
	require.Equal(t, 1, report.NotificationsCreated)
	require.Equal(t, 1, report.EmailsSent)
	require.Equal(t, 0, report.Failures)

	notification, ok := store.notifications[ledgerKey{1, db.NotificationKindWarning7days}]
	require.True(t, ok)
	require.Contains(t, notification.Message, "7 hari")
	require.True(t, notification.EmailSent)
	require.Len(t, store.notifications, 1)

	// Re-running the cycle over unchanged data creates nothing new.
	report, err = c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.NotificationsCreated)
	require.Equal(t, 0, report.EmailsSent)
	require.Len(t, store.notifications, 1)
}

func TestRunCyclePicksMostUrgentKindOnly(t *testing.T) {
	// 1 day remaining is also <= 7 and <= 30; only the critical kind fires.
	store := newFakeStore(
		[]db.Contract{activeContract(3, "Siti Aminah", testToday.AddDate(0, 0, 1))},
		nil,
	)
	c := newTestChecker(store, &fakeMailer{})

	_, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Len(t, store.notifications, 1)
	_, ok := store.notifications[ledgerKey{3, db.NotificationKindCritical1day}]
	require.True(t, ok)
}

func TestRunCycleZeroContracts(t *testing.T) {
	store := newFakeStore(nil, []string{"hr@example.com"})
	m := &fakeMailer{}
	c := newTestChecker(store, m)

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Zero(t, report)
	require.Zero(t, m.calls)
	// Recipient snapshot is not even fetched when there is nothing to check.
	require.Zero(t, store.emailCalls)
}

func TestRunCycleSkipsOutOfRangeContracts(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{
			activeContract(1, "Jauh", testToday.AddDate(0, 0, 90)),
			activeContract(2, "Lewat", testToday.AddDate(0, 0, -5)),
		},
		[]string{"hr@example.com"},
	)
	c := newTestChecker(store, &fakeMailer{})

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.ContractsChecked)
	require.Equal(t, 0, report.NotificationsCreated)
	require.Empty(t, store.notifications)
}

func TestRunCycleRecordsEmailSentFalseWhenNotConfigured(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(5, "Agus Wijaya", testToday.AddDate(0, 0, 20))},
		[]string{"hr@example.com"},
	)
	m := &fakeMailer{result: mailer.DispatchResult{Success: false, Reason: mailer.ReasonNotConfigured}}
	c := newTestChecker(store, m)

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.NotificationsCreated)
	require.Equal(t, 0, report.EmailsSent)

	notification := store.notifications[ledgerKey{5, db.NotificationKindWarning30days}]
	require.False(t, notification.EmailSent)
}

func TestRunCyclePartialEmailFailureStillCountsAsSent(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(6, "Dewi Lestari", testToday.AddDate(0, 0, 7))},
		[]string{"a@example.com", "b@example.com"},
	)
	m := &fakeMailer{result: mailer.DispatchResult{Success: true, TotalSent: 1, TotalFailed: 1}}
	c := newTestChecker(store, m)

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.EmailsSent)

	notification := store.notifications[ledgerKey{6, db.NotificationKindWarning7days}]
	require.True(t, notification.EmailSent)
}

func TestRunCycleIsolatesPerContractFailures(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{
			activeContract(1, "Pertama", testToday.AddDate(0, 0, 3)),
			activeContract(2, "Kedua", testToday.AddDate(0, 0, 5)),
			activeContract(3, "Ketiga", testToday.AddDate(0, 0, 6)),
		},
		[]string{"hr@example.com"},
	)
	store.createErrFor[2] = errors.New("connection reset")
	c := newTestChecker(store, &fakeMailer{})

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.ContractsChecked)
	require.Equal(t, 2, report.NotificationsCreated)
	require.Equal(t, 1, report.Failures)
}

func TestRunCycleTreatsLostRaceAsSuccess(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(9, "Rina Kurnia", testToday.AddDate(0, 0, 7))},
		nil,
	)
	// Another instance inserted between our exists-check and create.
	store.createErrFor[9] = uniqueViolation()
	c := newTestChecker(store, &fakeMailer{})

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Failures)
	require.Equal(t, 0, report.NotificationsCreated)
}

func TestRunCycleAbortsWhenContractListUnavailable(t *testing.T) {
	store := newFakeStore(nil, nil)
	store.listErr = errors.New("database is down")
	m := &fakeMailer{}
	c := newTestChecker(store, m)

	_, err := c.RunCycle(context.Background())
	require.Error(t, err)
	require.Zero(t, m.calls)
}

func TestRunCycleFetchesRecipientsOncePerCycle(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{
			activeContract(1, "Satu", testToday.AddDate(0, 0, 1)),
			activeContract(2, "Dua", testToday.AddDate(0, 0, 7)),
			activeContract(3, "Tiga", testToday.AddDate(0, 0, 30)),
		},
		[]string{"hr@example.com"},
	)
	c := newTestChecker(store, &fakeMailer{})

	_, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.emailCalls)
}

func TestRunCycleProceedsWithoutEmailWhenRecipientsUnavailable(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(4, "Tono", testToday.AddDate(0, 0, 7))},
		nil,
	)
	store.emailsErr = errors.New("users table locked")
	c := newTestChecker(store, &fakeMailer{})

	report, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.NotificationsCreated)

	notification := store.notifications[ledgerKey{4, db.NotificationKindWarning7days}]
	require.False(t, notification.EmailSent)
}

func TestRunCycleStopsStartingNewContractsOnCancel(t *testing.T) {
	store := newFakeStore(
		[]db.Contract{activeContract(1, "Satu", testToday.AddDate(0, 0, 7))},
		nil,
	)
	c := newTestChecker(store, &fakeMailer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := c.RunCycle(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, report.ContractsChecked)
	require.Empty(t, store.notifications)
}
