package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/util"
)

type fakeSMTPClient struct {
	sent    []string
	failFor map[string]error
}

func (c *fakeSMTPClient) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	for _, msg := range messages {
		recipients, err := msg.GetRecipients()
		if err != nil {
			return err
		}
		for _, recipient := range recipients {
			if err := c.failFor[recipient]; err != nil {
				return err
			}
			c.sent = append(c.sent, recipient)
		}
	}
	return nil
}

func testContract() db.Contract {
	position := "Operator Produksi"
	return db.Contract{
		ID:       17,
		Name:     "Budi Santoso",
		Position: position,
		EndDate:  time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
		Status:   db.ContractStatusActive,
	}
}

func testSender(client smtpClient) *ExpirySender {
	return &ExpirySender{
		client:      client,
		senderName:  "PKWT Management System",
		senderAddr:  "noreply@example.com",
		sendTimeout: time.Second,
		configured:  true,
	}
}

func TestSendExpiryAlertNotConfigured(t *testing.T) {
	sender, err := NewExpirySender(util.Config{EmailSendTimeout: time.Second})
	require.NoError(t, err)

	result := sender.SendExpiryAlert(context.Background(), []string{"a@example.com"}, testContract(), 7)
	require.False(t, result.Success)
	require.Equal(t, ReasonNotConfigured, result.Reason)
	require.False(t, result.EmailSent())
}

func TestSendExpiryAlertNoRecipients(t *testing.T) {
	sender := testSender(&fakeSMTPClient{})

	result := sender.SendExpiryAlert(context.Background(), nil, testContract(), 7)
	require.False(t, result.Success)
	require.Equal(t, ReasonNoRecipients, result.Reason)
	require.False(t, result.EmailSent())
}

func TestSendExpiryAlertFanOut(t *testing.T) {
	client := &fakeSMTPClient{}
	sender := testSender(client)

	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	result := sender.SendExpiryAlert(context.Background(), recipients, testContract(), 30)
	require.True(t, result.Success)
	require.Equal(t, 3, result.TotalSent)
	require.Equal(t, 0, result.TotalFailed)
	require.True(t, result.EmailSent())
	require.Equal(t, recipients, client.sent)
}

func TestSendExpiryAlertPartialFailure(t *testing.T) {
	// One bad recipient must not abort delivery to the others, and a single
	// success is enough for the caller to record email_sent=true.
	client := &fakeSMTPClient{
		failFor: map[string]error{"b@example.com": errors.New("mailbox unavailable")},
	}
	sender := testSender(client)

	result := sender.SendExpiryAlert(context.Background(), []string{"a@example.com", "b@example.com"}, testContract(), 1)
	require.True(t, result.Success)
	require.Equal(t, 1, result.TotalSent)
	require.Equal(t, 1, result.TotalFailed)
	require.True(t, result.EmailSent())

	require.Len(t, result.Recipients, 2)
	require.NoError(t, result.Recipients[0].Err)
	require.Error(t, result.Recipients[1].Err)
	require.Equal(t, []string{"a@example.com"}, client.sent)
}

func TestRenderExpiryAlertBodyUrgency(t *testing.T) {
	contract := testContract()

	body := renderExpiryAlertBody(contract, 25)
	require.Contains(t, body, "Pemberitahuan")
	require.Contains(t, body, "Budi Santoso")
	require.Contains(t, body, "25 Hari Tersisa")

	body = renderExpiryAlertBody(contract, 5)
	require.Contains(t, body, "Peringatan")

	body = renderExpiryAlertBody(contract, 1)
	require.Contains(t, body, "URGENT")
	require.Contains(t, body, "kurang dari 24 jam")
}
