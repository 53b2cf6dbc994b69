package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/util"
)

// FailureReason classifies a dispatch that never reached the transport.
type FailureReason string

const (
	ReasonNotConfigured FailureReason = "not_configured"
	ReasonNoRecipients  FailureReason = "no_recipients"
)

type RecipientResult struct {
	Email string
	Err   error
}

// DispatchResult aggregates the outcome of one expiry alert fan-out.
// Success means the transport was attempted, not that every recipient
// received the message.
type DispatchResult struct {
	Success     bool
	Reason      FailureReason
	TotalSent   int
	TotalFailed int
	Recipients  []RecipientResult
}

// EmailSent reports whether at least one recipient received the alert.
func (r DispatchResult) EmailSent() bool {
	return r.TotalSent > 0
}

// smtpClient is the part of *mail.Client the sender uses.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// ExpirySender delivers contract expiry alerts over SMTP. A sender built
// without complete SMTP settings is valid but disabled: every dispatch
// returns ReasonNotConfigured and the caller records email_sent=false.
type ExpirySender struct {
	client      smtpClient
	senderName  string
	senderAddr  string
	sendTimeout time.Duration
	configured  bool
}

func NewExpirySender(config util.Config) (*ExpirySender, error) {
	sender := &ExpirySender{
		senderName:  config.EmailSenderName,
		senderAddr:  config.EmailSenderAddress,
		sendTimeout: config.EmailSendTimeout,
	}
	if sender.senderAddr == "" {
		sender.senderAddr = config.SMTPUsername
	}

	if !config.SMTPConfigured() {
		log.Warn().Msg("SMTP configuration not set, expiry emails are disabled")
		return sender, nil
	}

	client, err := mail.NewClient(config.SMTPHost,
		mail.WithPort(config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.SMTPUsername),
		mail.WithPassword(config.SMTPPassword),
		mail.WithTimeout(config.EmailSendTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	sender.client = client
	sender.configured = true
	return sender, nil
}

// SendExpiryAlert delivers the alert to every recipient independently: a
// failure for one address does not abort delivery to the others. Each send
// is bounded by its own timeout so a hanging transport cannot stall the
// whole cycle.
func (sender *ExpirySender) SendExpiryAlert(ctx context.Context, recipients []string, contract db.Contract, remainingDays int) DispatchResult {
	if !sender.configured {
		return DispatchResult{Success: false, Reason: ReasonNotConfigured}
	}
	if len(recipients) == 0 {
		return DispatchResult{Success: false, Reason: ReasonNoRecipients}
	}

	subject := fmt.Sprintf("⚠️ Notifikasi PKWT - %s (%d hari tersisa)", contract.Name, remainingDays)
	body := renderExpiryAlertBody(contract, remainingDays)

	result := DispatchResult{Success: true}
	for _, recipient := range recipients {
		err := sender.sendOne(ctx, recipient, subject, body)
		if err != nil {
			log.Error().Err(err).Str("recipient", recipient).Int64("contract_id", contract.ID).Msg("failed to send expiry alert")
			result.TotalFailed++
		} else {
			result.TotalSent++
		}
		result.Recipients = append(result.Recipients, RecipientResult{Email: recipient, Err: err})
	}

	return result
}

func (sender *ExpirySender) sendOne(ctx context.Context, recipient, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(sender.senderName, sender.senderAddr); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	sendCtx, cancel := context.WithTimeout(ctx, sender.sendTimeout)
	defer cancel()

	if err := sender.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
