package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/apperrors"
	"github.com/siteforms/siteforms-api/internal/client/brevo"
	"github.com/siteforms/siteforms-api/internal/config"
)

//go:generate mockgen -source=senders.go -destination=../mocks/email_sender_mock.go -package=mocks EmailSender

// TransactionalEmailParams describes one outgoing email, independent of the
// provider that delivers it.
type TransactionalEmailParams struct {
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string
	Cc       []string
}

// EmailSender delivers a single transactional email. Implementations make
// exactly one attempt per call and surface provider failures as
// DeliveryError.
type EmailSender interface {
	SendTransactionalEmail(ctx context.Context, params TransactionalEmailParams) error
}

// NewSenderFromConfig returns the sender implementation selected by
// EMAIL_PROVIDER. Brevo is the default.
func NewSenderFromConfig(cfg *config.Config, log *zap.Logger) EmailSender {
	if cfg.EmailProvider == config.ProviderResend {
		return NewResendSender(cfg.ResendAPIKey, cfg.SenderEmail, cfg.SenderName, log)
	}
	return NewBrevoSender(brevo.NewClient(cfg.BrevoAPIKey, log), cfg.SenderEmail, cfg.SenderName)
}

// BrevoSender delivers email through the Brevo transactional API.
type BrevoSender struct {
	client    *brevo.Client
	fromEmail string
	fromName  string
}

// NewBrevoSender creates a BrevoSender with a fixed sender identity.
func NewBrevoSender(client *brevo.Client, fromEmail, fromName string) *BrevoSender {
	return &BrevoSender{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendTransactionalEmail issues one send through the Brevo client.
func (s *BrevoSender) SendTransactionalEmail(ctx context.Context, params TransactionalEmailParams) error {
	_, err := s.client.SendEmail(ctx, brevo.SendEmailParams{
		Sender:      brevo.Contact{Email: s.fromEmail, Name: s.fromName},
		To:          params.To,
		Subject:     params.Subject,
		HTMLContent: params.HTMLBody,
		ReplyTo:     params.ReplyTo,
		Cc:          params.Cc,
	})
	return err
}

// ResendSender delivers email through the Resend API. It is selectable via
// EMAIL_PROVIDER=resend for deployments that already have a Resend account.
type ResendSender struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewResendSender creates a ResendSender with a fixed sender identity.
func NewResendSender(apiKey, fromEmail, fromName string, log *zap.Logger) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    log,
	}
}

// SendTransactionalEmail issues one send through the Resend SDK.
func (s *ResendSender) SendTransactionalEmail(ctx context.Context, params TransactionalEmailParams) error {
	req := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{params.To},
		Subject: params.Subject,
		Html:    params.HTMLBody,
		Cc:      params.Cc,
	}
	if params.ReplyTo != "" {
		req.ReplyTo = params.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		s.logger.Error("Resend rejected send",
			zap.Error(err),
			zap.String("to", params.To),
			zap.String("subject", params.Subject))
		return &apperrors.DeliveryError{ProviderMessage: err.Error()}
	}

	s.logger.Info("Email accepted by Resend",
		zap.String("email_id", sent.Id),
		zap.String("to", params.To),
		zap.String("subject", params.Subject))

	return nil
}
