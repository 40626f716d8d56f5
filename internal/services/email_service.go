package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/config"
	"github.com/siteforms/siteforms-api/internal/types/requests"
)

// maxLogoBytes caps how much of a logo response is read when embedding it as
// a data URI.
const maxLogoBytes = 512 * 1024

// FormEmailService orchestrates one form submission: validate, sanitize,
// render, then deliver the submitter acknowledgement followed by the
// operator notification. The two sends are sequential and their order is
// fixed.
type FormEmailService struct {
	sender     EmailSender
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFormEmailService creates a FormEmailService.
func NewFormEmailService(sender EmailSender, cfg *config.Config, log *zap.Logger) *FormEmailService {
	return &FormEmailService{
		sender:     sender,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

// ProcessSubmission runs the full flow for one submission. A validation
// failure returns before any network call. A delivery failure aborts the
// remaining sends; if the operator notification fails after the submitter
// acknowledgement succeeded, no compensating action is taken beyond logging
// the gap.
func (s *FormEmailService) ProcessSubmission(ctx context.Context, sub requests.FormSubmission, formType string) error {
	if err := ValidateSubmission(sub, formType); err != nil {
		return err
	}

	fields := SanitizeSubmission(sub)
	logoSrc := s.resolveLogoSrc(ctx)

	subject, html := RenderSubmitterEmail(formType, fields, logoSrc)
	if err := s.sender.SendTransactionalEmail(ctx, TransactionalEmailParams{
		To:       sub.Email,
		Subject:  subject,
		HTMLBody: html,
		ReplyTo:  s.cfg.ReplyTo,
	}); err != nil {
		s.logger.Error("Failed to send submitter acknowledgement",
			zap.Error(err),
			zap.String("form_type", formType),
			zap.String("to", sub.Email))
		return err
	}

	subject, html = RenderOperatorEmail(formType, fields, logoSrc)
	if err := s.sender.SendTransactionalEmail(ctx, TransactionalEmailParams{
		To:       s.cfg.AdminEmail,
		Subject:  subject,
		HTMLBody: html,
		ReplyTo:  sub.Email,
		Cc:       s.cfg.CCEmails,
	}); err != nil {
		// The submitter has already been acknowledged at this point. There
		// is no retry or compensation; the operator copy is simply lost.
		s.logger.Error("Failed to send operator notification after submitter was acknowledged",
			zap.Error(err),
			zap.String("form_type", formType),
			zap.String("submitter", sub.Email))
		return err
	}

	s.logger.Info("Form submission processed",
		zap.String("form_type", formType),
		zap.String("submitter", sub.Email))

	return nil
}

// resolveLogoSrc returns the image source for the branding logo: an absolute
// URL by default, or a data URI fetched once per request when EMBED_LOGO is
// set. Any failure degrades to the URL form (or to no logo at all when no
// base URL is configured); branding never fails a submission.
func (s *FormEmailService) resolveLogoSrc(ctx context.Context) string {
	if s.cfg.BaseURL == "" {
		return ""
	}

	logoURL := s.cfg.BaseURL + s.cfg.LogoPath
	if !s.cfg.EmbedLogo {
		return logoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
	if err != nil {
		return logoURL
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Failed to fetch logo for embedding", zap.Error(err), zap.String("url", logoURL))
		return logoURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Unexpected status fetching logo", zap.Int("status", resp.StatusCode), zap.String("url", logoURL))
		return logoURL
	}

	// Read one byte past the cap so an oversized logo falls back to the URL
	// form instead of becoming a truncated data URI.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return logoURL
	}
	if len(data) > maxLogoBytes {
		s.logger.Warn("Logo too large to embed, using URL instead",
			zap.Int("bytes", len(data)), zap.String("url", logoURL))
		return logoURL
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
