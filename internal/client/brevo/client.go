// Package brevo implements a minimal client for the Brevo transactional
// email API. Each send is a single attempt; retries and queueing are
// deliberately out of scope.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/apperrors"
)

const (
	defaultBaseURL    = "https://api.brevo.com"
	sendEmailEndpoint = "/v3/smtp/email"
)

// Client calls the Brevo API over HTTPS.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption modifies the client during construction.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at an httptest server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Brevo API client.
func NewClient(apiKey string, logger *zap.Logger, options ...ClientOption) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// SendEmailParams describes one outgoing email.
type SendEmailParams struct {
	Sender      Contact
	To          string
	Subject     string
	HTMLContent string
	ReplyTo     string
	Cc          []string
}

// SendEmail issues one POST to the transactional endpoint and returns the
// provider message ID. A non-2xx response, or a response that cannot be
// decoded, surfaces as a DeliveryError carrying the provider status and
// message. There is exactly one attempt per call.
func (c *Client) SendEmail(ctx context.Context, params SendEmailParams) (string, error) {
	reqBody := sendEmailRequest{
		Sender:      params.Sender,
		To:          []Contact{{Email: params.To}},
		Subject:     params.Subject,
		HTMLContent: params.HTMLContent,
	}
	if params.ReplyTo != "" {
		reqBody.ReplyTo = &Contact{Email: params.ReplyTo}
	}
	for _, cc := range params.Cc {
		reqBody.Cc = append(reqBody.Cc, Contact{Email: cc})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode send email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendEmailEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create send email request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperrors.DeliveryError{ProviderMessage: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.DeliveryError{StatusCode: resp.StatusCode, ProviderMessage: "failed to read provider response"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp ErrorResponse
		message := string(respBody)
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}

		c.logger.Error("Brevo rejected send",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
			zap.String("to", params.To))

		return "", &apperrors.DeliveryError{StatusCode: resp.StatusCode, ProviderMessage: message}
	}

	var sent sendEmailResponse
	if err := json.Unmarshal(respBody, &sent); err != nil {
		return "", &apperrors.DeliveryError{StatusCode: resp.StatusCode, ProviderMessage: "unexpected provider response shape"}
	}

	c.logger.Info("Email accepted by Brevo",
		zap.String("message_id", sent.MessageID),
		zap.String("to", params.To),
		zap.String("subject", params.Subject))

	return sent.MessageID, nil
}
