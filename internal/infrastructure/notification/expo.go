package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// DefaultExpoPushURL is Expo's push gateway endpoint.
const DefaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

type expoMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// PushMetrics counts push delivery outcomes.
type PushMetrics interface {
	PushSent()
	PushFailed()
}

// ExpoNotifier implements usecase.PushNotifier against Expo's push gateway.
// A user may have several registered devices; one request carries the
// message for all of them.
type ExpoNotifier struct {
	url       string
	client    *http.Client
	tokenRepo usecase.PushTokenRepository
	metrics   PushMetrics
	logger    zerolog.Logger
}

// NewExpoNotifier creates a new ExpoNotifier.
func NewExpoNotifier(url string, timeout time.Duration, tokenRepo usecase.PushTokenRepository, metrics PushMetrics, logger zerolog.Logger) *ExpoNotifier {
	if url == "" {
		url = DefaultExpoPushURL
	}
	return &ExpoNotifier{
		url:       url,
		client:    &http.Client{Timeout: timeout},
		tokenRepo: tokenRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// SendPush delivers a notification to every device registered for the user.
// A user with no registered devices is a silent no-op.
func (n *ExpoNotifier) SendPush(ctx context.Context, userID, title, body string) error {
	tokens, err := n.tokenRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list push tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	messages := make([]expoMessage, 0, len(tokens))
	for _, t := range tokens {
		messages = append(messages, expoMessage{
			To:    t.Token,
			Title: title,
			Body:  body,
			Sound: "default",
		})
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.metrics.PushFailed()
		return fmt.Errorf("expo push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.metrics.PushFailed()
		return fmt.Errorf("expo push request: unexpected status %d", resp.StatusCode)
	}

	n.metrics.PushSent()
	n.logger.Debug().
		Str("user_id", userID).
		Int("devices", len(tokens)).
		Msg("push notification delivered")

	return nil
}

// LogNotifier implements usecase.PushNotifier by logging instead of
// sending, for local development and tests.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// SendPush logs the notification.
func (n *LogNotifier) SendPush(ctx context.Context, userID, title, body string) error {
	n.logger.Info().
		Str("user_id", userID).
		Str("title", title).
		Str("body", body).
		Msg("push notification (log only)")
	return nil
}
