package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	maxAttempts    = 3
	baseRetryDelay = time.Second
)

// Doer - минимальный интерфейс HTTP клиента, для подмены в тестах
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFeedbackSender - отправка отзыва по HTTP с ретраями.
// Серверные и сетевые сбои повторяются с экспоненциальной задержкой,
// клиентские ошибки (4xx) не повторяются
type HTTPFeedbackSender struct {
	Client Doer
	Logger *zap.SugaredLogger
	sleep  func(time.Duration)
}

func NewHTTPFeedbackSender(logger *zap.SugaredLogger) *HTTPFeedbackSender {
	return &HTTPFeedbackSender{
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
		sleep:  time.Sleep,
	}
}

// Send - до трех попыток доставки; между попытками ждем 1s * 2^(attempt-1).
// Запись не считается отправленной, пока сервер не подтвердил прием
func (t *HTTPFeedbackSender) Send(ctx context.Context, feedback Feedback, endpoint string, apiKey string) error {
	body, err := json.Marshal(feedback)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := t.attempt(ctx, body, feedback.ProjectID, endpoint, apiKey)
		if err == nil {
			return nil
		}

		var reqErr *RequestError
		if errors.As(err, &reqErr) && !reqErr.Retryable() {
			// клиентскую ошибку ретраить бессмысленно
			return err
		}

		lastErr = err
		if attempt < maxAttempts {
			delay := baseRetryDelay * (1 << (attempt - 1))
			t.Logger.Debugf("send attempt %d failed: %v, retrying in %s", attempt, err, delay)
			t.sleep(delay)
		}
	}

	return lastErr
}

func (t *HTTPFeedbackSender) attempt(ctx context.Context, body []byte, projectID string, endpoint string, apiKey string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-Project-ID", projectID)

	resp, err := t.Client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body) // nolint:errcheck

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &RequestError{Status: resp.StatusCode}
}
