package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestSender(t *testing.T) (*HTTPFeedbackSender, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	sender := NewHTTPFeedbackSender(zaptest.NewLogger(t).Sugar())
	sender.sleep = func(d time.Duration) {
		*sleeps = append(*sleeps, d)
	}

	return sender, sleeps
}

func TestHTTPFeedbackSender_Success(t *testing.T) {
	var gotAuth, gotProject string
	var gotBody Feedback
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		gotAuth = r.Header.Get("Authorization")
		gotProject = r.Header.Get("X-Project-ID")
		body, _ := io.ReadAll(r.Body) // nolint:errcheck
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender, sleeps := newTestSender(t)
	err := sender.Send(context.Background(), validFeedback(), srv.URL, "pk_test")

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, *sleeps)
	assert.Equal(t, "Bearer pk_test", gotAuth)
	assert.Equal(t, "project-1", gotProject)
	assert.Equal(t, 5, gotBody.Rating)
}

func TestHTTPFeedbackSender_ServerErrorRetriesThreeTimes(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sender, sleeps := newTestSender(t)
	err := sender.Send(context.Background(), validFeedback(), srv.URL, "pk_test")

	require.Error(t, err)
	assert.Equal(t, "SERVER_ERROR:503", err.Error())
	assert.Equal(t, 3, attempts)
	// задержки только между попытками: 1s, 2s
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *sleeps)
}

func TestHTTPFeedbackSender_ClientErrorDoesNotRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	sender, sleeps := newTestSender(t)
	err := sender.Send(context.Background(), validFeedback(), srv.URL, "pk_test")

	require.Error(t, err)
	assert.Equal(t, "CLIENT_ERROR:400", err.Error())
	assert.Equal(t, 1, attempts)
	assert.Empty(t, *sleeps)
}

func TestHTTPFeedbackSender_NetworkFailureRetriesThenSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // сервер недоступен

	sender, sleeps := newTestSender(t)
	err := sender.Send(context.Background(), validFeedback(), endpoint, "pk_test")

	require.Error(t, err)
	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Len(t, *sleeps, 2)
	assert.Equal(t, KeyConnectivityError, ClassifyMessage(err))
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want MessageKey
	}{
		{"client error", &RequestError{Status: 401}, KeyClientError},
		{"server error", &RequestError{Status: 503}, KeyServerError},
		{"network failure", &NetworkError{Err: errors.New("dial tcp: connection refused")}, KeyConnectivityError},
		{"unexpected", errors.New("boom"), KeyUnexpectedError},
		{"nil", nil, KeyUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.err))
		})
	}
}
