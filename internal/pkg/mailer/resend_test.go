package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(url string) Mailer {
	return New(Options{
		BaseURL:    url,
		APIKey:     "re_test",
		From:       "Real Estate Analyzer <onboarding@resend.dev>",
		MaxRetries: 3,
		Backoff:    time.Millisecond,
	})
}

func TestSendWithRetrySuccessFirstAttempt(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	res, err := newTestMailer(srv.URL).SendWithRetry(context.Background(), "agent@example.com", "subject", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "msg_123", res.MessageID)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, calls)
}

func TestSendWithRetryRecoversOnSecondAttempt(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"name":"internal_server_error","message":"temporary"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_456"}`))
	}))
	defer srv.Close()

	res, err := newTestMailer(srv.URL).SendWithRetry(context.Background(), "agent@example.com", "subject", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "msg_456", res.MessageID)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 2, calls)
}

func TestSendWithRetryExhaustsAttempts(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"invalid to address"}`))
	}))
	defer srv.Close()

	res, err := newTestMailer(srv.URL).SendWithRetry(context.Background(), "bad-address", "subject", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 3, calls)
}
