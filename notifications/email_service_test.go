package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() BrevoConfig {
	return BrevoConfig{
		APIKey:        "key-123",
		SenderEmail:   "site@example.com",
		SenderName:    "Tutors",
		OperatorEmail: "owner@example.com",
	}
}

func TestNew_NopWhenNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	n := New(cfg, zap.NewNop())
	assert.IsType(t, Nop{}, n)

	assert.IsType(t, &BrevoService{}, New(testConfig(), zap.NewNop()))
}

func TestBrevoService_BookingCreated(t *testing.T) {
	var got brevoPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key-123", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := newBrevoService(testConfig(), srv.URL, zap.NewNop())
	err := s.BookingCreated(context.Background(), BookingNotice{
		BookingID:   7,
		TeacherName: "Anna <b>",
		DayLabel:    "Понедельник",
		TimeStr:     "8:00",
		Name:        "Ivan",
		Phone:       "+79001234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", got.To[0]["email"])
	assert.Equal(t, "owner", got.To[0]["name"])
	assert.Equal(t, "site@example.com", got.Sender["email"])
	assert.Contains(t, got.Subject, "Понедельник 8:00")
	assert.Contains(t, got.HTMLContent, "Anna &lt;b&gt;")
}

func TestBrevoService_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer srv.Close()

	s := newBrevoService(testConfig(), srv.URL, zap.NewNop())
	err := s.Digest(context.Background(), DigestNotice{Bookings: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}
