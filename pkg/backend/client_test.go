package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdto "mindcare-client/internal/auth/dto"
)

func TestLoginParsesTokenResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"eyJ.abc.def","tokenType":"Bearer","username":"alice","role":"USER"}`))
	}))
	defer server.Close()

	client := NewAuthClient(server.URL)
	resp, err := client.Login(context.Background(), &authdto.LoginRequest{
		UsernameOrEmail: "alice",
		Password:        "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "eyJ.abc.def", resp.Token)
	assert.Equal(t, "alice", resp.Username)
}

func TestNonSuccessStatusYieldsAPIErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL)
	_, err := client.Login(context.Background(), &authdto.LoginRequest{UsernameOrEmail: "x", Password: "y"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestNonSuccessStatusWithEmptyBodyGetsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewJournalClient(server.URL)
	_, err := client.ListEntries(context.Background(), "token")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusForbidden), apiErr.Message)
}

func TestEmptyListBodyNormalizesToEmptyCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewJournalClient(server.URL)
	entries, err := client.ListEntries(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestTransportFailureIsRequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := NewJournalClient(server.URL)
	_, err := client.ListEntries(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestDeleteSendsBearerAndIgnoresBody(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewAppointmentClient(server.URL)
	require.NoError(t, client.DeleteAppointment(context.Background(), "tok", 7))
	assert.Equal(t, "/appointments/7", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestAnalyzeTextDecodesDecision(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze_text", r.URL.Path)
		// the sentiment endpoint is unauthenticated
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"label":"SUICIDAL","suicidal_score":0.92,"support_recommended":true}`))
	}))
	defer server.Close()

	client := NewSentimentClient(server.URL)
	decision, err := client.AnalyzeText(context.Background(), "dark thoughts")
	require.NoError(t, err)
	assert.Equal(t, "SUICIDAL", decision.Label)
	assert.InDelta(t, 0.92, decision.SuicidalScore, 1e-9)
	assert.True(t, decision.SupportRecommended)
}
