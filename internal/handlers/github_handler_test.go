package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/backend/internal/services"
)

func TestGithubContributionsProxy(t *testing.T) {
	payload := `{"total":{"2024":434},"contributions":[{"date":"2024-01-01","count":2}]}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer upstream.Close()

	handler := NewGithubHandler(services.NewContributionsClient("octocat", upstream.URL))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/github/contributions", nil)
	rec := httptest.NewRecorder()
	handler.Contributions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, payload, rec.Body.String())
}

func TestGithubContributionsWithoutUsernameIs400(t *testing.T) {
	handler := NewGithubHandler(services.NewContributionsClient("", "https://example.com"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/github/contributions", nil)
	rec := httptest.NewRecorder()
	handler.Contributions(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username is required", decodeBody(t, rec)["error"])
}
