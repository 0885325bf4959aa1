package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/backend/internal/models"
)

func TestSocialsReplaceThenListReturnsExactly(t *testing.T) {
	env := newTestEnv(t, "")

	// Pre-existing links that must not survive the replace.
	require.NoError(t, env.socials.ReplaceAll(context.Background(), []models.SocialLink{
		{Href: "https://old.example.com", Icon: "old", Alt: "Old"},
	}))

	links := []models.SocialLink{
		{Href: "https://github.com/owner", Icon: "github", Alt: "GitHub"},
		{Href: "https://linkedin.com/in/owner", Icon: "linkedin", Alt: "LinkedIn"},
	}

	rec := env.doJSON(t, http.MethodPut, "/api/v1/socials", map[string]interface{}{"socials": links})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Social links updated successfully", decodeBody(t, rec)["message"])

	rec = env.doJSON(t, http.MethodGet, "/api/v1/socials", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	got := body["socials"].([]interface{})
	require.Len(t, got, 2, "no leftover entries from before the replace")
	assert.Equal(t, "https://github.com/owner", got[0].(map[string]interface{})["href"])
	assert.Equal(t, "https://linkedin.com/in/owner", got[1].(map[string]interface{})["href"])
}

func TestSocialsListErrorIs500(t *testing.T) {
	env := newTestEnv(t, "")
	env.socials.ListErr = assert.AnError

	rec := env.doJSON(t, http.MethodGet, "/api/v1/socials", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
}
