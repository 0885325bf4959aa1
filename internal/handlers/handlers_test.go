package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

// testEnv wires the real services over in-memory fakes and mounts
// them on the same routes the server uses.
type testEnv struct {
	router  chi.Router
	users   *services.FakeUserStore
	avatars *services.FakeAvatarStorage
	socials *services.FakeSocialStore
	stats   *services.FakeStatsStore
	contrib *services.FakeContributions
}

func newTestEnv(t *testing.T, ownerID string) *testEnv {
	t.Helper()

	tokens, err := services.NewTokenIssuer("test-secret", 24*time.Hour)
	require.NoError(t, err)
	logger := zap.NewNop()

	env := &testEnv{
		users:   services.NewFakeUserStore(),
		avatars: services.NewFakeAvatarStorage(),
		socials: services.NewFakeSocialStore(),
		stats:   services.NewFakeStatsStore(),
		contrib: &services.FakeContributions{Total: 100},
	}

	authHandler := NewAuthHandler(services.NewAuthService(env.users, tokens, logger))
	userHandler := NewUserHandler(services.NewProfileService(env.users, env.avatars, ownerID, logger), 5)
	socialHandler := NewSocialHandler(env.socials)
	statsHandler := NewStatsHandler(services.NewStatsService(env.stats, env.contrib, logger))

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signin", authHandler.SignIn)
		r.Post("/auth/signup", authHandler.SignUp)

		r.Route("/user", func(r chi.Router) {
			r.Get("/", userHandler.GetUserInfo)
			r.Put("/skills/{id}", userHandler.UpdateSkills)
			r.Put("/experience/{id}", userHandler.UpdateExperience)
			r.Put("/projects/{id}", userHandler.UpdateProjects)
			r.Put("/education/{id}", userHandler.UpdateEducation)
			r.Put("/featuredProjects/{id}", userHandler.UpdateFeaturedProjects)
			r.Put("/profile/description/{id}", userHandler.UpdateDescription)
			r.Put("/profile/avatar/{id}", userHandler.UpdateAvatar)
			r.Put("/openToOpportunities/{id}", userHandler.UpdateOpenToOpportunities)
		})

		r.Get("/socials", socialHandler.List)
		r.Put("/socials", socialHandler.Update)

		r.Get("/stats", statsHandler.Get)
		r.Post("/stats", statsHandler.Upsert)
	})

	env.router = r
	return env
}

func (e *testEnv) seedOwner() *models.User {
	hash, _ := services.HashPassword("hunter2")
	return e.users.Seed(&models.User{
		ID:           "owner",
		Email:        "owner@example.com",
		PasswordHash: hash,
		Name:         "Owner",
	})
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
