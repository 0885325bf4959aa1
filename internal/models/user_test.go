package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestSortExperienceDesc(t *testing.T) {
	experience := []Experience{
		{Position: "Engineer", Company: "Acme", StartDate: datePtr(2020, 1, 1)},
		{Position: "Senior Engineer", Company: "Globex", StartDate: datePtr(2022, 1, 1)},
		{Position: "Intern", Company: "Initech"}, // no start date
	}

	SortExperienceDesc(experience)

	assert.Equal(t, "Globex", experience[0].Company)
	assert.Equal(t, "Acme", experience[1].Company)
	assert.Equal(t, "Initech", experience[2].Company)
}

func TestSortExperienceDescUndatedSortLast(t *testing.T) {
	experience := []Experience{
		{Position: "A", Company: "One"},
		{Position: "B", Company: "Two", StartDate: datePtr(1999, 6, 1)},
	}

	SortExperienceDesc(experience)

	assert.Equal(t, "Two", experience[0].Company)
	assert.Equal(t, "One", experience[1].Company)
}

func TestUserViewsExcludePasswordHash(t *testing.T) {
	u := User{
		ID:           "u1",
		Email:        "owner@example.com",
		PasswordHash: "$2a$10$secret",
		Name:         "Owner",
	}

	for _, view := range []interface{}{u, u.AuthView(), u.InfoView()} {
		out, err := json.Marshal(view)
		assert.NoError(t, err)
		assert.NotContains(t, string(out), "secret")
		assert.NotContains(t, string(out), "password")
	}
	assert.Equal(t, "Owner", u.AuthView().Name)
	assert.Equal(t, "u1", u.InfoView().ID)
}
