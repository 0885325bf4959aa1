package models

import (
	"sort"
	"time"
)

// User is the single portfolio owner's document. The password hash is
// stored under the legacy "password" field name and never serialized
// to JSON.
type User struct {
	ID                  string            `bson:"_id,omitempty" json:"id"`
	Email               string            `bson:"email" json:"email"`
	PasswordHash        string            `bson:"password" json:"-"`
	Name                string            `bson:"name" json:"name"`
	Phone               string            `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedinURL         string            `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	GithubURL           string            `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	Description         string            `bson:"description,omitempty" json:"description,omitempty"`
	Skills              []string          `bson:"skills,omitempty" json:"skills"`
	Avatar              Avatar            `bson:"avatar,omitempty" json:"avatar"`
	Experience          []Experience      `bson:"experience,omitempty" json:"experience"`
	FeaturedProjects    []FeaturedProject `bson:"featuredProjects,omitempty" json:"featuredProjects"`
	Projects            []Project         `bson:"projects,omitempty" json:"projects"`
	Education           []Education       `bson:"education,omitempty" json:"education"`
	OpenToOpportunities bool              `bson:"openToOpportunities" json:"openToOpportunities"`
}

// Avatar references an uploaded image in object storage.
type Avatar struct {
	PublicID string `bson:"public_id,omitempty" json:"public_id,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
}

type Experience struct {
	Position    string     `bson:"position" json:"position"`
	Company     string     `bson:"company" json:"company"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Details     []string   `bson:"details,omitempty" json:"details,omitempty"`
	Image       string     `bson:"image,omitempty" json:"image,omitempty"`
}

type FeaturedProject struct {
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`
	GithubLink   string   `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	WebsiteLink  string   `bson:"websiteLink,omitempty" json:"websiteLink,omitempty"`
	Cover        string   `bson:"cover,omitempty" json:"cover,omitempty"`
}

type Project struct {
	Name         string   `bson:"name,omitempty" json:"name,omitempty"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`
	URL          string   `bson:"url,omitempty" json:"url,omitempty"`
}

type Education struct {
	Degree       string     `bson:"degree,omitempty" json:"degree,omitempty"`
	Institution  string     `bson:"institution,omitempty" json:"institution,omitempty"`
	FieldOfStudy string     `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	StartDate    *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// SortExperienceDesc orders entries by start date, newest first.
// Entries without a start date sort as the epoch, so they end up last.
// The update path and the read path both use this same ordering.
func SortExperienceDesc(experience []Experience) {
	sort.SliceStable(experience, func(i, j int) bool {
		return experienceStart(experience[i]).After(experienceStart(experience[j]))
	})
}

func experienceStart(e Experience) time.Time {
	if e.StartDate == nil {
		return time.Unix(0, 0).UTC()
	}
	return *e.StartDate
}

// AuthUserView is the slice of a User returned by the auth endpoints.
type AuthUserView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	GithubURL   string `json:"githubUrl,omitempty"`
}

// AuthView returns the auth-endpoint projection of the user.
func (u *User) AuthView() AuthUserView {
	return AuthUserView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		LinkedinURL: u.LinkedinURL,
		GithubURL:   u.GithubURL,
	}
}

// UserInfo is the public profile projection returned by GET /user/.
// It never carries the email, phone or password hash.
type UserInfo struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Avatar              Avatar            `json:"avatar"`
	Description         string            `json:"description,omitempty"`
	Skills              []string          `json:"skills"`
	Experience          []Experience      `json:"experience"`
	Projects            []Project         `json:"projects"`
	Education           []Education       `json:"education"`
	FeaturedProjects    []FeaturedProject `json:"featuredProjects"`
	OpenToOpportunities bool              `json:"openToOpportunities"`
}

// InfoView returns the public profile projection of the user.
func (u *User) InfoView() UserInfo {
	return UserInfo{
		ID:                  u.ID,
		Name:                u.Name,
		Avatar:              u.Avatar,
		Description:         u.Description,
		Skills:              u.Skills,
		Experience:          u.Experience,
		Projects:            u.Projects,
		Education:           u.Education,
		FeaturedProjects:    u.FeaturedProjects,
		OpenToOpportunities: u.OpenToOpportunities,
	}
}

// SignUpRequest is the POST /auth/signup body. The wire field for the
// LinkedIn profile is "linkedin" even though it is stored as
// linkedinUrl.
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Linkedin  string `json:"linkedin"`
	GithubURL string `json:"githubUrl"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  AuthUserView `json:"user"`
}
