package models

// ErrorResponse is the one error envelope every handler writes. Error
// is a fixed label for the failure class, Message the human-readable
// detail. Stack traces never leave the process.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SkillsResponse struct {
	Message string   `json:"message"`
	Skills  []string `json:"skills"`
}

type ExperienceResponse struct {
	Message    string       `json:"message"`
	Experience []Experience `json:"experience"`
}

type ProjectsResponse struct {
	Message  string    `json:"message"`
	Projects []Project `json:"projects"`
}

type EducationResponse struct {
	Message   string      `json:"message"`
	Education []Education `json:"education"`
}

type FeaturedProjectsResponse struct {
	Message          string            `json:"message"`
	FeaturedProjects []FeaturedProject `json:"featuredProjects"`
}

type DescriptionResponse struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

type AvatarResponse struct {
	Message string `json:"message"`
	Avatar  Avatar `json:"avatar"`
}

type OpenToOpportunitiesResponse struct {
	Message             string `json:"message"`
	OpenToOpportunities bool   `json:"openToOpportunities"`
}

type UserInfoResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

type SocialsResponse struct {
	Message string       `json:"message"`
	Socials []SocialLink `json:"socials"`
}

type StatsResponse struct {
	Message string `json:"message"`
	Stats   *Stats `json:"stats"`
}
