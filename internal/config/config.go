package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress    string
	MongoURI         string
	DBName           string
	JWTSecret        string
	JWTExpiration    time.Duration
	PortfolioUserID  string
	GithubUsername   string
	ContributionsAPI string
	AllowedOrigins   []string
	MaxAvatarSizeMB  int64
	Minio            MinioConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL overrides the URL prefix handed back to clients
	// for uploaded objects. Empty means derive it from the endpoint.
	PublicBaseURL string
}

// Load reads configuration from the environment. In dev it first
// loads a .env file. An empty JWT secret is a startup error, not a
// per-request one.
func Load() (*Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "portfolio"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiration:    24 * time.Hour,
		PortfolioUserID:  os.Getenv("USER_ID"),
		GithubUsername:   os.Getenv("GITHUB_USERNAME"),
		ContributionsAPI: getEnv("CONTRIBUTIONS_API", "https://github-contributions-api.jogruber.de/v4"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:4200")),
		MaxAvatarSizeMB:  5,
		Minio: MinioConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey:     os.Getenv("MINIO_SECRET_KEY"),
			Bucket:        getEnv("MINIO_BUCKET", "avatars"),
			UseSSL:        getEnv("MINIO_USE_SSL", "true") == "true",
			PublicBaseURL: os.Getenv("MINIO_PUBLIC_BASE_URL"),
		},
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
