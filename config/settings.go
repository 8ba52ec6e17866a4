package config

import (
	"os"
	"strings"

	game_constants "pictocat/constants/game"

	"github.com/joho/godotenv"
)

// Settings is the process configuration read from the environment.
type Settings struct {
	Port        string
	Prod        bool
	UseHTTPS    bool
	TLSCertFile string
	TLSKeyFile  string
	LogLevel    string

	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     string
	PostgresDatabase string
	VerbosePostgres  bool
	MigratePostgres  bool

	RedisURL string

	JWTSecret    string
	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string
	AdminSubject string

	GeminiAPIKey string
	GeminiModel  string

	CloudflareAccountID string
	R2AccessKeyID       string
	R2AccessKeySecret   string
	R2BucketName        string
	CDNBaseURL          string

	AllowedOrigins []string
}

// Load reads .env when present and then the process environment.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		Port:        getenv("PORT", "8080"),
		Prod:        os.Getenv("PROD") == "true",
		UseHTTPS:    os.Getenv("USE_HTTPS") == "true",
		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresDatabase: os.Getenv("POSTGRES_DATABASE"),
		VerbosePostgres:  os.Getenv("VERBOSE_POSTGRES") == "true",
		MigratePostgres:  os.Getenv("MIGRATE_POSTGRES") == "true",

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTPublicKey: os.Getenv("JWT_PUBLIC_KEY"),
		JWTIssuer:    os.Getenv("JWT_ISSUER"),
		JWTAudience:  os.Getenv("JWT_AUDIENCE"),
		AdminSubject: getenv("ADMIN_SUBJECT", game_constants.DEFAULT_ADMIN_SUBJECT),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", game_constants.DEFAULT_GEMINI_MODEL),

		CloudflareAccountID: os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		R2AccessKeyID:       os.Getenv("R2_ACCESS_KEY_ID"),
		R2AccessKeySecret:   os.Getenv("R2_ACCESS_KEY_SECRET"),
		R2BucketName:        os.Getenv("R2_BUCKET_NAME"),
		CDNBaseURL:          os.Getenv("CDN_BASE_URL"),

		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
