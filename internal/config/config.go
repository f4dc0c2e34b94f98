package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt

	CORSOrigins []string

	// ParserTuningPath points at an optional YAML file overriding the
	// parser's heuristic thresholds; empty means built-in defaults.
	ParserTuningPath string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:         addr,
		DBDriver:         envOr("DB_DRIVER", "sqlite"),
		DBDSN:            envOr("DB_DSN", ""),
		AuthHMACSecret:   envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:        envOr("ADMIN_USER", "admin"),
		AdminPassHash:    envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOrigins:      csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:3010"),
		ParserTuningPath: os.Getenv("PARSER_TUNING"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
