package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBackendURL     = "http://localhost:5000"
	defaultServerPort     = 8080
	defaultBackendTimeout = 10 * time.Second
	defaultSessionTTL     = 24 * time.Hour
)

// Config хранит все конфигурационные параметры консоли.
type Config struct {
	BackendURL         string
	BackendTimeout     time.Duration
	JWTSecretKey       string
	ServerPort         int
	SessionTTL         time.Duration
	CORSAllowedOrigins []string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv собирает конфигурацию из произвольного источника переменных.
func FromEnv(getenv func(string) string) (*Config, error) {
	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	backendURL := strings.TrimRight(getenv("BACKEND_URL"), "/")
	if backendURL == "" {
		backendURL = defaultBackendURL
	}
	u, err := url.Parse(backendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid BACKEND_URL %q: expected http(s)://host[:port]", backendURL)
	}

	port := defaultServerPort
	if portStr := getenv("SERVER_PORT"); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	timeout, err := duration(getenv, "BACKEND_TIMEOUT", defaultBackendTimeout)
	if err != nil {
		return nil, err
	}
	ttl, err := duration(getenv, "SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	return &Config{
		BackendURL:         backendURL,
		BackendTimeout:     timeout,
		JWTSecretKey:       jwtKey,
		ServerPort:         port,
		SessionTTL:         ttl,
		CORSAllowedOrigins: origins(getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func origins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
