package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"JWT_SECRET_KEY": "secret"}))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000", cfg.BackendURL)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, 10*time.Second, cfg.BackendTimeout)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"JWT_SECRET_KEY":       "secret",
		"BACKEND_URL":          "https://poker.example.com/",
		"SERVER_PORT":          "9000",
		"BACKEND_TIMEOUT":      "3s",
		"SESSION_TTL":          "2h",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
	}))
	require.NoError(t, err)
	require.Equal(t, "https://poker.example.com", cfg.BackendURL)
	require.Equal(t, 9000, cfg.ServerPort)
	require.Equal(t, 3*time.Second, cfg.BackendTimeout)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret": {},
		"bad port":       {"JWT_SECRET_KEY": "s", "SERVER_PORT": "http"},
		"port range":     {"JWT_SECRET_KEY": "s", "SERVER_PORT": "70000"},
		"bad url":        {"JWT_SECRET_KEY": "s", "BACKEND_URL": "ftp://x"},
		"bad timeout":    {"JWT_SECRET_KEY": "s", "BACKEND_TIMEOUT": "soon"},
		"negative ttl":   {"JWT_SECRET_KEY": "s", "SESSION_TTL": "-1h"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			require.Error(t, err)
		})
	}
}
