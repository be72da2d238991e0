package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// An empty value falls through to the default, so clearing this way keeps
	// the test independent of the host environment.
	for _, key := range []string{"PORT", "DB_HOST", "TOKEN_TTL_MINUTES", "REDIS_ADDR", "ADMIN_USERNAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost: got %q, want %q", cfg.DBHost, "localhost")
	}
	if cfg.TokenTTL != 60*time.Minute {
		t.Errorf("TokenTTL: got %v, want %v", cfg.TokenTTL, 60*time.Minute)
	}
	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("RedisAddr: got %q, want %q", cfg.RedisAddr, "127.0.0.1:6379")
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername: got %q, want %q", cfg.AdminUsername, "admin")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "campusrent_test")
	t.Setenv("REDIS_PASSWORD", "hunter2")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "9090")
	}
	if cfg.DBName != "campusrent_test" {
		t.Errorf("DBName: got %q, want %q", cfg.DBName, "campusrent_test")
	}
	if cfg.RedisPassword != "hunter2" {
		t.Errorf("RedisPassword: got %q, want %q", cfg.RedisPassword, "hunter2")
	}
}

func TestTokenTTL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "unset", value: "", want: 60 * time.Minute},
		{name: "custom", value: "15", want: 15 * time.Minute},
		{name: "garbage", value: "soon", want: 60 * time.Minute},
		{name: "negative", value: "-5", want: 60 * time.Minute},
		{name: "zero", value: "0", want: 60 * time.Minute},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("TOKEN_TTL_MINUTES", test.value)
			if got := Load().TokenTTL; got != test.want {
				t.Errorf("TokenTTL: got %v, want %v", got, test.want)
			}
		})
	}
}
