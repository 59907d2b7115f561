// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PHONE_HASH_SALT", "test-salt")
	t.Setenv("AD_SECONDS", "3")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.AdDuration != 3*time.Second {
		t.Errorf("expected 3s ad duration, got %v", cfg.AdDuration)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "--phone-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected database url from flag, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PHONE_HASH_SALT", "test-salt")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.AdDuration != 5*time.Second {
		t.Errorf("expected default 5s ad duration, got %v", cfg.AdDuration)
	}
}

func TestParseFlags_ViteFallbacks(t *testing.T) {
	t.Setenv("PHONE_HASH_SALT", "test-salt")
	t.Setenv("VITE_SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "anon")
	t.Setenv("NEXT_PUBLIC_FIREBASE_API_KEY", "fb")

	cfg, err := ParseFlags([]string{"-t", "supabase"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "https://example.supabase.co" {
		t.Errorf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.SupabaseKey != "anon" || cfg.FirebaseKey != "fb" {
		t.Errorf("expected prefixed env fallbacks, got %q/%q", cfg.SupabaseKey, cfg.FirebaseKey)
	}
}

func TestParseFlags_AdDurationZero(t *testing.T) {
	t.Setenv("PHONE_HASH_SALT", "test-salt")
	t.Setenv("AD_SECONDS", "7")

	tests := []struct {
		name string
		args []string
		want time.Duration
	}{
		{"explicit zero flag disables countdown", []string{"--ad-duration=0"}, 0},
		{"explicit flag beats env", []string{"--ad-duration=2s"}, 2 * time.Second},
		{"unset flag uses env", nil, 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.AdDuration != tt.want {
				t.Errorf("expected %v, got %v", tt.want, cfg.AdDuration)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", nil, nil},
		{"bad port", map[string]string{"PHONE_HASH_SALT": "s", "PORT": "abc"}, nil},
		{"bad ad seconds", map[string]string{"PHONE_HASH_SALT": "s", "AD_SECONDS": "-1"}, nil},
		{"negative ad duration flag", map[string]string{"PHONE_HASH_SALT": "s"}, []string{"--ad-duration=-1s"}},
		{"bad database type", map[string]string{"PHONE_HASH_SALT": "s"}, []string{"-t", "mongo"}},
		{"unknown flag", map[string]string{"PHONE_HASH_SALT": "s"}, []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PHONE_HASH_SALT", "")
			t.Setenv("PORT", "")
			t.Setenv("AD_SECONDS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
