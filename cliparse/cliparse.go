// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Datastore types accepted by -t / DATABASE_TYPE
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseSupabase = "supabase"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SupabaseKey   string
	FirebaseKey   string
	PhoneHashSalt string
	AdDuration    time.Duration
	IssuesFile    string
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Missing .env is the normal case in production
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("we-the-people", pflag.ContinueOnError)

	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Datastore URL (optional; votes are mirrored when set)")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Datastore type (sqlite, postgres or supabase)")
	fs.StringVar(&cfg.SupabaseKey, "supabase-key", "", "Supabase anon key (prefer env)")
	fs.StringVar(&cfg.FirebaseKey, "firebase-key", "", "Firebase web API key (prefer env)")
	fs.StringVar(&cfg.PhoneHashSalt, "phone-salt", "", "Phone hash salt (prefer env)")
	fs.DurationVar(&cfg.AdDuration, "ad-duration", 0, "Interstitial countdown before an action runs")
	fs.StringVar(&cfg.IssuesFile, "issues", "", "YAML file with the seed issue list")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = firstEnv("DATABASE_URL", "NEXT_PUBLIC_SUPABASE_URL", "VITE_SUPABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseSupabase:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = firstEnv("SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY")
	}
	if cfg.FirebaseKey == "" {
		cfg.FirebaseKey = firstEnv("FIREBASE_API_KEY", "NEXT_PUBLIC_FIREBASE_API_KEY", "VITE_FIREBASE_API_KEY")
	}

	if fs.Changed("ad-duration") {
		if cfg.AdDuration < 0 {
			return Config{}, errors.New("--ad-duration must not be negative")
		}
	} else {
		if s := os.Getenv("AD_SECONDS"); s != "" {
			secs, err := strconv.Atoi(s)
			if err != nil || secs < 0 {
				return Config{}, errors.New("invalid AD_SECONDS env variable")
			}
			cfg.AdDuration = time.Duration(secs) * time.Second
		} else {
			cfg.AdDuration = 5 * time.Second
		}
	}

	if cfg.IssuesFile == "" {
		cfg.IssuesFile = os.Getenv("ISSUES_FILE")
	}

	// Secrets - MUST be provided
	if cfg.PhoneHashSalt == "" {
		cfg.PhoneHashSalt = os.Getenv("PHONE_HASH_SALT")
	}
	if cfg.PhoneHashSalt == "" {
		return Config{}, errors.New("PHONE_HASH_SALT required")
	}

	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
