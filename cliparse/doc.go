// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded before flags are read.
Values already present in the environment win over the file.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Datastore to mirror votes into (optional)
  - DatabaseType: sqlite, postgres or supabase (default: sqlite)
  - SupabaseKey: anon key for the supabase datastore
  - FirebaseKey: web API key for SMS verification (demo mode when empty)
  - PhoneHashSalt: Secret for phone number HMAC (required)
  - AdDuration: interstitial countdown (default: 5s)
  - IssuesFile: YAML seed issue list (built-in list when empty)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Datastore URL
	-t, --database-type  Datastore type
	--supabase-key       Supabase anon key
	--firebase-key       Firebase API key
	--phone-salt         Phone hash salt
	--ad-duration        Interstitial countdown (e.g. 5s)
	--issues             Seed issue file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SUPABASE_ANON_KEY → --supabase-key
	FIREBASE_API_KEY  → --firebase-key
	PHONE_HASH_SALT   → --phone-salt
	AD_SECONDS        → --ad-duration
	ISSUES_FILE       → --issues

The NEXT_PUBLIC_ and VITE_ prefixed Supabase and Firebase variables used
by the web front end are accepted as well.

CLI flags take precedence over environment variables.
*/
package cliparse
