// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the We The People API server.

We The People is a civic voting demo. Citizens verify with a phone code
and an ID scan, vote yes, no or unsure on national issues, watch the
running totals and submit their own proposals. Every vote and proposal
waits behind a short sponsored interstitial.

# Starting the Server

	PHONE_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 --phone-salt ... -t sqlite -d votes.db

# Configuration

Required settings:

  - PHONE_HASH_SALT (--phone-salt): Secret for phone number hashing

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Datastore that mirrors votes
  - SUPABASE_ANON_KEY: Key for the supabase datastore type
  - FIREBASE_API_KEY: Real SMS codes (demo mode without it)
  - AD_SECONDS (--ad-duration): Interstitial countdown
  - ISSUES_FILE (--issues): YAML seed issue list

# Architecture

  - handlers: HTTP request handlers (verification, issues, proposals, ads)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - issues: In-memory issue list and tallies
  - verify: Phone code and ID scan gate
  - adgate: Interstitial countdown in front of every change
  - store: Best-effort datastore mirror
  - db: Datastore connection and schema
  - auth: Tokens and phone hashing
  - cliparse: Configuration parsing

Tallies live in memory. The datastore only receives copies; a failed copy
is logged and never undoes a vote.
*/
package main
