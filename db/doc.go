// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the mirror datastore and creates its schema.

# Connecting

	conn, err := db.Open("sqlite", "file:votes.db")
	conn, err := db.Open("postgres", "postgres://...")

Both drivers are registered by this package (lib/pq and modernc.org/sqlite).
Open pings the database before returning.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - votes: one row per recorded vote (issue_id, choice)
  - proposals: one row per submitted proposal (title, summary, category)

The tables are a write-only mirror. Tallies served by the API come from
memory, never from these rows.
*/
package db
