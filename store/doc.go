// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store mirrors votes and proposals to an external datastore.

Mirrors are best effort. The in-memory tallies are the source of truth
for the API, and a failed write never rolls them back.

# Mirrors

  - SQLMirror: postgres or sqlite through database/sql
  - RESTMirror: Supabase REST inserts into the votes and proposals tables
  - Nop: nothing configured

Open selects one from the parsed configuration.

# Fire and Forget

Async wraps a Mirror so handlers never wait on the datastore:

	async := store.NewAsync(mirror, 5*time.Second)
	async.SaveVote(issueID, choice)   // returns immediately
	async.Wait()                      // on shutdown

Each write runs on its own goroutine with a timeout. Errors are logged at
warn level and dropped.
*/
package store
