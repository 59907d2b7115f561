// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package issues holds the in-memory issue list and its tallies.

	store := issues.NewStore(issues.DefaultSeed())
	issue, err := store.RecordVote("federal-term-limits", models.ChoiceYes)

RecordVote changes exactly one counter by one. Propose trims the draft,
rejects empty titles or summaries, and prepends a zero-count issue whose
ID is the title's slug (made unique with a numeric suffix). Totals is
recomputed from the list on every call.

Issues are never removed. The store is safe for concurrent use.
*/
package issues
