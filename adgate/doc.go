// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package adgate puts a sponsored interstitial in front of every state change.

	ticket, err := gate.Queue(session, models.ActionVote, func() (*models.Issue, error) {
		issue, err := store.RecordVote(id, choice)
		return &issue, err
	})
	// err is ErrAdOpen while the session still has an ad up
	// ... client shows the ad, polls gate.Status(ticket.ID) for the countdown
	kind, issue, err := gate.Close(ticket.ID)

The countdown starts at the gate duration and is rounded up to whole
seconds. The button reads "Skip" until it reaches zero and "Close" after.
Either way, closing the ad runs the queued action exactly once.

Each session has at most one open ad. Ads left open longer than the TTL
(DefaultTTL unless WithTTL says otherwise) are dropped without running
their action, either lazily on the next lookup or by Sweep, which Run
calls on a ticker.
*/
package adgate
