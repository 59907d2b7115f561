// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the we-the-people API.

# Handler Types

Each handler is a struct built from the shared Deps:

  - VerificationHandler: Sessions and the phone/code/ID-scan checklist
  - IssueHandler: Issue listing, votes and national totals
  - ProposalHandler: New issue proposals
  - AdHandler: Ad countdown and close

Deps is created once at startup:

	deps := handlers.NewDeps(cfg, seed, mirror)
	issueHandler := handlers.NewIssueHandler(deps)

# Verification

Every client starts with a session:

	POST /sessions                 → CreateSession (returns session_token)
	POST /verification/send-code   → SendCode (demo mode if SMS fails)
	POST /verification/scan-id     → ScanID
	POST /verification/complete    → Complete
	GET  /verification             → GetStatus

Session operations require the X-Session-Token header. Once verified a
session stays verified.

# Ad Gate

Votes and proposals are not applied when submitted. They return 202 with
an ad ticket and run when the ad is closed:

	POST /issues/{id}/votes  → Vote (202, ad ticket)
	POST /proposals          → SubmitProposal (202, ad ticket)
	GET  /ads/{id}           → GetAd (seconds left, Skip or Close)
	POST /ads/{id}/close     → CloseAd (runs the action)

Closing during the countdown counts as a skip and still runs the action.
A session has one ad at a time: a vote or proposal submitted while its ad
is still open gets 409. Ads never closed expire and their action is
dropped.

# Mirroring

After an action runs, the vote or proposal is copied to the configured
datastore in the background. Mirror failures are logged and never undo
the in-memory change.
*/
package handlers
