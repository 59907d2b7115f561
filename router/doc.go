// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the We The People API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	deps := handlers.NewDeps(cfg, seed, mirror)
	mux := router.NewRouter(deps)

# Endpoints

Health:

	GET /health

Sessions and verification (X-Session-Token):

	POST /sessions                 - Start a session
	GET  /verification             - Verification status
	POST /verification/send-code   - Send SMS code
	POST /verification/scan-id     - Mock ID scan
	POST /verification/complete    - Check code and finish

Issues:

	GET  /issues            - Issue list, newest proposals first
	GET  /issues/{id}       - One issue
	POST /issues/{id}/votes - Vote (verified; returns an ad)
	GET  /totals            - National totals

Proposals:

	POST /proposals - Submit (verified; returns an ad)

Ads:

	GET  /ads/{id}       - Countdown
	POST /ads/{id}/close - Close or skip; runs the queued action
*/
package router
