// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/we-the-people/issues"
	"github.com/danielhkuo/we-the-people/models"
	"github.com/danielhkuo/we-the-people/store"
	"github.com/danielhkuo/we-the-people/testutil"
)

// setupDeps builds handler dependencies with the built-in seed, demo SMS
// and the given mirror (nil for none).
func setupDeps(t *testing.T, mirror store.Mirror) Deps {
	t.Helper()
	return NewDeps(testutil.GetTestConfig(), issues.DefaultSeed(), mirror)
}

// verifiedSession walks a session through phone, code and ID scan
func verifiedSession(t *testing.T, deps Deps) string {
	t.Helper()
	ctx := context.Background()

	token, err := deps.Verifier.NewSession()
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := deps.Verifier.SendCode(ctx, token, "(555) 123-4567"); err != nil {
		t.Fatalf("Failed to send code: %v", err)
	}
	if _, err := deps.Verifier.ScanID(token); err != nil {
		t.Fatalf("Failed to scan ID: %v", err)
	}
	status, err := deps.Verifier.Complete(ctx, token, "1234")
	if err != nil || !status.Verified {
		t.Fatalf("Failed to verify session: %+v %v", status, err)
	}
	return token
}

// unverifiedSession returns a fresh session token
func unverifiedSession(t *testing.T, deps Deps) string {
	t.Helper()
	token, err := deps.Verifier.NewSession()
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return token
}

// castVote posts a vote and returns the recorder
func castVote(t *testing.T, deps Deps, token, issueID, choice string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/issues/"+issueID+"/votes", models.VoteRequest{Choice: choice}, testutil.SessionHeader(token))
	req.SetPathValue("id", issueID)
	w := httptest.NewRecorder()
	NewIssueHandler(deps).Vote(w, req)
	return w
}

// closeAd closes an ad and returns the recorder
func closeAd(t *testing.T, deps Deps, adID string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/ads/"+adID+"/close", nil, nil)
	req.SetPathValue("id", adID)
	w := httptest.NewRecorder()
	NewAdHandler(deps).CloseAd(w, req)
	return w
}

// voteThroughAd casts a vote and closes its ad, failing on any non-success
func voteThroughAd(t *testing.T, deps Deps, token, issueID, choice string) models.Issue {
	t.Helper()

	w := castVote(t, deps, token, issueID, choice)
	testutil.AssertStatus(t, w, http.StatusAccepted)
	var ticket models.AdTicket
	testutil.AssertJSON(t, w, &ticket)

	w = closeAd(t, deps, ticket.ID)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.CloseAdResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Issue == nil {
		t.Fatal("Expected issue in close response")
	}
	return *resp.Issue
}

// decode is AssertJSON for goroutines, where t.Fatal is off limits
func decode(body []byte, v interface{}) error {
	return json.Unmarshal(body, v)
}
