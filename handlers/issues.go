// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/we-the-people/adgate"
	"github.com/danielhkuo/we-the-people/issues"
	"github.com/danielhkuo/we-the-people/middleware"
	"github.com/danielhkuo/we-the-people/models"
	"github.com/danielhkuo/we-the-people/store"
	"github.com/danielhkuo/we-the-people/verify"
)

type IssueHandler struct {
	issues   *issues.Store
	verifier *verify.Service
	gate     *adgate.Gate
	mirror   *store.Async
}

func NewIssueHandler(deps Deps) *IssueHandler {
	return &IssueHandler{
		issues:   deps.Issues,
		verifier: deps.Verifier,
		gate:     deps.Gate,
		mirror:   deps.Mirror,
	}
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.issues.List())
}

// GetIssue handles GET /issues/:id
func (h *IssueHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.issues.Get(r.PathValue("id"))
	if errors.Is(err, issues.ErrIssueNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Issue not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, issue)
}

// Vote handles POST /issues/:id/votes
// The vote is recorded when the returned ad is closed.
func (h *IssueHandler) Vote(w http.ResponseWriter, r *http.Request) {
	issueID := r.PathValue("id")
	if issueID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "issue id is required")
		return
	}

	token, ok := requireVerified(w, r, h.verifier)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidChoice(req.Choice) {
		middleware.ErrorResponse(w, http.StatusBadRequest, issues.ErrInvalidChoice.Error())
		return
	}

	if _, err := h.issues.Get(issueID); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Issue not found")
		return
	}

	choice := req.Choice
	ticket, err := h.gate.Queue(token, models.ActionVote, func() (*models.Issue, error) {
		issue, err := h.issues.RecordVote(issueID, choice)
		if err != nil {
			return nil, err
		}
		h.mirror.SaveVote(issueID, choice)
		slog.Info("vote recorded", "issue_id", issueID, "choice", choice)
		return &issue, nil
	})
	if errors.Is(err, adgate.ErrAdOpen) {
		middleware.ErrorResponse(w, http.StatusConflict, adOpenMessage)
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, ticket)
}

// GetTotals handles GET /totals
func (h *IssueHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals := h.issues.Totals()

	middleware.JSONResponse(w, http.StatusOK, models.TotalsResponse{
		Counts: totals,
		Display: models.DisplayTotals{
			Yes:    humanize.Comma(totals.Yes),
			No:     humanize.Comma(totals.No),
			Unsure: humanize.Comma(totals.Unsure),
		},
	})
}
