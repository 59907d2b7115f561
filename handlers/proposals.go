// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/we-the-people/adgate"
	"github.com/danielhkuo/we-the-people/issues"
	"github.com/danielhkuo/we-the-people/middleware"
	"github.com/danielhkuo/we-the-people/models"
	"github.com/danielhkuo/we-the-people/store"
	"github.com/danielhkuo/we-the-people/verify"
)

type ProposalHandler struct {
	issues   *issues.Store
	verifier *verify.Service
	gate     *adgate.Gate
	mirror   *store.Async
}

func NewProposalHandler(deps Deps) *ProposalHandler {
	return &ProposalHandler{
		issues:   deps.Issues,
		verifier: deps.Verifier,
		gate:     deps.Gate,
		mirror:   deps.Mirror,
	}
}

// SubmitProposal handles POST /proposals
// Refused with 409 while the session has another ad open.
func (h *ProposalHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	token, ok := requireVerified(w, r, h.verifier)
	if !ok {
		return
	}

	var req models.ProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	draft, err := issues.NormalizeProposal(models.Proposal{
		Title:    req.Title,
		Summary:  req.Summary,
		Category: req.Category,
	})
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.gate.Queue(token, models.ActionProposal, func() (*models.Issue, error) {
		issue, err := h.issues.Propose(draft)
		if err != nil {
			return nil, err
		}
		h.mirror.SaveProposal(issue.Title, issue.Detail, draft.Category)
		slog.Info("proposal submitted", "issue_id", issue.ID, "category", draft.Category)
		return &issue, nil
	})
	if errors.Is(err, adgate.ErrAdOpen) {
		middleware.ErrorResponse(w, http.StatusConflict, adOpenMessage)
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, ticket)
}
