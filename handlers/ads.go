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
)

// adOpenMessage is returned when a session tries to queue a second ad
const adOpenMessage = "Close the open ad first"

type AdHandler struct {
	gate *adgate.Gate
}

func NewAdHandler(deps Deps) *AdHandler {
	return &AdHandler{gate: deps.Gate}
}

// GetAd handles GET /ads/:id
// Returns the countdown and button label
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.gate.Status(r.PathValue("id"))
	if errors.Is(err, adgate.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Ad not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ticket)
}

// CloseAd handles POST /ads/:id/close
// Closing (or skipping) the ad runs the action queued behind it.
func (h *AdHandler) CloseAd(w http.ResponseWriter, r *http.Request) {
	adID := r.PathValue("id")
	if adID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ad id is required")
		return
	}

	kind, issue, err := h.gate.Close(adID)
	switch {
	case errors.Is(err, adgate.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Ad not found")
		return
	case errors.Is(err, issues.ErrIssueNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Issue not found")
		return
	case errors.Is(err, issues.ErrInvalidChoice), errors.Is(err, issues.ErrEmptyProposal):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("gated action failed", "ad_id", adID, "action", kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Action failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CloseAdResponse{
		Action: kind,
		Issue:  issue,
	})
}
