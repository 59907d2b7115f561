// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/we-the-people/auth"
	"github.com/danielhkuo/we-the-people/middleware"
	"github.com/danielhkuo/we-the-people/models"
	"github.com/danielhkuo/we-the-people/verify"
)

type VerificationHandler struct {
	verifier *verify.Service
}

func NewVerificationHandler(deps Deps) *VerificationHandler {
	return &VerificationHandler{verifier: deps.Verifier}
}

// CreateSession handles POST /sessions
func (h *VerificationHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	token, err := h.verifier.NewSession()
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionToken: token,
	})
}

// GetStatus handles GET /verification
func (h *VerificationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	status, err := h.verifier.Status(token)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// SendCode handles POST /verification/send-code
func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SendCodeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	demoMode, err := h.verifier.SendCode(r.Context(), token, req.Phone)
	if errors.Is(err, verify.ErrInvalidPhone) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeSessionError(w, err)
		return
	}

	message := "Code sent via SMS."
	if demoMode {
		message = "Code sent via SMS (demo mode). In production, users receive a text."
	}

	middleware.JSONResponse(w, http.StatusOK, models.SendCodeResponse{
		Sent:     true,
		DemoMode: demoMode,
		Message:  message,
	})
}

// ScanID handles POST /verification/scan-id
func (h *VerificationHandler) ScanID(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	status, err := h.verifier.ScanID(token)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// Complete handles POST /verification/complete
// Returns the session status; verified stays false until every step passes.
func (h *VerificationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CompleteVerificationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	status, err := h.verifier.Complete(r.Context(), token, req.Code)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// sessionFromRequest reads and shape-checks X-Session-Token, writing a
// 401 when it is missing or malformed.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := middleware.SessionToken(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return "", false
	}
	if err := auth.ValidateSessionToken(token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return "", false
	}
	return token, true
}

// requireVerified is sessionFromRequest plus a 403 for unverified sessions
func requireVerified(w http.ResponseWriter, r *http.Request, verifier *verify.Service) (string, bool) {
	token, ok := sessionFromRequest(w, r)
	if !ok {
		return "", false
	}

	status, err := verifier.Status(token)
	if err != nil {
		writeSessionError(w, err)
		return "", false
	}
	if !status.Verified {
		middleware.ErrorResponse(w, http.StatusForbidden, "Complete verification to continue")
		return "", false
	}
	return token, true
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, verify.ErrUnknownSession) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown session")
		return
	}
	slog.Error("verification failed", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Verification error")
}
