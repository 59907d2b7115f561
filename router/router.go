// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/we-the-people/handlers"
	"github.com/danielhkuo/we-the-people/middleware"
)

func NewRouter(deps handlers.Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	verificationHandler := handlers.NewVerificationHandler(deps)
	issueHandler := handlers.NewIssueHandler(deps)
	proposalHandler := handlers.NewProposalHandler(deps)
	adHandler := handlers.NewAdHandler(deps)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions and verification
	mux.HandleFunc("POST /sessions", middleware.WithLogging(verificationHandler.CreateSession))
	mux.HandleFunc("GET /verification", middleware.WithLogging(verificationHandler.GetStatus))
	mux.HandleFunc("POST /verification/send-code", middleware.WithLogging(verificationHandler.SendCode))
	mux.HandleFunc("POST /verification/scan-id", middleware.WithLogging(verificationHandler.ScanID))
	mux.HandleFunc("POST /verification/complete", middleware.WithLogging(verificationHandler.Complete))

	// Issues and totals (public reads, verified votes)
	mux.HandleFunc("GET /issues", middleware.WithLogging(issueHandler.ListIssues))
	mux.HandleFunc("GET /issues/{id}", middleware.WithLogging(issueHandler.GetIssue))
	mux.HandleFunc("POST /issues/{id}/votes", middleware.WithLogging(issueHandler.Vote))
	mux.HandleFunc("GET /totals", middleware.WithLogging(issueHandler.GetTotals))

	// Proposals (verified)
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.SubmitProposal))

	// Ad interstitials
	mux.HandleFunc("GET /ads/{id}", middleware.WithLogging(adHandler.GetAd))
	mux.HandleFunc("POST /ads/{id}/close", middleware.WithLogging(adHandler.CloseAd))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("we-the-people API v1"))
	})

	return mux
}
