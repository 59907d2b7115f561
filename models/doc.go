// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SendCodeRequest: phone
  - CompleteVerificationRequest: code
  - VoteRequest: choice (yes, no, unsure)
  - ProposalRequest: title, summary, category

# Response Types

  - CreateSessionResponse: session_token
  - SendCodeResponse: sent, demo_mode
  - VerificationStatus: masked phone and the three verification flags
  - AdTicket: ad_id, countdown seconds and button label
  - CloseAdResponse: the executed action and affected issue
  - TotalsResponse: national totals plus display strings

# Domain Types

Issue is a votable proposition with running tallies:

	type Issue struct {
		ID     string   // slug derived from the title
		Title  string
		Detail string
		Tags   []string
		Stats  Counts   // yes, no, unsure
	}

Counts only ever increase, one counter by one per vote.

# Choices

	ChoiceYes    = "yes"
	ChoiceNo     = "no"
	ChoiceUnsure = "unsure"

Use ValidChoice to check request input.
*/
package models
