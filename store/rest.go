// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RESTMirror inserts rows through a Supabase (PostgREST) endpoint
type RESTMirror struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTMirror(baseURL, apiKey string) *RESTMirror {
	return &RESTMirror{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type voteRow struct {
	IssueID string `json:"issue_id"`
	Choice  string `json:"choice"`
}

type proposalRow struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

func (m *RESTMirror) SaveVote(ctx context.Context, issueID, choice string) error {
	return m.insert(ctx, "votes", voteRow{IssueID: issueID, Choice: choice})
}

func (m *RESTMirror) SaveProposal(ctx context.Context, title, summary, category string) error {
	return m.insert(ctx, "proposals", proposalRow{Title: title, Summary: summary, Category: category})
}

func (m *RESTMirror) insert(ctx context.Context, table string, row interface{}) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode %s row: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/rest/v1/"+table, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	req.Header.Set("apikey", m.apiKey)
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("insert into %s: status %d: %s", table, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
