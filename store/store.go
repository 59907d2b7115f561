// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/we-the-people/auth"
)

// Mirror copies votes and proposals to a datastore
type Mirror interface {
	SaveVote(ctx context.Context, issueID, choice string) error
	SaveProposal(ctx context.Context, title, summary, category string) error
}

// Nop is used when no datastore is configured
type Nop struct{}

func (Nop) SaveVote(ctx context.Context, issueID, choice string) error { return nil }

func (Nop) SaveProposal(ctx context.Context, title, summary, category string) error { return nil }

// SQLMirror writes rows through database/sql (postgres or sqlite)
type SQLMirror struct {
	db *sql.DB
}

func NewSQLMirror(db *sql.DB) *SQLMirror {
	return &SQLMirror{db: db}
}

func (m *SQLMirror) SaveVote(ctx context.Context, issueID, choice string) error {
	id, err := auth.GenerateID(16)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO votes (id, issue_id, choice, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, issueID, choice, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (m *SQLMirror) SaveProposal(ctx context.Context, title, summary, category string) error {
	id, err := auth.GenerateID(16)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO proposals (id, title, summary, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, title, summary, category, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert proposal: %w", err)
	}
	return nil
}
