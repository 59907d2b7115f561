// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Async fires mirror writes in the background. Callers never see the
// outcome; failures are logged and dropped.
type Async struct {
	mirror  Mirror
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsync(m Mirror, timeout time.Duration) *Async {
	if m == nil {
		m = Nop{}
	}
	return &Async{mirror: m, timeout: timeout}
}

func (a *Async) SaveVote(issueID, choice string) {
	a.spawn("vote", func(ctx context.Context) error {
		return a.mirror.SaveVote(ctx, issueID, choice)
	}, "issue_id", issueID, "choice", choice)
}

func (a *Async) SaveProposal(title, summary, category string) {
	a.spawn("proposal", func(ctx context.Context) error {
		return a.mirror.SaveProposal(ctx, title, summary, category)
	}, "title", title)
}

// Wait blocks until every write in flight has finished
func (a *Async) Wait() {
	a.wg.Wait()
}

func (a *Async) spawn(kind string, write func(ctx context.Context) error, attrs ...any) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := write(ctx); err != nil {
			slog.Warn("mirror write failed", append([]any{"kind", kind, "error", err}, attrs...)...)
		}
	}()
}
