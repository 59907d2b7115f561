// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package adgate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/we-the-people/models"
)

var (
	ErrNotFound = errors.New("ad not found or already closed")
	ErrAdOpen   = errors.New("session already has an open ad")
)

// DefaultTTL is how long an ad may stay open before it is dropped along
// with its action.
const DefaultTTL = 10 * time.Minute

// Action runs once when its ad is closed. The returned issue, if any, is
// reported back to the client.
type Action func() (*models.Issue, error)

// Button labels
const (
	ButtonSkip  = "Skip"
	ButtonClose = "Close"
)

type pending struct {
	kind    string
	session string
	shownAt time.Time
	run     Action
}

// Gate holds actions behind an interstitial until the client closes it.
// A session has at most one open ad.
type Gate struct {
	duration time.Duration
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	pending   map[string]*pending
	bySession map[string]string // session -> open ad id
}

func New(duration time.Duration) *Gate {
	return &Gate{
		duration:  duration,
		ttl:       DefaultTTL,
		now:       time.Now,
		pending:   make(map[string]*pending),
		bySession: make(map[string]string),
	}
}

// WithClock replaces the time source. Tests use it to step the countdown.
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// WithTTL sets how long an unclosed ad survives
func (g *Gate) WithTTL(ttl time.Duration) *Gate {
	g.ttl = ttl
	return g
}

// Queue shows an ad and parks the action behind it. It fails with
// ErrAdOpen while the session still has an unexpired ad open.
func (g *Gate) Queue(session, kind string, run Action) (models.AdTicket, error) {
	id := uuid.NewString()
	p := &pending{kind: kind, session: session, shownAt: g.now(), run: run}

	g.mu.Lock()
	defer g.mu.Unlock()

	if openID, ok := g.bySession[session]; ok {
		if !g.expired(g.pending[openID]) {
			return models.AdTicket{}, ErrAdOpen
		}
		g.removeLocked(openID)
	}

	g.pending[id] = p
	g.bySession[session] = id
	return g.ticket(id, p), nil
}

// Status reports the countdown for an open ad
func (g *Gate) Status(id string) (models.AdTicket, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.lookupLocked(id)
	if err != nil {
		return models.AdTicket{}, err
	}
	return g.ticket(id, p), nil
}

// Close dismisses the ad and runs its action. Closing during the
// countdown is a skip and still runs the action.
func (g *Gate) Close(id string) (string, *models.Issue, error) {
	g.mu.Lock()
	p, err := g.lookupLocked(id)
	if err == nil {
		g.removeLocked(id)
	}
	g.mu.Unlock()

	if err != nil {
		return "", nil, err
	}

	issue, err := p.run()
	return p.kind, issue, err
}

// Sweep drops every expired ad without running its action and returns
// how many were dropped.
func (g *Gate) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for id, p := range g.pending {
		if g.expired(p) {
			g.removeLocked(id)
			n++
		}
	}
	return n
}

// Run sweeps expired ads every interval until ctx is done
func (g *Gate) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := g.Sweep(); n > 0 {
				slog.Info("dropped abandoned ads", "count", n)
			}
		}
	}
}

// lookupLocked finds an open ad, treating an expired one as gone
func (g *Gate) lookupLocked(id string) (*pending, error) {
	p, ok := g.pending[id]
	if !ok {
		return nil, ErrNotFound
	}
	if g.expired(p) {
		g.removeLocked(id)
		return nil, ErrNotFound
	}
	return p, nil
}

func (g *Gate) removeLocked(id string) {
	p, ok := g.pending[id]
	if !ok {
		return
	}
	delete(g.pending, id)
	if g.bySession[p.session] == id {
		delete(g.bySession, p.session)
	}
}

func (g *Gate) expired(p *pending) bool {
	return p == nil || (g.ttl > 0 && g.now().Sub(p.shownAt) >= g.ttl)
}

func (g *Gate) ticket(id string, p *pending) models.AdTicket {
	remaining := g.duration - g.now().Sub(p.shownAt)
	if remaining < 0 {
		remaining = 0
	}
	secs := int((remaining + time.Second - 1) / time.Second)

	button := ButtonSkip
	if secs == 0 {
		button = ButtonClose
	}
	return models.AdTicket{ID: id, Action: p.kind, Seconds: secs, Button: button}
}
