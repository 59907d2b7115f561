// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"time"

	"github.com/danielhkuo/we-the-people/adgate"
	"github.com/danielhkuo/we-the-people/cliparse"
	"github.com/danielhkuo/we-the-people/issues"
	"github.com/danielhkuo/we-the-people/models"
	"github.com/danielhkuo/we-the-people/store"
	"github.com/danielhkuo/we-the-people/verify"
)

// mirrorTimeout bounds each background datastore write
const mirrorTimeout = 10 * time.Second

// Deps is the shared state handed to every handler
type Deps struct {
	Issues   *issues.Store
	Verifier *verify.Service
	Gate     *adgate.Gate
	Mirror   *store.Async
}

// NewDeps wires the in-memory services for cfg. A nil mirror disables
// datastore writes.
func NewDeps(cfg cliparse.Config, seed []models.Issue, mirror store.Mirror) Deps {
	var provider verify.IdentityProvider = verify.DemoProvider{}
	if cfg.FirebaseKey != "" {
		provider = verify.NewFirebaseProvider(cfg.FirebaseKey)
	}

	return Deps{
		Issues:   issues.NewStore(seed),
		Verifier: verify.NewService(provider, cfg.PhoneHashSalt),
		Gate:     adgate.New(cfg.AdDuration),
		Mirror:   store.NewAsync(mirror, mirrorTimeout),
	}
}
