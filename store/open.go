// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"log/slog"

	"github.com/danielhkuo/we-the-people/cliparse"
	"github.com/danielhkuo/we-the-people/db"
)

// Open picks the mirror for cfg. With no datastore URL the mirror is Nop.
// The returned close func is never nil.
func Open(cfg cliparse.Config) (Mirror, func() error, error) {
	noClose := func() error { return nil }

	if cfg.DatabaseURL == "" {
		slog.Info("no datastore configured, votes stay in memory")
		return Nop{}, noClose, nil
	}

	switch cfg.DatabaseType {
	case cliparse.DatabaseSupabase:
		if cfg.SupabaseKey == "" {
			return nil, noClose, errors.New("supabase datastore requires SUPABASE_ANON_KEY")
		}
		return NewRESTMirror(cfg.DatabaseURL, cfg.SupabaseKey), noClose, nil

	default:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, noClose, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, noClose, err
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return NewSQLMirror(conn), conn.Close, nil
	}
}
