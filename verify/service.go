// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package verify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/danielhkuo/we-the-people/auth"
	"github.com/danielhkuo/we-the-people/models"
)

var (
	ErrUnknownSession = errors.New("unknown session")
	ErrInvalidPhone   = errors.New("phone number must have at least 10 digits")
)

type session struct {
	phoneHash   string
	phoneMasked string
	phoneOK     bool
	confirm     Confirmation
	idScanned   bool
	verified    bool
}

func (s *session) status() models.VerificationStatus {
	return models.VerificationStatus{
		Phone:     s.phoneMasked,
		PhoneOK:   s.phoneOK,
		CodeSent:  s.confirm != nil,
		IDScanned: s.idScanned,
		Verified:  s.verified,
	}
}

// Service tracks verification state per session
type Service struct {
	provider IdentityProvider
	salt     string

	mu       sync.Mutex
	sessions map[string]*session
}

func NewService(provider IdentityProvider, phoneSalt string) *Service {
	if provider == nil {
		provider = DemoProvider{}
	}
	return &Service{
		provider: provider,
		salt:     phoneSalt,
		sessions: make(map[string]*session),
	}
}

// NewSession starts an unverified session and returns its token
func (s *Service) NewSession() (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = &session{}
	s.mu.Unlock()

	return token, nil
}

func (s *Service) Status(token string) (models.VerificationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return models.VerificationStatus{}, ErrUnknownSession
	}
	return sess.status(), nil
}

func (s *Service) IsVerified(token string) bool {
	st, err := s.Status(token)
	return err == nil && st.Verified
}

// SendCode asks the provider for an SMS code. When the provider fails the
// session falls back to demo confirmation and demoMode is true. A rejected
// phone clears the earlier one, so phone_ok tracks the latest input until
// the session is verified.
func (s *Service) SendCode(ctx context.Context, token, phone string) (demoMode bool, err error) {
	if !PhoneOK(phone) {
		return false, s.rejectPhone(token)
	}
	if _, err := s.Status(token); err != nil {
		return false, err
	}

	_, demoMode = s.provider.(DemoProvider)
	conf, err := s.provider.SendCode(ctx, phone)
	if err != nil {
		slog.Warn("sms send failed, using demo mode", "error", err)
		conf = demoConfirmation{}
		demoMode = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return false, ErrUnknownSession
	}
	if sess.verified {
		return demoMode, nil
	}
	sess.phoneHash = auth.HashPhone(phone, s.salt)
	sess.phoneMasked = auth.MaskPhone(phone)
	sess.phoneOK = true
	sess.confirm = conf

	return demoMode, nil
}

func (s *Service) rejectPhone(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrUnknownSession
	}
	if !sess.verified {
		sess.phoneHash = ""
		sess.phoneMasked = ""
		sess.phoneOK = false
		sess.confirm = nil
	}
	return ErrInvalidPhone
}

// ScanID records the mock ID barcode scan
func (s *Service) ScanID(token string) (models.VerificationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return models.VerificationStatus{}, ErrUnknownSession
	}
	sess.idScanned = true
	return sess.status(), nil
}

// Complete checks the code and flips the session to verified when the
// phone, the code and the ID scan all pass. Verified sessions stay
// verified.
func (s *Service) Complete(ctx context.Context, token, code string) (models.VerificationStatus, error) {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		return models.VerificationStatus{}, ErrUnknownSession
	}
	if sess.verified || !sess.phoneOK || !sess.idScanned || !CodeOK(code) {
		st := sess.status()
		s.mu.Unlock()
		return st, nil
	}
	conf := sess.confirm
	s.mu.Unlock()

	accepted := CodeOK(code)
	if conf != nil {
		var err error
		accepted, err = conf.Confirm(ctx, code)
		if err != nil {
			slog.Warn("code confirmation failed", "error", err)
			accepted = false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if Completed(sess.phoneOK, accepted, sess.idScanned) {
		if !sess.verified {
			slog.Info("session verified", "phone_hash", sess.phoneHash)
		}
		sess.verified = true
	}
	return sess.status(), nil
}
