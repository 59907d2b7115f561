// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// IdentityProvider sends one-time codes by SMS
type IdentityProvider interface {
	SendCode(ctx context.Context, phone string) (Confirmation, error)
}

// Confirmation is the handle returned by SendCode
type Confirmation interface {
	Confirm(ctx context.Context, code string) (bool, error)
}

// PhoneOK reports whether phone has at least 10 digits
func PhoneOK(phone string) bool {
	n := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n >= 10
}

// CodeOK reports whether the trimmed code has at least 4 characters
func CodeOK(code string) bool {
	return len(strings.TrimSpace(code)) >= 4
}

// Completed is the verification predicate
func Completed(phoneOK, codeAccepted, idScanned bool) bool {
	return phoneOK && codeAccepted && idScanned
}

// DemoProvider never sends anything and accepts any well-formed code
type DemoProvider struct{}

func (DemoProvider) SendCode(ctx context.Context, phone string) (Confirmation, error) {
	return demoConfirmation{}, nil
}

type demoConfirmation struct{}

func (demoConfirmation) Confirm(ctx context.Context, code string) (bool, error) {
	return CodeOK(code), nil
}

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider talks to the Identity Toolkit REST API
type FirebaseProvider struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewFirebaseProvider(apiKey string) *FirebaseProvider {
	return &FirebaseProvider{
		APIKey:  apiKey,
		BaseURL: identityToolkitURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type sendCodeResponse struct {
	SessionInfo string `json:"sessionInfo"`
}

type signInRequest struct {
	SessionInfo string `json:"sessionInfo"`
	Code        string `json:"code"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

func (p *FirebaseProvider) SendCode(ctx context.Context, phone string) (Confirmation, error) {
	var resp sendCodeResponse
	if err := p.post(ctx, "accounts:sendVerificationCode", sendCodeRequest{PhoneNumber: phone}, &resp); err != nil {
		return nil, err
	}
	if resp.SessionInfo == "" {
		return nil, errors.New("identity provider returned no session")
	}
	return &firebaseConfirmation{provider: p, sessionInfo: resp.SessionInfo}, nil
}

type firebaseConfirmation struct {
	provider    *FirebaseProvider
	sessionInfo string
}

func (c *firebaseConfirmation) Confirm(ctx context.Context, code string) (bool, error) {
	var resp signInResponse
	req := signInRequest{SessionInfo: c.sessionInfo, Code: strings.TrimSpace(code)}
	if err := c.provider.post(ctx, "accounts:signInWithPhoneNumber", req, &resp); err != nil {
		return false, err
	}
	return resp.LocalID != "" || resp.IDToken != "", nil
}

func (p *FirebaseProvider) post(ctx context.Context, method string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	// Key goes in a header, never the URL
	url := p.BaseURL + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", method, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	return nil
}
