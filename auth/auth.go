// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid token format")

// sessionTokenLen is the encoded length of a 24-byte token without padding
const sessionTokenLen = 32

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken creates a random secure token for a browser session.
// The token carries the session's verification state on the server.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateSessionToken checks the token shape before any lookup
func ValidateSessionToken(token string) error {
	if len(token) != sessionTokenLen {
		return ErrInvalidToken
	}
	if _, err := base64.RawURLEncoding.DecodeString(token); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// HashPhone creates a one-way hash of a phone number's digits.
// Only the hash is kept; the number itself is never stored.
func HashPhone(phone, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(Digits(phone)))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

// Digits strips everything but 0-9 from s
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhone keeps the last two digits for display, e.g. "••••••••42"
func MaskPhone(phone string) string {
	d := Digits(phone)
	if len(d) <= 2 {
		return d
	}
	return strings.Repeat("•", len(d)-2) + d[len(d)-2:]
}
