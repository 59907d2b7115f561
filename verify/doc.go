// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package verify gates voting behind a phone code and a mock ID scan.
//
// A session is verified once its phone has at least 10 digits, the code
// (4+ characters) is accepted by the identity provider and the ID scan
// flag is set. There is no way back to unverified. When the provider
// cannot send a code the session silently falls back to demo mode, which
// accepts any well-formed code.
package verify
