// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and phone privacy helpers.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded and sent back in the X-Session-Token
header. ValidateSessionToken rejects malformed tokens before lookup.

# ID Generation

Random hex IDs for mirrored records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Phone Hashing

Phone numbers are reduced to their digits and hashed:

	hash := auth.HashPhone(phone, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. MaskPhone keeps the
last two digits for status responses.
*/
package auth
