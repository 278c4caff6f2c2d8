package api_keys

import "errors"

var (
	ErrMissingKey  = errors.New("API key is required")
	ErrInvalidKey  = errors.New("Invalid API key")
	ErrKeyRevoked  = errors.New("API key has been revoked")
	ErrKeyInactive = errors.New("API key is not active")
	ErrKeyExpired  = errors.New("API key has expired")
	ErrKeyNotFound = errors.New("API key not found")
	ErrUnavailable = errors.New("key store unavailable")
)
