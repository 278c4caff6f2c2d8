package api_keys

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	TokenPrefix = "sk_live_"
	TokenLength = 32
)

// KeyGenerator mints raw API keys and derives their stored hashes. Hashes
// are keyed with a server-side secret so a leaked database alone cannot be
// used to forge or verify keys.
type KeyGenerator struct {
	hashSecret string
}

func NewKeyGenerator(hashSecret string) *KeyGenerator {
	return &KeyGenerator{hashSecret: hashSecret}
}

func (g *KeyGenerator) GenerateToken() (string, error) {
	randomBytes := make([]byte, TokenLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	suffix := base64.RawURLEncoding.EncodeToString(randomBytes)[:TokenLength]

	return TokenPrefix + suffix, nil
}

func (g *KeyGenerator) HashToken(token string) string {
	mac := hmac.New(sha256.New, []byte(g.hashSecret))
	mac.Write([]byte(token))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
