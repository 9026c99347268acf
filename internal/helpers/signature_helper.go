package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"sync"
)

var (
	secretKey []byte
	secretMu  sync.RWMutex
)

func deriveKey(secret string) []byte {
	hash := sha256.Sum256([]byte(secret))
	return hash[:]
}

// SetSecret sets the key cookie payloads are signed with.
func SetSecret(secret string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	secretKey = deriveKey(secret)
}

func key() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	if secretKey == nil {
		return deriveKey("")
	}
	return secretKey
}

func GenerateSignature(payload string) string {
	mac := hmac.New(sha256.New, key())
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Sign returns payload with its signature appended after a dot.
func Sign(payload string) string {
	return payload + "." + GenerateSignature(payload)
}

// Verify splits a value produced by Sign and checks its signature.
func Verify(signed string) (string, bool) {
	i := strings.LastIndexByte(signed, '.')
	if i < 0 {
		return "", false
	}
	payload, sig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(sig), []byte(GenerateSignature(payload))) {
		return "", false
	}
	return payload, true
}
