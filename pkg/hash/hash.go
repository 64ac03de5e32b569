package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a secret into a stable, non-reversible fingerprint.
type Hasher interface {
	Hash(value string) (string, error)
}

// SHA256Hasher uses SHA256 over the provided salt followed by the value.
type SHA256Hasher struct {
	salt string
}

func NewSHA256Hasher(salt string) *SHA256Hasher {
	return &SHA256Hasher{salt: salt}
}

func (h *SHA256Hasher) Hash(value string) (string, error) {
	hash := sha256.New()

	if _, err := hash.Write([]byte(h.salt)); err != nil {
		return "", err
	}
	if _, err := hash.Write([]byte(value)); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
