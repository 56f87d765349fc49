package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ParseKey returns the key bytes from either a raw string (used byte for
// byte) or a hex string. Exactly one of raw and hexKey may be non-empty.
// Length is checked by NewEnvelope.
func ParseKey(raw, hexKey string) ([]byte, error) {
	switch {
	case raw != "" && hexKey != "":
		return nil, errors.New("use either a raw key or a hex key, not both")
	case hexKey != "":
		b, err := hex.DecodeString(strings.TrimSpace(hexKey))
		if err != nil {
			return nil, fmt.Errorf("decode hex key: %w", err)
		}
		return b, nil
	case raw != "":
		return []byte(raw), nil
	}
	return nil, nil
}

// GenerateKey returns a fresh random KeySize-byte key.
func GenerateKey() ([]byte, error) {
	k := make([]byte, KeySize)
	if _, err := rand.Read(k); err != nil {
		return nil, err
	}
	return k, nil
}
