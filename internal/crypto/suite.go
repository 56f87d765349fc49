package crypto

import (
	"fmt"
	"strings"

	aessiv "github.com/jedisct1/go-aes-siv"
	"golang.org/x/crypto/chacha20poly1305"
)

// Suite identifies the AEAD construction inside an envelope.
type Suite byte

const (
	SuiteAESSIV            Suite = 1
	SuiteXChaCha20Poly1305 Suite = 2
)

const tagBytes = 16

// aead is the subset of cipher.AEAD both suites provide.
type aead interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

// String returns the suite's command-line name.
func (s Suite) String() string {
	switch s {
	case SuiteAESSIV:
		return "aes-siv"
	case SuiteXChaCha20Poly1305:
		return "xchacha20poly1305"
	default:
		return fmt.Sprintf("suite(%d)", byte(s))
	}
}

// ParseSuite maps a command-line name to a Suite. The empty string selects
// SuiteAESSIV.
func ParseSuite(name string) (Suite, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "aes-siv", "aessiv", "siv":
		return SuiteAESSIV, nil
	case "xchacha20poly1305", "xchacha20-poly1305", "xchacha":
		return SuiteXChaCha20Poly1305, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

// nonceSize returns the per-message nonce length stored in the envelope.
func (s Suite) nonceSize() int {
	switch s {
	case SuiteAESSIV:
		return 16
	case SuiteXChaCha20Poly1305:
		return chacha20poly1305.NonceSizeX
	default:
		return 0
	}
}

// Overhead returns the bytes an envelope of this suite adds to a plaintext.
func (s Suite) Overhead() int { return 1 + s.nonceSize() + tagBytes }

// newAEAD builds the suite's cipher from a KeySize-byte key.
func (s Suite) newAEAD(key []byte) (aead, error) {
	switch s {
	case SuiteAESSIV:
		return aessiv.New(key)
	case SuiteXChaCha20Poly1305:
		return chacha20poly1305.NewX(key)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSuite, byte(s))
	}
}
