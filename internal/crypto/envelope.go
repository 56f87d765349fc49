package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"stegano/internal/domain"
	"stegano/internal/util/memzero"
)

// KeySize is the only accepted key length, in bytes.
const KeySize = 32

// Envelope errors.
var (
	ErrInvalidKeyLength = errors.New("invalid key length")
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrUnknownSuite     = errors.New("unknown cipher suite")
)

// Envelope seals payloads under a fixed key with a fresh nonce per message.
type Envelope struct {
	key   [KeySize]byte
	suite Suite
	rand  io.Reader
}

// NewEnvelope validates key and returns an Envelope that seals with suite.
// Open accepts envelopes of any known suite under the same key.
func NewEnvelope(key []byte, suite Suite) (*Envelope, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeyLength, KeySize, len(key))
	}
	if suite.nonceSize() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSuite, byte(suite))
	}
	e := &Envelope{suite: suite, rand: rand.Reader}
	copy(e.key[:], key)
	return e, nil
}

// Suite returns the suite used by Seal.
func (e *Envelope) Suite() Suite { return e.suite }

// Overhead returns the bytes Seal adds to a plaintext.
func (e *Envelope) Overhead() int { return e.suite.Overhead() }

// Seal encrypts plaintext into a self-describing envelope.
func (e *Envelope) Seal(plaintext []byte) ([]byte, error) {
	c, err := e.suite.newAEAD(e.key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	ns := e.suite.nonceSize()
	out := make([]byte, 1+ns, e.suite.Overhead()+len(plaintext))
	out[0] = byte(e.suite)
	nonce := out[1 : 1+ns]
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return nil, fmt.Errorf("%w: nonce: %w", ErrEncryptionFailed, err)
	}
	return c.Seal(out, nonce, plaintext, out[:1]), nil
}

// Open authenticates and decrypts an envelope. No plaintext is returned
// unless the tag verifies.
func (e *Envelope) Open(envelope []byte) ([]byte, error) {
	if len(envelope) < 1 {
		return nil, fmt.Errorf("%w: empty envelope", ErrDecryptionFailed)
	}
	suite := Suite(envelope[0])
	ns := suite.nonceSize()
	if ns == 0 {
		return nil, fmt.Errorf("%w: %w: %d", ErrDecryptionFailed, ErrUnknownSuite, envelope[0])
	}
	if len(envelope) < suite.Overhead() {
		return nil, fmt.Errorf("%w: envelope too short", ErrDecryptionFailed)
	}
	c, err := suite.newAEAD(e.key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	nonce := envelope[1 : 1+ns]
	pt, err := c.Open(nil, nonce, envelope[1+ns:], envelope[:1])
	if err != nil {
		return nil, fmt.Errorf("%w: wrong key or tampered payload", ErrDecryptionFailed)
	}
	return pt, nil
}

// Destroy wipes the key. The Envelope must not be used afterwards.
func (e *Envelope) Destroy() {
	memzero.Zero(e.key[:])
}

var _ domain.Sealer = (*Envelope)(nil)
