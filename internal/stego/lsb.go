package stego

import (
	"golang.org/x/sync/errgroup"

	"stegano/internal/domain"
)

const (
	// SchemeLSB names the global-header LSB scheme.
	SchemeLSB = "lsb"

	// Payloads shorter than this are embedded on the calling goroutine.
	parallelMinBytes = 64 << 10
)

// LSB embeds one payload bit per carrier byte behind a 32-bit length header.
// It holds no per-call state and is safe for concurrent use on distinct carriers.
type LSB struct {
	workers int
}

// Option configures an LSB codec.
type Option func(*LSB)

// WithWorkers splits the payload pass of large payloads across n goroutines.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(c *LSB) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// NewLSB returns an LSB codec.
func NewLSB(opts ...Option) *LSB {
	c := &LSB{workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns SchemeLSB.
func (c *LSB) Name() string { return SchemeLSB }

// Capacity returns the largest payload in bytes a carrier of carrierLen bytes holds.
func (c *LSB) Capacity(carrierLen int) int { return MaxPayload(carrierLen) }

// Encode embeds payload into carrier and returns the carrier. On error the
// carrier is untouched.
func (c *LSB) Encode(payload, carrier []byte) ([]byte, error) {
	if err := checkCapacity(len(payload), len(carrier)); err != nil {
		return nil, err
	}
	putHeader(carrier, uint32(len(payload))) // #nosec G115 -- bounded by checkCapacity
	c.each(len(payload), func(lo, hi int) {
		embed(payload[lo:hi], carrier[HeaderBits+lo*8:])
	})
	return carrier, nil
}

// Decode extracts the payload from carrier. It reads exactly
// HeaderBits+8*len bytes and fails on headers the carrier cannot satisfy.
func (c *LSB) Decode(carrier []byte) ([]byte, error) {
	if len(carrier) < HeaderBits {
		return nil, ErrCarrierTooSmall
	}
	n := readHeader(carrier)
	available := availableBits(len(carrier))
	if int64(n)*8 > available {
		return nil, &HeaderError{Length: n, AvailableBits: available}
	}
	out := make([]byte, n)
	c.each(len(out), func(lo, hi int) {
		extract(out[lo:hi], carrier[HeaderBits+lo*8:])
	})
	return out, nil
}

// each calls fn over [0, n) either inline or split into contiguous ranges,
// one per worker. Ranges map to disjoint carrier windows.
func (c *LSB) each(n int, fn func(lo, hi int)) {
	if c.workers <= 1 || n < parallelMinBytes {
		fn(0, n)
		return
	}
	chunk := (n + c.workers - 1) / c.workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// embed writes the bits of payload into the LSBs of body, LSB first.
func embed(payload, body []byte) {
	for i, b := range payload {
		dst := body[i*8 : i*8+8]
		for j := range dst {
			dst[j] = dst[j]&^1 | (b>>j)&1
		}
	}
}

// extract fills out from the LSBs of body, LSB first.
func extract(out, body []byte) {
	for i := range out {
		src := body[i*8 : i*8+8]
		var acc byte
		for j, b := range src {
			acc |= (b & 1) << j
		}
		out[i] = acc
	}
}

var _ domain.Codec = (*LSB)(nil)
