package stego

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrCapacityExceeded indicates the payload does not fit in the carrier.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrPayloadTooLarge indicates the payload length does not fit in the 32-bit header.
	ErrPayloadTooLarge = errors.New("payload too large for length header")

	// ErrCorruptHeader indicates the decoded header declares more payload than the carrier holds.
	ErrCorruptHeader = errors.New("corrupt length header")

	// ErrCarrierTooSmall indicates the carrier cannot even hold the length header.
	ErrCarrierTooSmall = errors.New("carrier too small for length header")
)

// CapacityError reports how many carrier bits a payload needed against how
// many were available after the header.
type CapacityError struct {
	RequiredBits  int64
	AvailableBits int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: payload needs %d bits, carrier has %d", ErrCapacityExceeded, e.RequiredBits, e.AvailableBits)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// HeaderError is returned by Decode when the length header cannot be honoured.
type HeaderError struct {
	Length        uint32 // Declared payload length in bytes
	AvailableBits int64  // Carrier bits after the header
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: header declares %d bytes (%d bits), carrier has %d", ErrCorruptHeader, e.Length, int64(e.Length)*8, e.AvailableBits)
}

func (e *HeaderError) Unwrap() error {
	return ErrCorruptHeader
}
