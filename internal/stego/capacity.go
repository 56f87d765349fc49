package stego

import (
	"fmt"
	"math"
)

// HeaderBits is the number of carrier bytes occupied by the length header.
const HeaderBits = 32

// MaxPayloadLen is the largest payload length the header can express.
const MaxPayloadLen = math.MaxUint32

// availableBits returns the number of carrier bytes left for payload bits.
func availableBits(carrierLen int) int64 {
	if carrierLen <= HeaderBits {
		return 0
	}
	return int64(carrierLen) - HeaderBits
}

// MaxPayload returns the largest payload, in bytes, a carrier of carrierLen
// bytes can hold.
func MaxPayload(carrierLen int) int {
	n := availableBits(carrierLen) / 8
	if n > MaxPayloadLen {
		n = MaxPayloadLen
	}
	return int(n)
}

// checkCapacity validates that payloadLen bytes fit after the header.
// It never touches the carrier.
func checkCapacity(payloadLen, carrierLen int) error {
	if payloadLen < 0 {
		return fmt.Errorf("negative payload length %d", payloadLen)
	}
	if uint64(payloadLen) > MaxPayloadLen {
		return fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLarge, payloadLen, uint64(MaxPayloadLen))
	}
	required := int64(payloadLen) * 8
	available := availableBits(carrierLen)
	if required > available {
		return &CapacityError{RequiredBits: required, AvailableBits: available}
	}
	return nil
}
