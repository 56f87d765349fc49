package stego

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyCarrier returns a deterministic pseudo-random carrier of n bytes.
func noisyCarrier(t *testing.T, n int) []byte {
	t.Helper()
	r := rand.New(rand.NewSource(int64(n)))
	b := make([]byte, n)
	_, err := r.Read(b)
	require.NoError(t, err)
	return b
}

func TestLSB_RoundTrip(t *testing.T) {
	codec := NewLSB()
	payloads := [][]byte{
		{},
		{0x00},
		{0xff},
		[]byte("hello"),
		bytes.Repeat([]byte{0xa5, 0x5a}, 300),
	}
	for _, p := range payloads {
		carrier := noisyCarrier(t, HeaderBits+8*len(p)+17)
		encoded, err := codec.Encode(p, carrier)
		require.NoError(t, err)

		got, err := codec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestLSB_CapacityBoundary(t *testing.T) {
	codec := NewLSB()
	const carrierLen = HeaderBits + 8*40

	fits := bytes.Repeat([]byte{'x'}, 40)
	_, err := codec.Encode(fits, noisyCarrier(t, carrierLen))
	require.NoError(t, err)

	carrier := noisyCarrier(t, carrierLen-1)
	before := bytes.Clone(carrier)
	_, err = codec.Encode(fits, carrier)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, int64(320), capErr.RequiredBits)
	assert.Equal(t, int64(319), capErr.AvailableBits)
	assert.Equal(t, before, carrier, "failed encode must not touch the carrier")
}

func TestLSB_CarrierShorterThanHeader(t *testing.T) {
	codec := NewLSB()

	_, err := codec.Encode([]byte{1}, make([]byte, 10))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	encoded, err := codec.Encode(nil, make([]byte, HeaderBits))
	require.NoError(t, err)
	got, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = codec.Decode(make([]byte, HeaderBits-1))
	require.ErrorIs(t, err, ErrCarrierTooSmall)
}

func TestLSB_HeaderFidelity(t *testing.T) {
	codec := NewLSB()
	for _, n := range []int{0, 1, 7, 8, 255, 256, 1023} {
		carrier := noisyCarrier(t, HeaderBits+8*n)
		_, err := codec.Encode(bytes.Repeat([]byte{0xff}, n), carrier)
		require.NoError(t, err)
		assert.Equal(t, uint32(n), readHeader(carrier))
	}
}

func TestLSB_MinimalPerturbation(t *testing.T) {
	codec := NewLSB()
	payload := []byte("minimal perturbation")
	carrier := noisyCarrier(t, 1024)
	original := bytes.Clone(carrier)

	encoded, err := codec.Encode(payload, carrier)
	require.NoError(t, err)

	touched := HeaderBits + 8*len(payload)
	for i := range encoded {
		if i < touched {
			assert.Equal(t, original[i]&^1, encoded[i]&^1, "upper bits changed at %d", i)
			continue
		}
		assert.Equal(t, original[i], encoded[i], "untouched byte changed at %d", i)
	}
}

func TestLSB_BitOrder(t *testing.T) {
	codec := NewLSB()
	carrier := make([]byte, HeaderBits+8)

	_, err := codec.Encode([]byte{0x01}, carrier)
	require.NoError(t, err)

	// Length 1: only header byte 0 carries a set bit.
	assert.Equal(t, byte(1), carrier[0])
	for i := 1; i < HeaderBits; i++ {
		assert.Zero(t, carrier[i])
	}
	// Payload 0x01: LSB first, so only the first payload byte is set.
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, carrier[HeaderBits:])
}

func TestLSB_DecodeStopsAtDeclaredLength(t *testing.T) {
	codec := NewLSB()
	carrier := make([]byte, 4096)
	for i := range carrier {
		carrier[i] = 0xff
	}
	_, err := codec.Encode([]byte("abc"), carrier)
	require.NoError(t, err)

	got, err := codec.Decode(carrier)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestLSB_CorruptHeader(t *testing.T) {
	codec := NewLSB()
	carrier := make([]byte, HeaderBits+64)
	putHeader(carrier, 9)

	_, err := codec.Decode(carrier)
	require.ErrorIs(t, err, ErrCorruptHeader)

	var hdrErr *HeaderError
	require.ErrorAs(t, err, &hdrErr)
	assert.Equal(t, uint32(9), hdrErr.Length)
	assert.Equal(t, int64(64), hdrErr.AvailableBits)

	putHeader(carrier, ^uint32(0))
	_, err = codec.Decode(carrier)
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestLSB_ParallelMatchesSerial(t *testing.T) {
	payload := noisyCarrier(t, parallelMinBytes*3+5)
	carrierLen := HeaderBits + 8*len(payload) + 100

	serial, err := NewLSB().Encode(payload, noisyCarrier(t, carrierLen))
	require.NoError(t, err)
	parallel, err := NewLSB(WithWorkers(4)).Encode(payload, noisyCarrier(t, carrierLen))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	got, err := NewLSB(WithWorkers(3)).Decode(parallel)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWithWorkers_ClampsToOne(t *testing.T) {
	assert.Equal(t, 1, NewLSB(WithWorkers(0)).workers)
	assert.Equal(t, 1, NewLSB(WithWorkers(-3)).workers)
	assert.Equal(t, 8, NewLSB(WithWorkers(8)).workers)
}

func TestLSB_Name(t *testing.T) {
	assert.Equal(t, SchemeLSB, NewLSB().Name())
}
