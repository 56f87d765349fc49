package stego

// putHeader writes n into the LSBs of carrier[0:HeaderBits], bit i into byte i.
func putHeader(carrier []byte, n uint32) {
	for i := 0; i < HeaderBits; i++ {
		carrier[i] = carrier[i]&^1 | byte(n>>i)&1
	}
}

// readHeader reconstructs the payload length from carrier[0:HeaderBits].
func readHeader(carrier []byte) uint32 {
	var n uint32
	for i := 0; i < HeaderBits; i++ {
		n |= uint32(carrier[i]&1) << i
	}
	return n
}
