// Package stego implements least-significant-bit embedding of a byte payload
// into a raw pixel buffer (the carrier).
//
// # Wire format
//
//	[0, 32)          payload byte length, bit i in the LSB of carrier byte i
//	[32, 32+8*len)   payload bits, bit d in the LSB of carrier byte 32+d,
//	                 least significant bit first within each payload byte
//
// The upper seven bits of every carrier byte, and every bit of the bytes past
// the payload, are left exactly as they were.
//
// # Ownership
//
// Encode takes sole ownership of the carrier for the duration of the call and
// returns it as the encoded buffer. Capacity is validated before the first
// write, so a failed Encode leaves the carrier byte-for-byte unchanged.
//
// Decode never reads past 32+8*len bytes and refuses headers that declare more
// payload than the carrier can hold.
package stego
