package domain

// Fingerprint is a short identifier for keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// HideReport describes a completed encode.
type HideReport struct {
	OutPath      string
	Scheme       string
	PayloadBytes int // bytes embedded, including envelope overhead
	CarrierBytes int
	Capacity     int // largest payload the carrier could take
	Encrypted    bool
}

// CapacityReport describes how much a carrier image can hold.
type CapacityReport struct {
	Width, Height int
	CarrierBytes  int
	MaxPayload    int // raw payload bytes
	MaxSealed     int // plaintext bytes once envelope overhead is paid
}
