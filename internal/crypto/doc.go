// Package crypto exposes the cipher envelope used to protect hidden payloads.
//
// Contents
//
//   - Envelope, an AEAD wrapper keyed with exactly 32 bytes (NewEnvelope)
//   - Two suites: AES-SIV (SuiteAESSIV, the default) and XChaCha20-Poly1305
//     (SuiteXChaCha20Poly1305)
//   - Key parsing and generation (ParseKey, GenerateKey)
//   - Short key fingerprints for display (Fingerprint)
//
// # Envelope format
//
//	[suite id (1 byte)][nonce][ciphertext || tag]
//
// Every Seal draws a fresh random nonce. The suite id is bound as associated
// data, so Open picks the suite from the envelope and rejects any tampering
// with it.
//
// # Notes
//
// Envelope keeps its own copy of the key. Call Destroy when done to wipe it.
package crypto
