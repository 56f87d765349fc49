package domain

import (
	"context"
	"image"
)

// Codec hides a payload in a carrier buffer and recovers it.
//
// Encode takes ownership of carrier and returns the encoded buffer; on error
// the carrier must be left unchanged. Decode must not read past the payload
// length recorded in the carrier.
type Codec interface {
	Name() string
	Capacity(carrierLen int) int
	Encode(payload, carrier []byte) ([]byte, error)
	Decode(carrier []byte) ([]byte, error)
}

// Sealer wraps payload bytes in authenticated encryption.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(envelope []byte) ([]byte, error)
	// Overhead is the number of bytes Seal adds to the plaintext.
	Overhead() int
}

// ImageStore loads carrier images and persists encoded ones.
type ImageStore interface {
	Load(path string) (*image.NRGBA, error)
	Save(path string, img *image.NRGBA) error
}

// MessageService hides messages in images and reveals them again.
// A nil Sealer means the payload is embedded in the clear.
type MessageService interface {
	Hide(ctx context.Context, inPath, outPath string, message []byte, sealer Sealer) (HideReport, error)
	Reveal(ctx context.Context, inPath string, sealer Sealer) ([]byte, error)
	Capacity(ctx context.Context, inPath string, overhead int) (CapacityReport, error)
}
