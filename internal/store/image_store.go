package store

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"stegano/internal/domain"
)

const (
	imageFileMode = 0o644

	// encodedSuffix is appended to the input name for the default output path.
	encodedSuffix = "-e.png"
)

// ImageFileStore loads and saves carrier images on the local filesystem.
type ImageFileStore struct {
	enc png.Encoder
}

// NewImageFileStore returns a store that writes PNGs at default compression.
func NewImageFileStore() *ImageFileStore {
	return &ImageFileStore{enc: png.Encoder{CompressionLevel: png.DefaultCompression}}
}

// Load decodes the image at path into a tightly packed NRGBA buffer.
func (s *ImageFileStore) Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// Save writes img to path as PNG.
func (s *ImageFileStore) Save(path string, img *image.NRGBA) error {
	var buf bytes.Buffer
	if err := s.enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes(), imageFileMode)
}

// ToNRGBA returns img as an NRGBA anchored at the origin whose Pix holds
// exactly 4*width*height bytes. An already conforming *image.NRGBA is
// returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() && len(n.Pix) == 4*b.Dx()*b.Dy() {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// OutputPath derives the encoded image path from the input path:
// "photo.jpg" becomes "photo-e.png".
func OutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + encodedSuffix
}

var _ domain.ImageStore = (*ImageFileStore)(nil)
