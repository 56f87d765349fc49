package store_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stegano/internal/domain"
	"stegano/internal/store"
)

func gradient(w, h int, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x ^ y), A: alpha})
		}
	}
	return img
}

func TestImageFileStore_SaveLoad_Lossless(t *testing.T) {
	dir := t.TempDir()
	var images domain.ImageStore = store.NewImageFileStore()

	for _, alpha := range []uint8{255, 254, 3} {
		img := gradient(17, 9, alpha)
		path := filepath.Join(dir, "carrier.png")
		require.NoError(t, images.Save(path, img))

		got, err := images.Load(path)
		require.NoError(t, err)
		assert.Equal(t, img.Rect, got.Rect)
		assert.Equal(t, img.Pix, got.Pix, "alpha %d", alpha)
	}
}

func TestImageFileStore_LoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, gradient(8, 4, 255), nil))
	require.NoError(t, f.Close())

	got, err := store.NewImageFileStore().Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Pix, 8*4*4)
	assert.Equal(t, 8*4, got.Stride)
}

func TestImageFileStore_LoadMissing(t *testing.T) {
	_, err := store.NewImageFileStore().Load(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageFileStore_LoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := store.NewImageFileStore().Load(path)
	require.Error(t, err)
}

func TestToNRGBA_SubImageIsRepacked(t *testing.T) {
	src := gradient(10, 10, 255)
	sub := src.SubImage(image.Rect(2, 3, 6, 8)).(*image.NRGBA)

	got := store.ToNRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 4, 5), got.Rect)
	assert.Len(t, got.Pix, 4*5*4)
	assert.Equal(t, sub.NRGBAAt(2, 3), got.NRGBAAt(0, 0))
	assert.Equal(t, sub.NRGBAAt(5, 7), got.NRGBAAt(3, 4))
}

func TestToNRGBA_ConformingReturnedAsIs(t *testing.T) {
	img := gradient(3, 3, 255)
	assert.Same(t, img, store.ToNRGBA(img))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "photo-e.png", store.OutputPath("photo.jpg"))
	assert.Equal(t, filepath.Join("dir", "a.b-e.png"), store.OutputPath(filepath.Join("dir", "a.b.png")))
	assert.Equal(t, "noext-e.png", store.OutputPath("noext"))
}
