// Package store provides file-based persistence for carrier images.
//
// ImageFileStore implements domain.ImageStore. Images of any registered
// format (PNG, JPEG, GIF, BMP, TIFF, WebP) are decoded and normalised to
// 8-bit non-premultiplied RGBA with a tightly packed pixel buffer, so the
// buffer can serve directly as a carrier: one byte per channel per pixel,
// row-major, channels in R, G, B, A order.
//
// Encoded images are always written as PNG, the only lossless format here
// that keeps every low bit, via a temp file and an atomic rename.
package store
