// Package message hides messages in carrier images and reveals them again.
//
// It loads the image through a domain.ImageStore, optionally seals the message
// with a domain.Sealer, and embeds or extracts it with a domain.Codec. Every
// operation emits capitan start/complete signals and debug logs.
package message
