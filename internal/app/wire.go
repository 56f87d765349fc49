package app

import (
	"go.uber.org/zap"

	"stegano/internal/crypto"
	"stegano/internal/domain"
	messagesvc "stegano/internal/services/message"
	"stegano/internal/stego"
	"stegano/internal/store"
)

// Wire bundles the codec, store, service and logger for the CLI.
type Wire struct {
	Codec    domain.Codec
	Images   domain.ImageStore
	Messages domain.MessageService
	Suite    crypto.Suite
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	suite, err := crypto.ParseSuite(cfg.Cipher)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		if log, err = NewLogger(cfg.Verbose); err != nil {
			return nil, err
		}
	}

	codec := stego.NewLSB(stego.WithWorkers(cfg.Workers))
	images := store.NewImageFileStore()

	return &Wire{
		Codec:    codec,
		Images:   images,
		Messages: messagesvc.New(codec, images, log),
		Suite:    suite,
		Log:      log,
	}, nil
}

// Envelope validates key and returns a sealer using the configured suite.
func (w *Wire) Envelope(key []byte) (*crypto.Envelope, error) {
	return crypto.NewEnvelope(key, w.Suite)
}
