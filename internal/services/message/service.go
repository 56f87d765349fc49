package message

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"stegano/internal/domain"
)

// Service hides and reveals messages in images.
//
// High-level flow:
//   - Hide: seal the message if a sealer is given, load the carrier image,
//     embed the payload and save the encoded image.
//   - Reveal: load the image, extract the payload and open it if a sealer
//     is given.
type Service struct {
	codec  domain.Codec
	images domain.ImageStore
	log    *zap.Logger
}

// New constructs a message Service. A nil logger discards logs.
func New(codec domain.Codec, images domain.ImageStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		codec:  codec,
		images: images,
		log:    log.Named("message"),
	}
}

// Hide embeds message into the image at inPath and writes the result to outPath.
//
// The message is sealed before the carrier is loaded. If the payload does not
// fit, nothing is written.
func (s *Service) Hide(
	ctx context.Context,
	inPath string,
	outPath string,
	message []byte,
	sealer domain.Sealer,
) (report domain.HideReport, err error) {
	start := time.Now()
	scheme := s.codec.Name()
	emitHideStart(ctx, scheme, inPath)
	defer func() {
		emitHideComplete(ctx, scheme, report.CarrierBytes, report.PayloadBytes, time.Since(start), err)
	}()

	payload := message
	if sealer != nil {
		payload, err = sealer.Seal(message)
		if err != nil {
			return report, fmt.Errorf("seal message: %w", err)
		}
	}
	report = domain.HideReport{
		OutPath:      outPath,
		Scheme:       scheme,
		PayloadBytes: len(payload),
		Encrypted:    sealer != nil,
	}

	img, err := s.images.Load(inPath)
	if err != nil {
		return report, fmt.Errorf("load carrier: %w", err)
	}
	report.CarrierBytes = len(img.Pix)
	report.Capacity = s.codec.Capacity(len(img.Pix))
	s.log.Debug("embedding payload",
		zap.String("in", inPath),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("carrier_bytes", len(img.Pix)),
		zap.Int("capacity", report.Capacity),
		zap.Bool("encrypted", report.Encrypted),
	)

	encoded, err := s.codec.Encode(payload, img.Pix)
	if err != nil {
		return report, fmt.Errorf("embed payload: %w", err)
	}
	img.Pix = encoded

	if err := s.images.Save(outPath, img); err != nil {
		return report, fmt.Errorf("save encoded image: %w", err)
	}
	s.log.Info("message hidden",
		zap.String("out", outPath),
		zap.Int("payload_bytes", len(payload)),
		zap.Duration("took", time.Since(start)),
	)
	return report, nil
}

// Reveal extracts the message hidden in the image at inPath.
func (s *Service) Reveal(ctx context.Context, inPath string, sealer domain.Sealer) (message []byte, err error) {
	start := time.Now()
	scheme := s.codec.Name()
	carrierBytes, payloadBytes := 0, 0
	emitRevealStart(ctx, scheme, inPath)
	defer func() {
		emitRevealComplete(ctx, scheme, carrierBytes, payloadBytes, time.Since(start), err)
	}()

	img, err := s.images.Load(inPath)
	if err != nil {
		return nil, fmt.Errorf("load carrier: %w", err)
	}
	carrierBytes = len(img.Pix)

	payload, err := s.codec.Decode(img.Pix)
	if err != nil {
		return nil, fmt.Errorf("extract payload: %w", err)
	}
	payloadBytes = len(payload)
	s.log.Debug("payload extracted",
		zap.String("in", inPath),
		zap.Int("payload_bytes", payloadBytes),
		zap.Bool("encrypted", sealer != nil),
	)

	if sealer == nil {
		return payload, nil
	}
	message, err = sealer.Open(payload)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	s.log.Info("message revealed", zap.Duration("took", time.Since(start)))
	return message, nil
}

// Capacity reports how many bytes the image at inPath can hold, raw and
// after paying overhead bytes of envelope.
func (s *Service) Capacity(_ context.Context, inPath string, overhead int) (domain.CapacityReport, error) {
	img, err := s.images.Load(inPath)
	if err != nil {
		return domain.CapacityReport{}, fmt.Errorf("load carrier: %w", err)
	}
	maxPayload := s.codec.Capacity(len(img.Pix))
	return domain.CapacityReport{
		Width:        img.Rect.Dx(),
		Height:       img.Rect.Dy(),
		CarrierBytes: len(img.Pix),
		MaxPayload:   maxPayload,
		MaxSealed:    max(0, maxPayload-overhead),
	}, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
