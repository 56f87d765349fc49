package message

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for hide/reveal events.
var (
	SignalHideStart      = capitan.NewSignal("stegano.hide.start", "Hide operation beginning")
	SignalHideComplete   = capitan.NewSignal("stegano.hide.complete", "Hide operation finished")
	SignalRevealStart    = capitan.NewSignal("stegano.reveal.start", "Reveal operation beginning")
	SignalRevealComplete = capitan.NewSignal("stegano.reveal.complete", "Reveal operation finished")
)

// Keys for typed event data.
var (
	KeyScheme       = capitan.NewStringKey("scheme")
	KeyPath         = capitan.NewStringKey("path")
	KeyCarrierBytes = capitan.NewIntKey("carrier_bytes")
	KeyPayloadBytes = capitan.NewIntKey("payload_bytes")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
)

// emitHideStart emits an event when hide begins.
func emitHideStart(ctx context.Context, scheme, path string) {
	capitan.Emit(ctx, SignalHideStart,
		KeyScheme.Field(scheme),
		KeyPath.Field(path),
	)
}

// emitHideComplete emits an event when hide finishes.
func emitHideComplete(ctx context.Context, scheme string, carrierBytes, payloadBytes int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyCarrierBytes.Field(carrierBytes),
		KeyPayloadBytes.Field(payloadBytes),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalHideComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalHideComplete, fields...)
	}
}

// emitRevealStart emits an event when reveal begins.
func emitRevealStart(ctx context.Context, scheme, path string) {
	capitan.Emit(ctx, SignalRevealStart,
		KeyScheme.Field(scheme),
		KeyPath.Field(path),
	)
}

// emitRevealComplete emits an event when reveal finishes.
func emitRevealComplete(ctx context.Context, scheme string, carrierBytes, payloadBytes int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyScheme.Field(scheme),
		KeyCarrierBytes.Field(carrierBytes),
		KeyPayloadBytes.Field(payloadBytes),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRevealComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRevealComplete, fields...)
	}
}
