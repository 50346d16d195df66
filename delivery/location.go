package delivery

import (
	"context"
)

// LatLng is a geographic coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FallbackLocation is used when no position provider is available or the
// provider fails. Location denial is not an error: checkout continues with
// this fixed coordinate pair.
var FallbackLocation = LatLng{Lat: 40.7128, Lng: -74.0060}

// PositionProvider supplies the caller's current coordinates
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (LatLng, error)
}

// PositionFunc adapts a function to the PositionProvider interface
type PositionFunc func(ctx context.Context) (LatLng, error)

func (f PositionFunc) CurrentPosition(ctx context.Context) (LatLng, error) {
	return f(ctx)
}

// Resolver wraps a PositionProvider and substitutes the fallback coordinates
// on absence, denial or error.
type Resolver struct {
	Provider PositionProvider
}

// Resolve returns the caller's position, or FallbackLocation if no provider
// is configured or the provider fails. It never returns an error.
func (r *Resolver) Resolve(ctx context.Context) LatLng {
	if r == nil || r.Provider == nil {
		return FallbackLocation
	}
	pos, err := r.Provider.CurrentPosition(ctx)
	if err != nil {
		return FallbackLocation
	}
	return pos
}
