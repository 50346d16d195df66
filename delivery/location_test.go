package delivery

import (
	"context"
	"errors"
	"testing"
)

func TestResolveWithoutProviderUsesFallback(t *testing.T) {
	var r *Resolver
	if got := r.Resolve(context.Background()); got != FallbackLocation {
		t.Errorf("nil resolver: got %+v, want fallback", got)
	}

	r = &Resolver{}
	if got := r.Resolve(context.Background()); got != FallbackLocation {
		t.Errorf("no provider: got %+v, want fallback", got)
	}
}

func TestResolveProviderErrorUsesFallback(t *testing.T) {
	r := &Resolver{Provider: PositionFunc(func(ctx context.Context) (LatLng, error) {
		return LatLng{}, errors.New("position unavailable")
	})}
	if got := r.Resolve(context.Background()); got != FallbackLocation {
		t.Errorf("provider error: got %+v, want fallback", got)
	}
}

func TestResolveReturnsProviderPosition(t *testing.T) {
	want := LatLng{Lat: 51.5074, Lng: -0.1278}
	r := &Resolver{Provider: PositionFunc(func(ctx context.Context) (LatLng, error) {
		return want, nil
	})}
	if got := r.Resolve(context.Background()); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
