package utils

import (
	"context"
	"testing"
	"time"
)

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist()

	if d.IsRevoked(ctx, "tok") {
		t.Error("fresh denylist reported token as revoked")
	}

	if err := d.Revoke(ctx, "tok", time.Minute); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if !d.IsRevoked(ctx, "tok") {
		t.Error("revoked token not reported as revoked")
	}
	if d.IsRevoked(ctx, "other") {
		t.Error("unrelated token reported as revoked")
	}
}

func TestMemoryDenylistExpiry(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDenylist()

	// Zero or negative TTL means the token has already expired on its own
	if err := d.Revoke(ctx, "expired", 0); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if d.IsRevoked(ctx, "expired") {
		t.Error("token with non-positive TTL should not be recorded")
	}

	if err := d.Revoke(ctx, "brief", 10*time.Millisecond); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if d.IsRevoked(ctx, "brief") {
		t.Error("token still revoked after its TTL passed")
	}
}
