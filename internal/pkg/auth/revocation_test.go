package auth

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRevocationList(t *testing.T) {
	ctx := context.Background()
	list := NewMemoryRevocationList()
	now := time.Now()
	list.now = func() time.Time { return now }

	if err := list.Revoke(ctx, "jti-1", now.Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := list.Revoke(ctx, "jti-old", now.Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	if revoked, _ := list.IsRevoked(ctx, "jti-1"); !revoked {
		t.Error("jti-1 should be revoked")
	}
	if revoked, _ := list.IsRevoked(ctx, "jti-old"); revoked {
		t.Error("already expired token should not be tracked")
	}
	if revoked, _ := list.IsRevoked(ctx, "jti-2"); revoked {
		t.Error("jti-2 was never revoked")
	}

	now = now.Add(2 * time.Hour)
	if revoked, _ := list.IsRevoked(ctx, "jti-1"); revoked {
		t.Error("revocation should lapse once the token would have expired")
	}
}
