package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    DefaultTokenTTL,
		TokenIssuer: "cohort-tools-test",
	})
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newTestService()

	token, issued, err := svc.IssueToken(Identity{UserID: "u1", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if got := issued.ExpiresAt.Sub(issued.IssuedAt.Time); got != 6*time.Hour {
		t.Errorf("token lifetime = %v, want 6h", got)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ana@example.com" || claims.Name != "Ana" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.IssueToken(Identity{UserID: "u1", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.VerifyToken(tampered); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("tampered token err = %v, want ErrTokenInvalid", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenIssuer: "cohort-tools-test"})
	if _, err := other.VerifyToken(token); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-7 * time.Hour) }
	token, _, err := svc.IssueToken(Identity{UserID: "u1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyTokenRejectsOtherAlgorithms(t *testing.T) {
	svc := newTestService()
	claims := &Claims{
		UserID: "u1",
		Email:  "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "cohort-tools-test",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
		{"abc.def.ghi", "", true},
		{"Basic abc", "", true},
		{"Bearer ", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractBearerToken(%q) err = %v", tt.header, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "Passw0rd" {
		t.Fatal("digest must not be the plaintext")
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost < MinBcryptCost {
		t.Errorf("cost = %d, want >= %d", cost, MinBcryptCost)
	}

	if !h.Verify("Passw0rd", digest) {
		t.Error("expected password to verify")
	}
	if h.Verify("passw0rd", digest) {
		t.Error("wrong password verified")
	}
}
