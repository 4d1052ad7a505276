package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

func testIdentity() domain.CallerIdentity {
	return domain.CallerIdentity{
		AccountID:   uuid.New(),
		AccountName: "household",
		UserID:      uuid.New(),
		UserName:    "alice",
		Email:       "alice@example.com",
		Phone:       "5551234567",
		Role:        domain.RoleAccountAdmin,
	}
}

func TestNewIssuer_Validation(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err == nil {
		t.Fatalf("empty secret should be rejected")
	}
	if _, err := NewIssuer("secret", 0); err == nil {
		t.Fatalf("zero TTL should be rejected")
	}
	if _, err := NewIssuer("secret", -time.Minute); err == nil {
		t.Fatalf("negative TTL should be rejected")
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	want := testIdentity()
	tokenStr, err := issuer.Issue(want)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := issuer.VerifyAndDecode(tokenStr)
	if err != nil {
		t.Fatalf("VerifyAndDecode: %v", err)
	}
	if got != want {
		t.Fatalf("claims changed in transit:\n got %+v\nwant %+v", got, want)
	}
}

func TestIssuer_RejectsTamperedToken(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	tokenStr, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip one byte in the payload.
	raw := []byte(tokenStr)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}

	if _, err := issuer.VerifyAndDecode(string(raw)); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIssuer_RejectsWrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)
	other, _ := NewIssuer("different", time.Hour)

	tokenStr, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := other.VerifyAndDecode(tokenStr); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIssuer_RejectsExpiredToken(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	tokenStr, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(30 * time.Minute) }
	if _, err := issuer.VerifyAndDecode(tokenStr); err != nil {
		t.Fatalf("token within TTL rejected: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := issuer.VerifyAndDecode(tokenStr); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestIssuer_RejectsUnsignedToken(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	claims := jwt.MapClaims{
		"account_id": uuid.NewString(),
		"user_id":    uuid.NewString(),
		"role":       "account_admin",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := issuer.VerifyAndDecode(tokenStr); err != domain.ErrUnauthenticated {
		t.Fatalf("alg=none token must be rejected, got %v", err)
	}
}

func TestIssuer_RejectsMissingSubjectClaims(t *testing.T) {
	issuer, _ := NewIssuer("secret", time.Hour)

	claims := jwt.MapClaims{
		"account_name": "household",
		"role":         "user",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.VerifyAndDecode(tokenStr); err != domain.ErrUnauthenticated {
		t.Fatalf("token without ids must be rejected, got %v", err)
	}
}
