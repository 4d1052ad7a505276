// Package token implements access-token issuance and verification plus the
// opaque refresh-token generator.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

// Issuer mints and verifies HS256-signed access tokens. Access tokens are
// never revoked; they are valid until natural expiry, which bounds the blast
// radius of a compromised refresh flow to the access-token TTL.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer signing with secret for tokens living ttl.
// An empty secret is a configuration error and must abort startup.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret not configured")
	}
	if ttl <= 0 {
		return nil, errors.New("token: access token TTL must be positive")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs the caller identity into an access token expiring at
// issuance time + TTL.
func (i *Issuer) Issue(id domain.CallerIdentity) (string, error) {
	claims := jwt.MapClaims{
		"account_id":   id.AccountID.String(),
		"account_name": id.AccountName,
		"user_id":      id.UserID.String(),
		"user_name":    id.UserName,
		"email":        id.Email,
		"phone":        id.Phone,
		"role":         string(id.Role),
		"exp":          i.now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// VerifyAndDecode verifies the signature and expiry and extracts the caller
// identity in one step. Every failure mode collapses to ErrUnauthenticated
// so the response never reveals which check rejected the token.
func (i *Issuer) VerifyAndDecode(tokenStr string) (domain.CallerIdentity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !tkn.Valid {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	userID, err := claimUUID(claims, "user_id")
	if err != nil {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}
	accountID, err := claimUUID(claims, "account_id")
	if err != nil {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	return domain.CallerIdentity{
		AccountID:   accountID,
		AccountName: claimString(claims, "account_name"),
		UserID:      userID,
		UserName:    claimString(claims, "user_name"),
		Email:       claimString(claims, "email"),
		Phone:       claimString(claims, "phone"),
		Role:        domain.Role(claimString(claims, "role")),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	s, ok := claims[key].(string)
	if !ok || s == "" {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return uuid.Parse(s)
}
