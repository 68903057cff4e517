package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// Codec serializes session records as HS256-signed JWTs. The token is opaque
// to the browser; all we need back out are the identifiers and the expiry.
// Pure transformation, no I/O.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Encode(s *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   s.ID,
		"sub":   s.SubjectID,
		"email": s.Email,
		"role":  s.Role,
		"exp":   s.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode parses and verifies a token. Every failure mode — bad signature,
// wrong algorithm, malformed structure, missing claim, unparseable expiry —
// collapses to domain.ErrNoSession. Callers never learn why a token was
// rejected, and never see a partially populated record.
func (c *Codec) Decode(token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrNoSession
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrNoSession
	}

	id, _ := claims["sid"].(string)
	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || subject == "" || role == "" {
		return nil, domain.ErrNoSession
	}

	return &domain.Session{
		ID:        id,
		SubjectID: subject,
		Email:     email,
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}

// Expired reports whether s is dead at now. Kept on the codec so store
// implementations share one definition of "expired".
func (c *Codec) Expired(s *domain.Session, now time.Time) bool {
	return s.Expired(now)
}
