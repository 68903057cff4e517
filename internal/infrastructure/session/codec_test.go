package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := codec.Encode(&domain.Session{
		ID:        "sid-1",
		SubjectID: "42",
		Email:     "john@mail.com",
		Role:      domain.RoleCustomer,
		ExpiresAt: expires,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	record, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.ID != "sid-1" || record.SubjectID != "42" || record.Email != "john@mail.com" || record.Role != domain.RoleCustomer {
		t.Fatalf("unexpected record: %+v", record)
	}
	if !record.ExpiresAt.Equal(expires) {
		t.Fatalf("expiry mismatch: got %v want %v", record.ExpiresAt, expires)
	}
}

func TestCodec_DecodeFailsClosed(t *testing.T) {
	codec := NewCodec("secret")

	inputs := []string{
		"",
		"garbage",
		"a.b.c",
		"not.even.close.to.a.token",
	}
	for _, in := range inputs {
		record, err := codec.Decode(in)
		if err != domain.ErrNoSession {
			t.Errorf("Decode(%q) error = %v, want ErrNoSession", in, err)
		}
		if record != nil {
			t.Errorf("Decode(%q) returned a record: %+v", in, record)
		}
	}
}

func TestCodec_DecodeRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec("other-secret").Encode(&domain.Session{
		ID:        "sid-1",
		SubjectID: "42",
		Role:      domain.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := NewCodec("secret").Decode(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for foreign signature, got %v", err)
	}
}

func TestCodec_DecodeRejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "sid-1", "sub": "42", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret").Decode(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for alg=none token, got %v", err)
	}
}

func TestCodec_DecodeRejectsMissingClaims(t *testing.T) {
	claims := jwt.MapClaims{
		// no sid, no sub, no role
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret").Decode(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for incomplete claims, got %v", err)
	}
}

func TestCodec_DecodeRejectsMissingExpiry(t *testing.T) {
	claims := jwt.MapClaims{
		"sid": "sid-1", "sub": "42", "role": "admin",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret").Decode(token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for missing exp, got %v", err)
	}
}

func TestCodec_ExpiredTokenStillDecodes(t *testing.T) {
	// Expiry is the store's concern; the codec must decode an expired but
	// well-formed token so the store can apply its own strict check.
	codec := NewCodec("secret")
	past := time.Now().Add(-time.Hour)

	token, err := codec.Encode(&domain.Session{
		ID: "sid-1", SubjectID: "42", Role: domain.RoleCustomer, ExpiresAt: past,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	record, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !record.Expired(time.Now()) {
		t.Fatalf("record should report expired")
	}
}
