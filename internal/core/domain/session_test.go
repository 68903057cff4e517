package domain

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now}

	// Strict comparison: dead at the exact expiry instant.
	if !s.Expired(now) {
		t.Fatalf("session should be expired at ExpiresAt")
	}
	if s.Expired(now.Add(-time.Second)) {
		t.Fatalf("session should be live before ExpiresAt")
	}
	if !s.Expired(now.Add(time.Second)) {
		t.Fatalf("session should be expired after ExpiresAt")
	}
}

func TestSession_HasRole(t *testing.T) {
	s := &Session{Role: RoleCustomer}

	if !s.HasRole(RoleCustomer, RoleAdmin) {
		t.Fatalf("expected role match")
	}
	if s.HasRole(RoleAdmin) {
		t.Fatalf("expected role mismatch")
	}
	if s.HasRole() {
		t.Fatalf("empty allowed list should never match")
	}
}
