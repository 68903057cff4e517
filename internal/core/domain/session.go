package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var ErrNoSession = errors.New("no session")
var ErrAuthentication = errors.New("invalid credentials or service unavailable")
var ErrProfileFetch = errors.New("profile fetch failed")

// Session is the authenticated-identity record carried by the portal cookie
// and validated on every request. It holds only what authorization decisions
// need: no password, no provider token.
type Session struct {
	// ID identifies this particular session instance, not the user. Logout
	// revokes by ID so a replayed cookie stays dead until expiry.
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	Email     string    `json:"email"` // informational, never an authorization key
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
// A session is live strictly before ExpiresAt; at the instant itself it is dead.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// HasRole reports whether the session's role is one of the allowed roles.
func (s *Session) HasRole(allowed ...string) bool {
	for _, r := range allowed {
		if s.Role == r {
			return true
		}
	}
	return false
}

// Profile is the identity provider's answer to a profile fetch. Role and
// SubjectID come exclusively from here, never from client input.
type Profile struct {
	SubjectID string
	Email     string
	Role      string
}

// ValidationError carries per-field login input errors. Both fields are
// checked independently so the caller can render every message at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// AuditEntry records one authentication outcome for the audit trail.
type AuditEntry struct {
	Email     string
	SubjectID string
	Outcome   string
	Reason    string
	At        time.Time
}

const (
	AuditLoginSuccess     = "login_success"
	AuditLoginValidation  = "login_validation_failed"
	AuditLoginRejected    = "login_rejected"
	AuditLoginProfileFail = "login_profile_failed"
	AuditLogout           = "logout"
)
