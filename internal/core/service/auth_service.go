package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/core/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// AuthService orchestrates login and logout. Credential verification itself
// is delegated to the external identity provider; this service owns input
// validation, the session lifecycle, and the mapping of provider failures to
// user-safe outcomes.
type AuthService struct {
	provider ports.IdentityProvider
	audit    ports.AuditRepository
	validate *validator.Validate
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(provider ports.IdentityProvider, audit ports.AuditRepository, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		provider: provider,
		audit:    audit,
		validate: validator.New(),
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// Login runs the full flow: validate input, exchange credentials, fetch the
// profile, then — only once all upstream data is in hand — write the session.
// The single Write at the end guarantees no half-populated session is ever
// persisted, whatever fails along the way.
//
// Wrong credentials and an unreachable provider are deliberately collapsed
// into one generic error so the endpoint cannot be used as an account oracle.
// The real cause stays visible to operators via the warn log below.
func (s *AuthService) Login(ctx context.Context, store ports.SessionStore, email, password string) (*domain.Session, error) {
	if verr := validateCredentials(s.validate, email, password); verr != nil {
		s.record(ctx, &domain.AuditEntry{Email: email, Outcome: domain.AuditLoginValidation, At: s.now()})
		return nil, verr
	}

	accessToken, err := s.provider.ExchangeCredentials(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Msg("credential exchange failed")
		s.record(ctx, &domain.AuditEntry{Email: email, Outcome: domain.AuditLoginRejected, Reason: err.Error(), At: s.now()})
		return nil, domain.ErrAuthentication
	}

	profile, err := s.provider.FetchProfile(ctx, accessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("profile fetch failed")
		s.record(ctx, &domain.AuditEntry{Email: email, Outcome: domain.AuditLoginProfileFail, Reason: err.Error(), At: s.now()})
		return nil, domain.ErrProfileFetch
	}

	// Identity fields come from the profile response, never from the request.
	record := &domain.Session{
		ID:        uuid.NewString(),
		SubjectID: profile.SubjectID,
		Email:     profile.Email,
		Role:      profile.Role,
		ExpiresAt: s.now().Add(s.ttl),
	}

	if err := store.Write(ctx, record); err != nil {
		s.log.Error().Err(err).Msg("session write failed")
		return nil, domain.ErrAuthentication
	}

	s.record(ctx, &domain.AuditEntry{Email: profile.Email, SubjectID: profile.SubjectID, Outcome: domain.AuditLoginSuccess, At: s.now()})
	return record, nil
}

// Logout deletes the current session. It never fails: deleting an absent
// session is a no-op, and audit/revocation hiccups are logged, not surfaced.
func (s *AuthService) Logout(ctx context.Context, store ports.SessionStore) {
	record, _ := store.Read(ctx)

	if err := store.Delete(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed")
	}

	entry := &domain.AuditEntry{Outcome: domain.AuditLogout, At: s.now()}
	if record != nil {
		entry.Email = record.Email
		entry.SubjectID = record.SubjectID
	}
	s.record(ctx, entry)
}

// record writes an audit entry best-effort.
func (s *AuthService) record(ctx context.Context, entry *domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("outcome", entry.Outcome).Msg("audit write failed")
	}
}
