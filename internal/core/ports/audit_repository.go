package ports

import (
	"context"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// AuditRepository persists authentication outcomes for operators. Writes are
// best effort; a failed audit write never fails the login itself.
type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
}
