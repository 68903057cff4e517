package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository persists authentication outcomes to MongoDB. Entries are
// append-only; nothing in the portal ever mutates or deletes them.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Email     string `bson:"email,omitempty"`
	SubjectID string `bson:"subject_id,omitempty"`
	Outcome   string `bson:"outcome"`
	Reason    string `bson:"reason,omitempty"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	doc := auditDoc{
		Email:     entry.Email,
		SubjectID: entry.SubjectID,
		Outcome:   entry.Outcome,
		Reason:    entry.Reason,
		At:        entry.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
