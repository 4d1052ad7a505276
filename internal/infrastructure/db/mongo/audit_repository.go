package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoAuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{db: db}
}

type mongoAuditEvent struct {
	AccountID string `bson:"account_id,omitempty"`
	UserID    string `bson:"user_id,omitempty"`
	Action    string `bson:"action"`
	Detail    string `bson:"detail"`
	At        int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Action: event.Action,
		Detail: event.Detail,
		At:     event.At.Unix(),
	}
	// Super-admin events carry no tenant identity.
	if event.AccountID != uuid.Nil {
		doc.AccountID = event.AccountID.String()
	}
	if event.UserID != uuid.Nil {
		doc.UserID = event.UserID.String()
	}

	if _, err := r.db.Collection(auditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
