package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoSessionRepository struct {
	db *mongo.Database
}

func NewSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{db: db}
}

type mongoSession struct {
	TokenID    string `bson:"token_id"`
	AccountID  string `bson:"account_id"`
	UserID     string `bson:"user_id"`
	TokenValue string `bson:"token_value"`
	CreatedAt  int64  `bson:"created_at"`
	Expiry     int64  `bson:"expiry"`
}

func (r *MongoSessionRepository) coll() *mongo.Collection {
	return r.db.Collection(sessionCollection)
}

// Replace deletes any prior session for the (account, user) pair and
// inserts the new row inside one transaction, so a crash between the two
// steps cannot leave the user without a session some other login created.
func (r *MongoSessionRepository) Replace(ctx context.Context, session *domain.Session) error {
	doc := mongoSession{
		TokenID:    session.TokenID.String(),
		AccountID:  session.AccountID.String(),
		UserID:     session.UserID.String(),
		TokenValue: session.TokenValue,
		CreatedAt:  session.CreatedAt,
		Expiry:     session.Expiry,
	}
	owner := bson.M{
		"account_id": doc.AccountID,
		"user_id":    doc.UserID,
	}
	return inTransaction(ctx, r.db.Client(), func(sc mongo.SessionContext) error {
		if _, err := r.coll().DeleteMany(sc, owner); err != nil {
			return fmt.Errorf("evict sessions: %w", err)
		}
		if _, err := r.coll().InsertOne(sc, doc); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		return nil
	})
}

func (r *MongoSessionRepository) FindByToken(ctx context.Context, tokenValue string) (*domain.Session, error) {
	var ms mongoSession
	if err := r.coll().FindOne(ctx, bson.M{"token_value": tokenValue}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	tokenID, err := uuid.Parse(ms.TokenID)
	if err != nil {
		return nil, fmt.Errorf("session token id: %w", err)
	}
	accountID, err := uuid.Parse(ms.AccountID)
	if err != nil {
		return nil, fmt.Errorf("session account id: %w", err)
	}
	userID, err := uuid.Parse(ms.UserID)
	if err != nil {
		return nil, fmt.Errorf("session user id: %w", err)
	}

	return &domain.Session{
		TokenID:    tokenID,
		AccountID:  accountID,
		UserID:     userID,
		TokenValue: ms.TokenValue,
		CreatedAt:  ms.CreatedAt,
		Expiry:     ms.Expiry,
	}, nil
}

func (r *MongoSessionRepository) DeleteByUser(ctx context.Context, accountID, userID uuid.UUID) (int64, error) {
	res, err := r.coll().DeleteMany(ctx, bson.M{
		"account_id": accountID.String(),
		"user_id":    userID.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	return res.DeletedCount, nil
}
