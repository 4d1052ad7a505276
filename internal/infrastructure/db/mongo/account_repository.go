package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoAccountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{db: db}
}

type mongoAccount struct {
	AccountID   string `bson:"account_id"`
	AccountName string `bson:"account_name"`
	Status      bool   `bson:"status"`
	CreatedAt   int64  `bson:"created_at"`
}

func toMongoAccount(a *domain.Account) mongoAccount {
	return mongoAccount{
		AccountID:   a.AccountID.String(),
		AccountName: a.AccountName,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt.Unix(),
	}
}

func (m mongoAccount) toDomain() (domain.Account, error) {
	id, err := uuid.Parse(m.AccountID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account id: %w", err)
	}
	return domain.Account{
		AccountID:   id,
		AccountName: m.AccountName,
		Status:      m.Status,
		CreatedAt:   unixToTime(m.CreatedAt),
	}, nil
}

func (r *MongoAccountRepository) coll() *mongo.Collection {
	return r.db.Collection(accountCollection)
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.coll().InsertOne(ctx, toMongoAccount(account))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *MongoAccountRepository) FindByName(ctx context.Context, accountName string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"account_name": accountName})
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"account_id": accountID.String()})
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll().FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	account, err := ma.toDomain()
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *MongoAccountRepository) SetStatus(ctx context.Context, accountID uuid.UUID, status bool) error {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"account_id": accountID.String()},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Purge removes the account and everything belonging to it. All collections
// are cleared in one transaction: either the tenant disappears completely
// or not at all.
func (r *MongoAccountRepository) Purge(ctx context.Context, accountID uuid.UUID) error {
	filter := bson.M{"account_id": accountID.String()}
	return inTransaction(ctx, r.db.Client(), func(sc mongo.SessionContext) error {
		for _, coll := range []string{
			incomeCollection,
			expenditureCollection,
			expenseTypeCollection,
			sessionCollection,
			userCollection,
		} {
			if _, err := r.db.Collection(coll).DeleteMany(sc, filter); err != nil {
				return fmt.Errorf("purge %s: %w", coll, err)
			}
		}
		res, err := r.coll().DeleteOne(sc, filter)
		if err != nil {
			return fmt.Errorf("purge account: %w", err)
		}
		if res.DeletedCount == 0 {
			return domain.ErrAccountNotFound
		}
		return nil
	})
}

func (r *MongoAccountRepository) ListAll(ctx context.Context) ([]domain.Account, error) {
	cursor, err := r.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []domain.Account
	for cursor.Next(ctx) {
		var ma mongoAccount
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		account, err := ma.toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, cursor.Err()
}
