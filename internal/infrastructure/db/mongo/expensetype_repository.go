package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoExpenseTypeRepository struct {
	db *mongo.Database
}

func NewExpenseTypeRepository(db *mongo.Database) *MongoExpenseTypeRepository {
	return &MongoExpenseTypeRepository{db: db}
}

type mongoExpenseType struct {
	AccountID     string `bson:"account_id"`
	AccountName   string `bson:"account_name"`
	UserID        string `bson:"user_id"`
	UserName      string `bson:"user_name"`
	ExpenseTypeID string `bson:"expense_type_id"`
	ExpenseType   string `bson:"expense_type"`
	CreatedAt     int64  `bson:"created_at"`
}

func (m mongoExpenseType) toDomain() (domain.ExpenseType, error) {
	accountID, err := uuid.Parse(m.AccountID)
	if err != nil {
		return domain.ExpenseType{}, fmt.Errorf("expense type account id: %w", err)
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return domain.ExpenseType{}, fmt.Errorf("expense type user id: %w", err)
	}
	expenseTypeID, err := uuid.Parse(m.ExpenseTypeID)
	if err != nil {
		return domain.ExpenseType{}, fmt.Errorf("expense type id: %w", err)
	}
	return domain.ExpenseType{
		AccountID:     accountID,
		AccountName:   m.AccountName,
		UserID:        userID,
		UserName:      m.UserName,
		ExpenseTypeID: expenseTypeID,
		ExpenseType:   m.ExpenseType,
		CreatedAt:     unixToTime(m.CreatedAt),
	}, nil
}

func toMongoExpenseType(et *domain.ExpenseType) mongoExpenseType {
	return mongoExpenseType{
		AccountID:     et.AccountID.String(),
		AccountName:   et.AccountName,
		UserID:        et.UserID.String(),
		UserName:      et.UserName,
		ExpenseTypeID: et.ExpenseTypeID.String(),
		ExpenseType:   et.ExpenseType,
		CreatedAt:     et.CreatedAt.Unix(),
	}
}

func (r *MongoExpenseTypeRepository) coll() *mongo.Collection {
	return r.db.Collection(expenseTypeCollection)
}

func (r *MongoExpenseTypeRepository) Create(ctx context.Context, et *domain.ExpenseType) error {
	_, err := r.coll().InsertOne(ctx, toMongoExpenseType(et))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrExpenseTypeExists
		}
		return fmt.Errorf("insert expense type: %w", err)
	}
	return nil
}

func (r *MongoExpenseTypeRepository) FindByID(ctx context.Context, expenseTypeID uuid.UUID) (*domain.ExpenseType, error) {
	var met mongoExpenseType
	if err := r.coll().FindOne(ctx, bson.M{"expense_type_id": expenseTypeID.String()}).Decode(&met); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExpenseTypeNotFound
		}
		return nil, fmt.Errorf("find expense type: %w", err)
	}
	et, err := met.toDomain()
	if err != nil {
		return nil, err
	}
	return &et, nil
}

// FindOrCreate resolves the id of the named expense type, inserting it when
// absent. A single upsert with $setOnInsert keeps the check-then-insert
// atomic: two concurrent callers converge on one document.
func (r *MongoExpenseTypeRepository) FindOrCreate(ctx context.Context, et *domain.ExpenseType) (uuid.UUID, error) {
	doc := toMongoExpenseType(et)
	filter := bson.M{
		"account_id":   doc.AccountID,
		"expense_type": doc.ExpenseType,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out mongoExpenseType
	err := r.coll().FindOneAndUpdate(ctx, filter, bson.M{"$setOnInsert": doc}, opts).Decode(&out)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find or create expense type: %w", err)
	}
	return uuid.Parse(out.ExpenseTypeID)
}

func (r *MongoExpenseTypeRepository) Update(ctx context.Context, expenseTypeID uuid.UUID, name string) (*domain.ExpenseType, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"expense_type_id": expenseTypeID.String()},
		bson.M{"$set": bson.M{"expense_type": name}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrExpenseTypeExists
		}
		return nil, fmt.Errorf("update expense type: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrExpenseTypeNotFound
	}
	return r.FindByID(ctx, expenseTypeID)
}

func (r *MongoExpenseTypeRepository) List(ctx context.Context, vis domain.Visibility) ([]domain.ExpenseType, error) {
	filter := bson.M{"account_id": vis.AccountID.String()}
	if vis.UserID != nil {
		filter["user_id"] = vis.UserID.String()
	}
	return r.list(ctx, filter)
}

func (r *MongoExpenseTypeRepository) ListAll(ctx context.Context) ([]domain.ExpenseType, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoExpenseTypeRepository) list(ctx context.Context, filter bson.M) ([]domain.ExpenseType, error) {
	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list expense types: %w", err)
	}
	defer cursor.Close(ctx)

	var expenseTypes []domain.ExpenseType
	for cursor.Next(ctx) {
		var met mongoExpenseType
		if err := cursor.Decode(&met); err != nil {
			return nil, fmt.Errorf("decode expense type: %w", err)
		}
		et, err := met.toDomain()
		if err != nil {
			return nil, err
		}
		expenseTypes = append(expenseTypes, et)
	}
	return expenseTypes, cursor.Err()
}
