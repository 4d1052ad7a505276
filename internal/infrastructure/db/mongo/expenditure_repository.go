package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoExpenditureRepository struct {
	db *mongo.Database
}

func NewExpenditureRepository(db *mongo.Database) *MongoExpenditureRepository {
	return &MongoExpenditureRepository{db: db}
}

type mongoExpenditure struct {
	AccountID     string `bson:"account_id"`
	AccountName   string `bson:"account_name"`
	UserID        string `bson:"user_id"`
	UserName      string `bson:"user_name"`
	ExpendID      string `bson:"expend_id"`
	Amount        int64  `bson:"amount"`
	ExpenseTypeID string `bson:"expense_type_id"`
	Status        bool   `bson:"status"`
	CreatedAt     int64  `bson:"created_at"`
}

func (m mongoExpenditure) toDomain() (domain.Expenditure, error) {
	accountID, err := uuid.Parse(m.AccountID)
	if err != nil {
		return domain.Expenditure{}, fmt.Errorf("expenditure account id: %w", err)
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return domain.Expenditure{}, fmt.Errorf("expenditure user id: %w", err)
	}
	expendID, err := uuid.Parse(m.ExpendID)
	if err != nil {
		return domain.Expenditure{}, fmt.Errorf("expend id: %w", err)
	}
	expenseTypeID, err := uuid.Parse(m.ExpenseTypeID)
	if err != nil {
		return domain.Expenditure{}, fmt.Errorf("expense type id: %w", err)
	}
	return domain.Expenditure{
		AccountID:     accountID,
		AccountName:   m.AccountName,
		UserID:        userID,
		UserName:      m.UserName,
		ExpendID:      expendID,
		Amount:        m.Amount,
		ExpenseTypeID: expenseTypeID,
		Status:        m.Status,
		CreatedAt:     unixToTime(m.CreatedAt),
	}, nil
}

func (r *MongoExpenditureRepository) coll() *mongo.Collection {
	return r.db.Collection(expenditureCollection)
}

func (r *MongoExpenditureRepository) Create(ctx context.Context, expend *domain.Expenditure) error {
	doc := mongoExpenditure{
		AccountID:     expend.AccountID.String(),
		AccountName:   expend.AccountName,
		UserID:        expend.UserID.String(),
		UserName:      expend.UserName,
		ExpendID:      expend.ExpendID.String(),
		Amount:        expend.Amount,
		ExpenseTypeID: expend.ExpenseTypeID.String(),
		Status:        expend.Status,
		CreatedAt:     expend.CreatedAt.Unix(),
	}
	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert expenditure: %w", err)
	}
	return nil
}

func (r *MongoExpenditureRepository) FindByID(ctx context.Context, expendID uuid.UUID) (*domain.Expenditure, error) {
	var me mongoExpenditure
	if err := r.coll().FindOne(ctx, bson.M{"expend_id": expendID.String()}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExpenditureNotFound
		}
		return nil, fmt.Errorf("find expenditure: %w", err)
	}
	expend, err := me.toDomain()
	if err != nil {
		return nil, err
	}
	return &expend, nil
}

func (r *MongoExpenditureRepository) Update(ctx context.Context, expendID uuid.UUID, amount int64, expenseTypeID uuid.UUID) (*domain.Expenditure, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"expend_id": expendID.String()},
		bson.M{"$set": bson.M{
			"amount":          amount,
			"expense_type_id": expenseTypeID.String(),
		}})
	if err != nil {
		return nil, fmt.Errorf("update expenditure: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrExpenditureNotFound
	}
	return r.FindByID(ctx, expendID)
}

func (r *MongoExpenditureRepository) List(ctx context.Context, vis domain.Visibility) ([]domain.Expenditure, error) {
	filter := bson.M{"account_id": vis.AccountID.String()}
	if vis.UserID != nil {
		filter["user_id"] = vis.UserID.String()
	}
	return r.list(ctx, filter)
}

func (r *MongoExpenditureRepository) ListAll(ctx context.Context) ([]domain.Expenditure, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoExpenditureRepository) list(ctx context.Context, filter bson.M) ([]domain.Expenditure, error) {
	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}
	defer cursor.Close(ctx)

	var expenditures []domain.Expenditure
	for cursor.Next(ctx) {
		var me mongoExpenditure
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode expenditure: %w", err)
		}
		expend, err := me.toDomain()
		if err != nil {
			return nil, err
		}
		expenditures = append(expenditures, expend)
	}
	return expenditures, cursor.Err()
}
