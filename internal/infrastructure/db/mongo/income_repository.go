package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoIncomeRepository struct {
	db *mongo.Database
}

func NewIncomeRepository(db *mongo.Database) *MongoIncomeRepository {
	return &MongoIncomeRepository{db: db}
}

type mongoIncome struct {
	AccountID   string `bson:"account_id"`
	AccountName string `bson:"account_name"`
	UserID      string `bson:"user_id"`
	UserName    string `bson:"user_name"`
	TransID     string `bson:"trans_id"`
	Amount      int64  `bson:"amount"`
	Method      string `bson:"method"`
	Status      bool   `bson:"status"`
	CreatedAt   int64  `bson:"created_at"`
}

func (m mongoIncome) toDomain() (domain.Income, error) {
	accountID, err := uuid.Parse(m.AccountID)
	if err != nil {
		return domain.Income{}, fmt.Errorf("income account id: %w", err)
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return domain.Income{}, fmt.Errorf("income user id: %w", err)
	}
	transID, err := uuid.Parse(m.TransID)
	if err != nil {
		return domain.Income{}, fmt.Errorf("income trans id: %w", err)
	}
	return domain.Income{
		AccountID:   accountID,
		AccountName: m.AccountName,
		UserID:      userID,
		UserName:    m.UserName,
		TransID:     transID,
		Amount:      m.Amount,
		Method:      m.Method,
		Status:      m.Status,
		CreatedAt:   unixToTime(m.CreatedAt),
	}, nil
}

func (r *MongoIncomeRepository) coll() *mongo.Collection {
	return r.db.Collection(incomeCollection)
}

func (r *MongoIncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	doc := mongoIncome{
		AccountID:   income.AccountID.String(),
		AccountName: income.AccountName,
		UserID:      income.UserID.String(),
		UserName:    income.UserName,
		TransID:     income.TransID.String(),
		Amount:      income.Amount,
		Method:      income.Method,
		Status:      income.Status,
		CreatedAt:   income.CreatedAt.Unix(),
	}
	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

func (r *MongoIncomeRepository) FindByID(ctx context.Context, transID uuid.UUID) (*domain.Income, error) {
	var mi mongoIncome
	if err := r.coll().FindOne(ctx, bson.M{"trans_id": transID.String()}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, fmt.Errorf("find income: %w", err)
	}
	income, err := mi.toDomain()
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *MongoIncomeRepository) UpdateAmount(ctx context.Context, transID uuid.UUID, amount int64) (*domain.Income, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"trans_id": transID.String()},
		bson.M{"$set": bson.M{"amount": amount}})
	if err != nil {
		return nil, fmt.Errorf("update income: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrIncomeNotFound
	}
	return r.FindByID(ctx, transID)
}

// ListForDay returns visible incomes whose created_at falls on the given
// UTC calendar day.
func (r *MongoIncomeRepository) ListForDay(ctx context.Context, vis domain.Visibility, day time.Time) ([]domain.Income, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	filter := bson.M{
		"account_id": vis.AccountID.String(),
		"created_at": bson.M{"$gte": start.Unix(), "$lt": end.Unix()},
	}
	if vis.UserID != nil {
		filter["user_id"] = vis.UserID.String()
	}
	return r.list(ctx, filter)
}

func (r *MongoIncomeRepository) ListAll(ctx context.Context) ([]domain.Income, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoIncomeRepository) list(ctx context.Context, filter bson.M) ([]domain.Income, error) {
	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer cursor.Close(ctx)

	var incomes []domain.Income
	for cursor.Next(ctx) {
		var mi mongoIncome
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode income: %w", err)
		}
		income, err := mi.toDomain()
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, cursor.Err()
}
