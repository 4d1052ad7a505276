package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerkeep/ledgerkeep/internal/core/domain"
)

type MongoUserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{db: db}
}

type mongoUser struct {
	AccountID   string `bson:"account_id"`
	AccountName string `bson:"account_name"`
	UserID      string `bson:"user_id"`
	UserName    string `bson:"user_name"`
	Email       string `bson:"email"`
	Phone       string `bson:"phone"`
	Password    string `bson:"password"`
	Role        string `bson:"role"`
	CreatedAt   int64  `bson:"created_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		AccountID:   u.AccountID.String(),
		AccountName: u.AccountName,
		UserID:      u.UserID.String(),
		UserName:    u.UserName,
		Email:       u.Email,
		Phone:       u.Phone,
		Password:    u.Password,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Unix(),
	}
}

func (m mongoUser) toDomain() (domain.User, error) {
	accountID, err := uuid.Parse(m.AccountID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user account id: %w", err)
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user id: %w", err)
	}
	return domain.User{
		AccountID:   accountID,
		AccountName: m.AccountName,
		UserID:      userID,
		UserName:    m.UserName,
		Email:       m.Email,
		Phone:       m.Phone,
		Password:    m.Password,
		Role:        domain.Role(m.Role),
		CreatedAt:   unixToTime(m.CreatedAt),
	}, nil
}

func (r *MongoUserRepository) coll() *mongo.Collection {
	return r.db.Collection(userCollection)
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.coll().InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, accountID, userID uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"account_id": accountID.String(),
		"user_id":    userID.String(),
	})
}

func (r *MongoUserRepository) FindByName(ctx context.Context, accountID uuid.UUID, userName string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"account_id": accountID.String(),
		"user_name":  userName,
	})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll().FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user, err := mu.toDomain()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdateRole(ctx context.Context, accountID uuid.UUID, userName string, role domain.Role) (*domain.User, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"account_id": accountID.String(), "user_name": userName},
		bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByName(ctx, accountID, userName)
}

func (r *MongoUserRepository) OtherAdminExists(ctx context.Context, accountID, excludeUserID uuid.UUID) (bool, error) {
	n, err := r.coll().CountDocuments(ctx, bson.M{
		"account_id": accountID.String(),
		"user_id":    bson.M{"$ne": excludeUserID.String()},
		"role":       string(domain.RoleAccountAdmin),
	})
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return n > 0, nil
}

// Delete removes the user together with their incomes, expenditures,
// expense types and sessions in one transaction.
func (r *MongoUserRepository) Delete(ctx context.Context, accountID, userID uuid.UUID) error {
	filter := bson.M{
		"account_id": accountID.String(),
		"user_id":    userID.String(),
	}
	return inTransaction(ctx, r.db.Client(), func(sc mongo.SessionContext) error {
		for _, coll := range []string{
			incomeCollection,
			expenditureCollection,
			expenseTypeCollection,
			sessionCollection,
		} {
			if _, err := r.db.Collection(coll).DeleteMany(sc, filter); err != nil {
				return fmt.Errorf("cascade %s: %w", coll, err)
			}
		}
		res, err := r.coll().DeleteOne(sc, filter)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if res.DeletedCount == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (r *MongoUserRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.User, error) {
	return r.list(ctx, bson.M{"account_id": accountID.String()})
}

func (r *MongoUserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoUserRepository) list(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		user, err := mu.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, cursor.Err()
}
