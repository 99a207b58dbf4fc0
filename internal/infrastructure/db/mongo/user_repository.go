package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

const userCollection = "users"

// UserRepository is the MongoDB-backed implementation of
// ports.UserRepository. User ids are application-generated UUIDs stored as
// the document _id.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type userDoc struct {
	ID              string `bson:"_id"`
	Username        string `bson:"username"`
	Email           string `bson:"email"`
	LinkedinLink    string `bson:"linkedin_link,omitempty"`
	PasswordHash    string `bson:"password_hash"`
	PhoneNumber     string `bson:"phone_number,omitempty"`
	EmailCredential string `bson:"email_credential,omitempty"`
	CreatedAt       int64  `bson:"created_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		LinkedinLink:    user.LinkedinLink,
		PasswordHash:    user.PasswordHash,
		PhoneNumber:     user.PhoneNumber,
		EmailCredential: user.EmailCredential,
		CreatedAt:       user.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:              d.ID,
		Username:        d.Username,
		Email:           d.Email,
		LinkedinLink:    d.LinkedinLink,
		PasswordHash:    d.PasswordHash,
		PhoneNumber:     d.PhoneNumber,
		EmailCredential: d.EmailCredential,
		CreatedAt:       unixToTime(d.CreatedAt),
	}
}
