package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

const operationCollection = "operations"

// OperationRepository is the MongoDB-backed implementation of
// ports.OperationRepository. The collection is append-only.
type OperationRepository struct {
	ops   *mongo.Collection
	users *mongo.Collection
}

func NewOperationRepository(db *mongo.Database) *OperationRepository {
	return &OperationRepository{
		ops:   db.Collection(operationCollection),
		users: db.Collection(userCollection),
	}
}

type operationDoc struct {
	ID               string   `bson:"_id"`
	FromEmail        string   `bson:"from_email"`
	Subject          string   `bson:"subject"`
	Body             string   `bson:"body"`
	SuccessReceivers []string `bson:"success_receiver"`
	FailedReceivers  []string `bson:"failed_receiver"`
	ResumeID         string   `bson:"resume_id"`
	UserID           string   `bson:"user_id"`
	CreatedAt        int64    `bson:"created_at"`
}

// Create inserts the operation after independently verifying that the
// owning user still exists. Mongo has no foreign keys, so the referential
// check is explicit here; nothing is written when it fails.
func (r *OperationRepository) Create(ctx context.Context, op *domain.Operation) error {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": op.UserID})
	if err != nil {
		return fmt.Errorf("verify operation owner: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	doc := operationDoc{
		ID:               op.ID,
		FromEmail:        op.FromEmail,
		Subject:          op.Subject,
		Body:             op.Body,
		SuccessReceivers: op.SuccessReceivers,
		FailedReceivers:  op.FailedReceivers,
		ResumeID:         op.ResumeID,
		UserID:           op.UserID,
		CreatedAt:        op.CreatedAt.Unix(),
	}
	if doc.SuccessReceivers == nil {
		doc.SuccessReceivers = []string{}
	}
	if doc.FailedReceivers == nil {
		doc.FailedReceivers = []string{}
	}

	if _, err := r.ops.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

func (r *OperationRepository) ListByUser(ctx context.Context, userID string) ([]domain.OperationSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"_id": 1, "subject": 1, "created_at": 1})

	cursor, err := r.ops.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make([]domain.OperationSummary, 0)
	for cursor.Next(ctx) {
		var doc operationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}
		summaries = append(summaries, domain.OperationSummary{
			ID:        doc.ID,
			Subject:   doc.Subject,
			CreatedAt: unixToTime(doc.CreatedAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return summaries, nil
}

// FindByID is owner-scoped: the user id is part of the filter, so another
// user's record is indistinguishable from a missing one.
func (r *OperationRepository) FindByID(ctx context.Context, operationID, userID string) (*domain.Operation, error) {
	var doc operationDoc
	err := r.ops.FindOne(ctx, bson.M{"_id": operationID, "user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOperationNotFound
		}
		return nil, fmt.Errorf("find operation: %w", err)
	}

	return &domain.Operation{
		ID:               doc.ID,
		FromEmail:        doc.FromEmail,
		Subject:          doc.Subject,
		Body:             doc.Body,
		SuccessReceivers: doc.SuccessReceivers,
		FailedReceivers:  doc.FailedReceivers,
		ResumeID:         doc.ResumeID,
		UserID:           doc.UserID,
		CreatedAt:        unixToTime(doc.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
