package database

import (
	"context"
	"errors"
	"prode-go/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPaymentNotFound is returned when a lookup matches no payment
var ErrPaymentNotFound = errors.New("payment not found")

// MongoPaymentRepository stores upgrade payments in the "payments" collection
type MongoPaymentRepository struct {
	collection *mongo.Collection
}

// NewMongoPaymentRepository creates a new MongoDB payment repository
func NewMongoPaymentRepository(db *MongoDB) *MongoPaymentRepository {
	return &MongoPaymentRepository{
		collection: db.GetCollection("payments"),
	}
}

// Create inserts a new payment request
func (r *MongoPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// GetByID retrieves a payment by ID
func (r *MongoPaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// FindPending retrieves all payments awaiting review, oldest first
func (r *MongoPaymentRepository) FindPending(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"status": models.PaymentStatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// SetStatus records the review decision. The pending guard makes review a
// one-shot operation even if two reviewers race.
func (r *MongoPaymentRepository) SetStatus(ctx context.Context, paymentID string, status models.PaymentStatus, reviewerID string) error {
	now := time.Now()
	filter := bson.M{"_id": paymentID, "status": models.PaymentStatusPending}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
