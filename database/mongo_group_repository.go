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

// ErrGroupNotFound is returned when a lookup matches no group
var ErrGroupNotFound = errors.New("group not found")

// MongoGroupRepository stores groups (with embedded jornadas) in the "groups"
// collection.
type MongoGroupRepository struct {
	collection *mongo.Collection
}

// NewMongoGroupRepository creates a new MongoDB group repository
func NewMongoGroupRepository(db *MongoDB) *MongoGroupRepository {
	return &MongoGroupRepository{
		collection: db.GetCollection("groups"),
	}
}

// Create inserts a new group
func (r *MongoGroupRepository) Create(ctx context.Context, group *models.Group) error {
	group.CreatedAt = time.Now()
	group.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, group)
	return err
}

// GetByID retrieves a group by ID
func (r *MongoGroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	var group models.Group
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	return &group, nil
}

// GetByCode retrieves a group by its invite code
func (r *MongoGroupRepository) GetByCode(ctx context.Context, code string) (*models.Group, error) {
	var group models.Group
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	return &group, nil
}

// GetByMember retrieves every group a user belongs to
func (r *MongoGroupRepository) GetByMember(ctx context.Context, userID string) ([]models.Group, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"members": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// AddMember appends a user to the roster. $addToSet keeps the roster free of
// duplicates even if two join requests race.
func (r *MongoGroupRepository) AddMember(ctx context.Context, groupID, userID string) error {
	update := bson.M{
		"$addToSet": bson.M{"members": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// AddJornada appends a jornada to the group
func (r *MongoGroupRepository) AddJornada(ctx context.Context, groupID string, jornada models.Jornada) error {
	update := bson.M{
		"$push": bson.M{"jornadas": jornada},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes for the groups collection
func (r *MongoGroupRepository) EnsureIndexes(ctx context.Context) error {
	codeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.collection.Indexes().CreateOne(ctx, codeIndex)
	return err
}
