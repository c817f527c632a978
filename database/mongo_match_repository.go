package database

import (
	"context"
	"errors"
	"fmt"
	"prode-go/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrMatchNotFound is returned when a lookup matches no match
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchFinished is returned when an operation requires an unfinished
	// match but the match was already finalized.
	ErrMatchFinished = errors.New("match already finished")
)

// MongoMatchRepository stores matches (with embedded predictions) in the
// "matches" collection.
type MongoMatchRepository struct {
	collection *mongo.Collection
}

// NewMongoMatchRepository creates a new MongoDB match repository
func NewMongoMatchRepository(db *MongoDB) *MongoMatchRepository {
	return &MongoMatchRepository{
		collection: db.GetCollection("matches"),
	}
}

// Create inserts a new match
func (r *MongoMatchRepository) Create(ctx context.Context, match *models.Match) error {
	if match.Predictions == nil {
		match.Predictions = make(map[string]models.Prediction)
	}
	match.CreatedAt = time.Now()
	match.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, match)
	return err
}

// GetByID retrieves a match by ID
func (r *MongoMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return &match, nil
}

// FindByGroup retrieves all matches of a group sorted by kickoff ascending.
// The sort order is what makes streak aggregation downstream meaningful.
func (r *MongoMatchRepository) FindByGroup(ctx context.Context, groupID string) ([]models.Match, error) {
	return r.find(ctx, bson.M{"group_id": groupID})
}

// FindFinishedByGroup retrieves a group's finished matches sorted by kickoff
// ascending.
func (r *MongoMatchRepository) FindFinishedByGroup(ctx context.Context, groupID string) ([]models.Match, error) {
	return r.find(ctx, bson.M{"group_id": groupID, "finished": true})
}

// FindFinishedByPredictor retrieves every finished match, in any group, that
// carries a prediction from the given user. Used for the global achievement
// scan.
func (r *MongoMatchRepository) FindFinishedByPredictor(ctx context.Context, userID string) ([]models.Match, error) {
	filter := bson.M{
		"finished": true,
		fmt.Sprintf("predictions.%s", userID): bson.M{"$exists": true},
	}
	return r.find(ctx, filter)
}

func (r *MongoMatchRepository) find(ctx context.Context, filter bson.M) ([]models.Match, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err = cursor.All(ctx, &matches); err != nil {
		return nil, err
	}

	return matches, nil
}

// UpsertPrediction writes a user's prediction into an unfinished match. The
// finished=false guard means a prediction can never land on a match that was
// finalized between the service's read and this write.
func (r *MongoMatchRepository) UpsertPrediction(ctx context.Context, matchID string, pred models.Prediction) error {
	filter := bson.M{"_id": matchID, "finished": false}
	update := bson.M{
		"$set": bson.M{
			fmt.Sprintf("predictions.%s", pred.UserID): pred,
			"updated_at": time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing match from one that already finished
		if _, getErr := r.GetByID(ctx, matchID); getErr != nil {
			return getErr
		}
		return ErrMatchFinished
	}
	return nil
}

// Finalize declares the result and writes every scored prediction in one
// conditional document update. The finished=false filter makes
// finalize-plus-score an atomic compare-and-set: a second finalization of the
// same match (or a concurrent one) fails with ErrMatchFinished instead of
// silently overwriting scores.
func (r *MongoMatchRepository) Finalize(ctx context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) (*models.Match, error) {
	filter := bson.M{"_id": matchID, "finished": false}
	update := bson.M{
		"$set": bson.M{
			"finished":    true,
			"result":      result,
			"predictions": scored,
			"updated_at":  time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var match models.Match
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			if _, getErr := r.GetByID(ctx, matchID); getErr != nil {
				return nil, getErr
			}
			return nil, ErrMatchFinished
		}
		return nil, err
	}

	return &match, nil
}

// ReplaceScores rewrites the predictions of an already-finished match. Used
// by rescoring after a result correction; the finished=true guard is the
// inverse of Finalize's.
func (r *MongoMatchRepository) ReplaceScores(ctx context.Context, matchID string, result models.MatchResult, scored map[string]models.Prediction) error {
	filter := bson.M{"_id": matchID, "finished": true}
	update := bson.M{
		"$set": bson.M{
			"result":      result,
			"predictions": scored,
			"updated_at":  time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// Delete removes a match. Administrative deletion is the only mutation
// allowed on a finished match besides rescoring.
func (r *MongoMatchRepository) Delete(ctx context.Context, matchID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": matchID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes for the matches collection
func (r *MongoMatchRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "finished", Value: 1}}},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
