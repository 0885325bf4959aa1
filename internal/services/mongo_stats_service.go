package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/backend/internal/models"
)

// MongoStatsService keeps the singleton stats document under the
// fixed _id rather than relying on whichever document a bare FindOne
// happens to return.
type MongoStatsService struct {
	col *mongo.Collection
}

func NewMongoStatsService(db *mongo.Database) *MongoStatsService {
	return &MongoStatsService{col: db.Collection("stats")}
}

func (s *MongoStatsService) Get(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := s.col.FindOne(ctx, bson.M{"_id": statsDocID}).Decode(&stats); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (s *MongoStatsService) Upsert(ctx context.Context, stats *models.Stats) (*models.Stats, error) {
	update := bson.M{"$set": bson.M{
		"projectsDone":         stats.ProjectsDone,
		"yearsOfExperience":    stats.YearsOfExperience,
		"hoursOfCoding":        stats.HoursOfCoding,
		"commitsPushed":        stats.CommitsPushed,
		"cupsOfCoffeeConsumed": stats.CupsOfCoffeeConsumed,
	}}

	var out models.Stats
	err := s.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": statsDocID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
