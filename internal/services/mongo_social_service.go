package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/backend/internal/models"
)

// SocialStore holds the footer social links. ReplaceAll swaps the
// whole collection; there is no partial patch.
type SocialStore interface {
	List(ctx context.Context) ([]models.SocialLink, error)
	ReplaceAll(ctx context.Context, links []models.SocialLink) error
}

type MongoSocialService struct {
	col *mongo.Collection
}

func NewMongoSocialService(db *mongo.Database) *MongoSocialService {
	return &MongoSocialService{col: db.Collection("socials")}
}

func (s *MongoSocialService) List(ctx context.Context) ([]models.SocialLink, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	links := make([]models.SocialLink, 0)
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// ReplaceAll clears the collection and inserts the new list. This is
// a delete-then-insert, not a transaction: a reader racing the swap
// can observe a briefly empty collection.
func (s *MongoSocialService) ReplaceAll(ctx context.Context, links []models.SocialLink) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}

	docs := make([]interface{}, len(links))
	for i, link := range links {
		docs[i] = link
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}
