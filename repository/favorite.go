package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dcode-github/property_listing_card/models"
)

type MongoFavoriteRepository struct {
	coll *mongo.Collection
}

func NewMongoFavoriteRepository(db *mongo.Database) *MongoFavoriteRepository {
	return &MongoFavoriteRepository{coll: db.Collection(FavoriteCollection)}
}

func (r *MongoFavoriteRepository) Add(ctx context.Context, userID, propertyID string) (models.Favorite, error) {
	fav := models.Favorite{
		ID:         primitive.NewObjectID().Hex(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.coll.InsertOne(ctx, fav)
	if mongo.IsDuplicateKeyError(err) {
		return models.Favorite{}, ErrConflict
	}
	if err != nil {
		return models.Favorite{}, err
	}
	return fav, nil
}

func (r *MongoFavoriteRepository) Remove(ctx context.Context, userID, propertyID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"userID": userID, "propertyID": propertyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoFavoriteRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"userID": userID, "propertyID": propertyID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MongoFavoriteRepository) FavoriteIDs(ctx context.Context, userID string, propertyIDs []string) (map[string]bool, error) {
	favMap := make(map[string]bool)
	if userID == "" || len(propertyIDs) == 0 {
		return favMap, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{
		"userID":     userID,
		"propertyID": bson.M{"$in": propertyIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var fav models.Favorite
		if err := cursor.Decode(&fav); err != nil {
			return nil, err
		}
		favMap[fav.PropertyID] = true
	}
	return favMap, cursor.Err()
}

// ListProperties joins the user's favorites onto their listings, newest
// favorite first.
func (r *MongoFavoriteRepository) ListProperties(ctx context.Context, userID string) ([]models.Property, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userID": userID}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PropertyCollection,
			"localField":   "propertyID",
			"foreignField": "_id",
			"as":           "propertyDetails",
		}}},
		{{Key: "$unwind", Value: "$propertyDetails"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$propertyDetails"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	for i := range properties {
		properties[i].IsFavorite = true
	}
	return properties, nil
}
