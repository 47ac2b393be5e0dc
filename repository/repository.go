// Package repository persists listings, favorites and users in MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcode-github/property_listing_card/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

const (
	PropertyCollection = "properties"
	FavoriteCollection = "favorites"
	UserCollection     = "users"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	Get(ctx context.Context, id string) (models.Property, error)
	List(ctx context.Context, q Query) ([]models.Property, error)
	// Update and Delete only touch listings created by owner.
	Update(ctx context.Context, id, owner string, fields bson.M) error
	Delete(ctx context.Context, id, owner string) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, propertyID string) (models.Favorite, error)
	Remove(ctx context.Context, userID, propertyID string) error
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
	// FavoriteIDs reports which of propertyIDs the user has favorited.
	FavoriteIDs(ctx context.Context, userID string, propertyIDs []string) (map[string]bool, error)
	ListProperties(ctx context.Context, userID string) ([]models.Property, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByUserID(ctx context.Context, userID string) (models.User, error)
}

// EnsureIndexes creates the unique indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(FavoriteCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userID", Value: 1}, {Key: "propertyID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(UserCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userID", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(PropertyCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}
