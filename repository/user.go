package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dcode-github/property_listing_card/models"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(UserCollection)}
}

// Create stores u, which must already carry a hashed password.
func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"userID": u.UserID},
		bson.M{"email": u.Email},
	}}
	err := r.coll.FindOne(ctx, filter).Err()
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err = r.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func (r *MongoUserRepository) FindByUserID(ctx context.Context, userID string) (models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"userID": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
