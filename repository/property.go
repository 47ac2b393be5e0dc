package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcode-github/property_listing_card/models"
)

// ProtectedFields cannot be changed through Update.
var ProtectedFields = []string{"_id", "id", "createdBy", "createdAt", "isFavorite"}

type MongoPropertyRepository struct {
	coll *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) *MongoPropertyRepository {
	return &MongoPropertyRepository{coll: db.Collection(PropertyCollection)}
}

// Create assigns an id when the listing has none.
func (r *MongoPropertyRepository) Create(ctx context.Context, p *models.Property) error {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func (r *MongoPropertyRepository) Get(ctx context.Context, id string) (models.Property, error) {
	var p models.Property
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Property{}, ErrNotFound
	}
	return p, err
}

func (r *MongoPropertyRepository) List(ctx context.Context, q Query) ([]models.Property, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))

	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *MongoPropertyRepository) Update(ctx context.Context, id, owner string, fields bson.M) error {
	for _, f := range ProtectedFields {
		delete(fields, f)
	}
	if len(fields) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id, "createdBy": owner}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPropertyRepository) Delete(ctx context.Context, id, owner string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "createdBy": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
