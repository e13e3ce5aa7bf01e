package repository

import (
	"context"

	"github.com/Ebesoh-Adrian/ADForexPre/database"
	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
		counters:   db.Collection("counters"),
	}
}

func (r *UserRepository) Insert(ctx context.Context, user model.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) FindOneByFilter(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PatchFields applies a partial $set and returns the updated user.
func (r *UserRepository) PatchFields(ctx context.Context, userId int64, fields bson.M) (*model.User, error) {
	return database.UpdateGeneric[model.User](ctx, r.collection, bson.M{"_id": userId}, fields)
}

// GetNextSequence increments and returns the named counter, creating it
// on first use.
func (r *UserRepository) GetNextSequence(ctx context.Context, sequenceName string) (int, error) {
	filter := bson.M{"_id": sequenceName}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil && err != mongo.ErrNoDocuments {
		return 0, err
	}

	return counter.Seq, nil
}
