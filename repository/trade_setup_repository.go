package repository

import (
	"context"
	"fmt"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TradeSetupRepository struct {
	collection *mongo.Collection
}

func NewTradeSetupRepository(db *mongo.Database) *TradeSetupRepository {
	return &TradeSetupRepository{
		collection: db.Collection("trade_setups"),
	}
}

// Insert stores a new setup and returns it with its generated id.
func (r *TradeSetupRepository) Insert(ctx context.Context, setup model.TradeSetup) (*model.TradeSetup, error) {
	if setup.ID.IsZero() {
		setup.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, setup)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade setup: %w", err)
	}

	return &setup, nil
}

// FindByUserID lists a user's setups, newest first.
func (r *TradeSetupRepository) FindByUserID(ctx context.Context, userID int64) ([]model.TradeSetup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	setups := []model.TradeSetup{}
	if err := cursor.All(ctx, &setups); err != nil {
		return nil, fmt.Errorf("failed to decode trade setups: %w", err)
	}

	return setups, nil
}

// DeleteByID removes one setup scoped to its owner and reports how many
// documents matched.
func (r *TradeSetupRepository) DeleteByID(ctx context.Context, id primitive.ObjectID, userID int64) (int64, error) {
	filter := bson.M{
		"_id":    id,
		"userId": userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
