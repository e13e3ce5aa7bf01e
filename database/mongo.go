package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database) {
	rawString := "mongodb+srv://%s:%s@adforexpre.mongodb.net/ADForexPre"
	uri := fmt.Sprintf(rawString,
		sysConfigs.Config.MongoUser,
		sysConfigs.Config.MongoPassword,
	)

	clientOptions := options.Client().ApplyURI(uri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal().Msgf("Could not ping MongoDB: %v", err)
	}

	log.Info().Msg("Connected to MongoDB (ADForexPre)")

	return client, client.Database("ADForexPre")
}
