package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/householdhq/tasks-api/config"
)

var (
	// Singleton Mongo client, created once by StartMongoDB and exposed
	// through GetCollection.
	mongoClient         *mongo.Client
	clientInstanceError error
	mongoOnce           sync.Once
	dbName              string
)

func GetCollection(name string) *mongo.Collection {
	return mongoClient.Database(dbName).Collection(name)
}

func StartMongoDB() error {
	uri := config.GetEnv("MONGODB_URI", "")
	if uri == "" {
		return errors.New("you must set your 'MONGODB_URI' environmental variable")
	}

	dbName = config.GetEnv("DATABASE", "")
	if dbName == "" {
		return errors.New("you must set your 'DATABASE' environmental variable")
	}

	// Perform connection creation operation only once.
	mongoOnce.Do(func() {
		clientOptions := options.Client().ApplyURI(uri)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			clientInstanceError = err
			return
		}
		// Check the connection
		if err = client.Ping(ctx, nil); err != nil {
			clientInstanceError = err
			return
		}
		mongoClient = client
	})

	return clientInstanceError
}

func CloseMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		panic(err)
	}
}
