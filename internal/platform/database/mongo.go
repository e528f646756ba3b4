package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizhub/internal/platform/config"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func Connect() {
	var err error
	Client, err = mongo.Connect(
		options.Client().
			ApplyURI(config.AppConfig.MongoURI).
			SetConnectTimeout(10 * time.Second).
			SetMaxPoolSize(25),
	)
	if err != nil {
		log.Fatalf("Error creating mongo client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Verify connection
	if err = Client.Ping(ctx, nil); err != nil {
		log.Fatalf("Error connecting to mongo: %v", err)
	}

	DB = Client.Database(config.AppConfig.MongoDB)

	if err := ensureIndexes(ctx, DB); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	fmt.Println("Successfully connected to MongoDB!")
}

func Close() {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Client.Disconnect(ctx)
		fmt.Println("Mongo connection closed.")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// Unique email backs the duplicate-registration check against races.
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := db.Collection("questions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "question_set_id", Value: 1}, {Key: "position", Value: 1}},
	}); err != nil {
		return err
	}
	if _, err := db.Collection("test_results").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "test_id", Value: 1}, {Key: "student_id", Value: 1}},
	}); err != nil {
		return err
	}
	return nil
}
