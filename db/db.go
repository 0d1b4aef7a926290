package db

import (
	"context"
	"log"

	"folio/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	BlogsCollection          *mongo.Collection
	CertificationsCollection *mongo.Collection
	ProjectsCollection       *mongo.Collection
	ReviewsCollection        *mongo.Collection
	TechnologiesCollection   *mongo.Collection
	UsersCollection          *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	cfg := config.Load()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(cfg.MongoDB)
	BlogsCollection = database.Collection("blogs")
	CertificationsCollection = database.Collection("certifications")
	ProjectsCollection = database.Collection("projects")
	ReviewsCollection = database.Collection("reviews")
	TechnologiesCollection = database.Collection("technologies")
	UsersCollection = database.Collection("users")
}

// EnsureIndexes creates the unique email index on users. Called once at startup.
func EnsureIndexes(ctx context.Context) error {
	_, err := UsersCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
