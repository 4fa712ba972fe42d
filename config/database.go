package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Collection names, one per entity type. Documents are keyed by the
// application-level "id" field, never by the store's _id.
const (
	UsersCollection              = "users"
	InventionsCollection         = "inventions"
	InventionVotesCollection     = "invention_votes"
	InventionRatingsCollection   = "invention_ratings"
	PeerReviewsCollection        = "peer_reviews"
	MentorshipRequestsCollection = "mentorship_requests"
	CommentsCollection           = "comments"
	NotificationsCollection      = "notifications"
	GroupsCollection             = "groups"
	ChatMessagesCollection       = "chat_messages"
	SuggestionsCollection        = "suggestions"
)

func InitDB() {
	// Get database settings from environment variables
	mongoURL := os.Getenv("MONGO_URL")
	dbName := os.Getenv("DB_NAME")

	if mongoURL == "" {
		log.Fatal("MONGO_URL environment variable is required")
	}
	if dbName == "" {
		log.Fatal("DB_NAME environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Database connected successfully")
}

// Coll returns a handle for the named collection.
func Coll(name string) *mongo.Collection {
	return DB.Collection(name)
}

// CloseDB disconnects the client on shutdown.
func CloseDB() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Warning: Failed to disconnect database client: %v", err)
	}
}
