package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	BookingsCollection    *mongo.Collection
	CardsCollection       *mongo.Collection
	PlatformsCollection   *mongo.Collection
	DealersCollection     *mongo.Collection
	DealerBatchCollection *mongo.Collection
	WalletCollection      *mongo.Collection
	CountersCollection    *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("bookingdb").Collection("users")
	BookingsCollection = Client.Database("bookingdb").Collection("bookings")
	CardsCollection = Client.Database("bookingdb").Collection("cards")
	PlatformsCollection = Client.Database("bookingdb").Collection("platforms")
	DealersCollection = Client.Database("bookingdb").Collection("dealers")
	DealerBatchCollection = Client.Database("bookingdb").Collection("dealerbatches")
	WalletCollection = Client.Database("bookingdb").Collection("wallets")
	CountersCollection = Client.Database("bookingdb").Collection("counters")
}
