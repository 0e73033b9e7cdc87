package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection     *mongo.Collection
	CategoryCollection *mongo.Collection
	ProductCollection  *mongo.Collection
	OfferCollection    *mongo.Collection
	AddressCollection  *mongo.Collection
	OrderCollection    *mongo.Collection
	ContactCollection  *mongo.Collection
	CountersCollection *mongo.Collection
	Client             *mongo.Client
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

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("shopdb").Collection("users")
	CategoryCollection = Client.Database("shopdb").Collection("categories")
	ProductCollection = Client.Database("shopdb").Collection("products")
	OfferCollection = Client.Database("shopdb").Collection("offers")
	AddressCollection = Client.Database("shopdb").Collection("addresses")
	OrderCollection = Client.Database("shopdb").Collection("orders")
	ContactCollection = Client.Database("shopdb").Collection("contacts")
	CountersCollection = Client.Database("shopdb").Collection("counters")
}

// NextSequence returns the next value of a named counter. Catalog entities
// carry numeric ids because the cart key format distinguishes products from
// offers by a numeric tag.
func NextSequence(ctx context.Context, name string) (int64, error) {
	res := CountersCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
