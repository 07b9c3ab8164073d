package util

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadEnvFor reads a single variable, loading .env first when present.
func LoadEnvFor(v string) (x string) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	x = os.Getenv(v)
	return
}

// ConnectDB initializes the mongo connection. The client connects in
// the background; the startup migration run is the first call that
// actually requires the server to be reachable.
func ConnectDB() (client *mongo.Client) {
	uri := LoadEnvFor("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("MongoDB not reachable yet:", err)
		return
	}

	log.Println("MongoDB connection successful")
	return
}

// DB client instance
var DB = ConnectDB()

// GetCollection gets a collection from the okaziyo database.
func GetCollection(client *mongo.Client, name string) (collection *mongo.Collection) {
	collection = client.Database("okaziyo").Collection(name)
	return
}

// ConnectRedis initializes the redis connection used for the token
// blacklist and the rate limiter store.
func ConnectRedis() *redis.Client {
	redisUrl := LoadEnvFor("REDIS_URL")
	if redisUrl == "" {
		redisUrl = "redis://localhost:6379"
	}

	addr, err := redis.ParseURL(redisUrl)
	if err != nil {
		log.Fatal(err)
	}

	return redis.NewClient(addr)
}

var REDIS = ConnectRedis()
