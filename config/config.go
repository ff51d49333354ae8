package config

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Principal is the decoded identity attached to authenticated requests.
type Principal struct {
	UID  string
	Role string
}

// TokenVerifier validates a bearer token against the identity provider.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// FileStorage stores raw bytes in an external blob store and returns a
// public URL.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// PushMessage is one title/body/data/recipient tuple for the push gateway.
type PushMessage struct {
	Token   string                 `json:"to"`
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Data    map[string]interface{} `json:"data,omitempty"`
	IconURL string                 `json:"icon,omitempty"`
}

// PushGateway delivers push notifications in batches. Individual delivery
// failures are logged by the implementation and never fail the batch.
type PushGateway interface {
	Send(ctx context.Context, messages []PushMessage) error
}

type Config struct {
	MongoClient *mongo.Client
	DBName      string
	Port        string
	JWTSecret   string
	SweepEvery  string

	Tokens TokenVerifier
	Files  FileStorage
	Push   PushGateway
}

// DB returns the application database handle.
func (cfg *Config) DB() *mongo.Database {
	return cfg.MongoClient.Database(cfg.DBName)
}

// Load reads the environment (optionally from .env) and connects to Mongo.
// External capabilities (Tokens, Files, Push) are attached by the caller.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		grip.Info("no .env file found, using environment")
	}

	uri := getenv("MONGODB_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "pinging mongo")
	}

	return &Config{
		MongoClient: client,
		DBName:      getenv("DB_NAME", "events"),
		Port:        getenv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SweepEvery:  getenv("SWEEP_EVERY", "@every 1m"),
	}, nil
}

// Close disconnects the Mongo client.
func (cfg *Config) Close(ctx context.Context) error {
	return cfg.MongoClient.Disconnect(ctx)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
