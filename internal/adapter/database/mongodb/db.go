package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskmaster/pkg/config"
)

const (
	tasksCollection = "tasks"
	connectTimeout  = 10 * time.Second
)

// DB wraps the shared mongo client. It is created once at startup and the
// driver handles pooling across concurrent requests.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))

	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.MongoDatabase),
	}, nil
}

func (db *DB) Tasks() *mongo.Collection {
	return db.database.Collection(tasksCollection)
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
