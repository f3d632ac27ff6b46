// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"roster/config"
	"roster/internal/domain/lifecycle"
	"roster/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and hands out the service database handle.
// The connection is process-wide: initialized once at startup and reused by
// all requests.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

			return ensureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

// ensureIndexes creates the unique indexes the credential workflow relies on.
// Uniqueness lives here, in the store's constraint mechanism, so two signups
// racing on the same username resolve to exactly one success without any
// application-level locking.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(model.CollectionName).Indexes().CreateMany(ctx, indexes); err != nil {
		return errors.Wrap(err, "failed to create unique indexes on users")
	}

	return nil
}
