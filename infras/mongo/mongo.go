package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todo/config"
)

type Connection struct {
	Client   *mongoDriver.Client
	Database *mongoDriver.Database
}

func New(config *config.Config) *Connection {
	mongoConfig := config.DB.Mongo

	client := CreateMongoClient(
		mongoConfig.URI,
		time.Duration(mongoConfig.TimeoutSeconds)*time.Second,
		mongoConfig.MaxRetry,
		mongoConfig.RetryWaitTime,
	)
	if client == nil {
		log.Fatal().Str("database", mongoConfig.Database).Msg("Could not connect to MongoDB")
	}

	return &Connection{
		Client:   client,
		Database: client.Database(mongoConfig.Database),
	}
}

// CreateMongoClient connects and pings the primary, retrying up to maxRetry times.
// It returns nil when every attempt failed.
func CreateMongoClient(uri string, timeout time.Duration, maxRetry, waitTime int) *mongoDriver.Client {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	for retry := range maxRetry {
		client, err := connect(opts, timeout)
		if err == nil {
			log.Info().Strs("hosts", opts.Hosts).Msg("Connected to MongoDB")

			return client
		}

		log.
			Error().
			Err(err).
			Strs("hosts", opts.Hosts).
			Int("attempt", retry+1).
			Msg("Failed connecting to MongoDB, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

func connect(opts *options.ClientOptions, timeout time.Duration) (*mongoDriver.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongoDriver.Connect(ctx, opts)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, err //nolint:wrapcheck
	}

	return client, nil
}

// Close disconnects the client, waiting at most timeout for in-flight operations.
func (c *Connection) Close(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return c.Client.Disconnect(ctx) //nolint:wrapcheck
}
