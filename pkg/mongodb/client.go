package mongodb

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 5 * time.Second

// BuildURI returns cfg.URI when set, otherwise a mongodb:// URI assembled from
// the discrete host, port and credential fields.
func BuildURI(cfg Config) string {
	if cfg.URI != "" {
		return cfg.URI
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u.String()
}

func timeoutOf(cfg Config) time.Duration {
	if cfg.Timeout <= 0 {
		return defaultTimeout
	}
	return cfg.Timeout
}

// clientOptions bounds connecting, server selection and every operation by
// cfg.Timeout.
func clientOptions(cfg Config) *options.ClientOptions {
	timeout := timeoutOf(cfg)
	return options.Client().
		ApplyURI(BuildURI(cfg)).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetTimeout(timeout)
}

// Connect opens a client and verifies the deployment is reachable.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	timeout := timeoutOf(cfg)

	client, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := Ping(ctx, client, timeout); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Ping checks the primary is reachable within timeout.
func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}

// Disconnect closes the client, bounded by timeout.
func Disconnect(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	return nil
}
