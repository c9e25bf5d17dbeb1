package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalog/internal/middleware"
	"catalog/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string

	// Storage
	mongoDB        *mongo.Database
	itemCollection string
	pinger         Pinger

	// Middleware
	middlewareConfig middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxies allowed to set X-Forwarded-For.
	// Empty means the peer address is the client.
	TrustedProxies  []string

	// Storage
	MongoDB        *mongo.Database
	ItemCollection string
	Pinger         Pinger

	// Middleware
	RateLimit middleware.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  cfg.ShutdownTimeout,
		trustedProxies:   cfg.TrustedProxies,
		mongoDB:          cfg.MongoDB,
		itemCollection:   cfg.ItemCollection,
		pinger:           cfg.Pinger,
		middlewareConfig: cfg.RateLimit,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mongoDB == nil {
		return errors.New("mongo database is required")
	}
	if srv.itemCollection == "" {
		return errors.New("item collection is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
