package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/4lucard7/BlogApi/internal/api"
	"github.com/4lucard7/BlogApi/internal/api/handler"
	"github.com/4lucard7/BlogApi/internal/core/ports"
	"github.com/4lucard7/BlogApi/internal/infrastructure/blob"
	"github.com/4lucard7/BlogApi/internal/infrastructure/config"
	mongorepo "github.com/4lucard7/BlogApi/internal/infrastructure/db/mongo"
	redisrepo "github.com/4lucard7/BlogApi/internal/infrastructure/db/redis"
	"github.com/4lucard7/BlogApi/pkg/logger"
)

// @title        Blog API
// @version      1.0
// @description  Content sharing backend: users, posts, comments, categories, events and contact submissions.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisrepo.Connect(ctx, redisrepo.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	blobStore, err := blob.NewStore(blob.Config{
		URL:    cfg.Cloudinary.URL,
		Folder: cfg.Cloudinary.Folder,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store init failed")
	}

	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Blobs:     blobStore,
		JWTSecret: cfg.JWTSecret,
		Uploads: handler.UploadConfig{
			Dir:      cfg.Upload.Dir,
			MaxBytes: cfg.Upload.MaxBytes,
		},
		FeedPageSize: cfg.FeedPageSize,
		Log:          log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// indexer is implemented by every repository that maintains indexes.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

var _ ports.BlobStore = (*blob.Store)(nil)

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []indexer{
		mongorepo.NewUserRepository(db),
		mongorepo.NewPostRepository(db),
		mongorepo.NewCommentRepository(db),
		mongorepo.NewCategoryRepository(db),
		mongorepo.NewEventRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
