package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/config"
	"github.com/hafiportrait/wedibox-api/internal/domain/photo"
	"github.com/hafiportrait/wedibox-api/internal/pkg/database"
	"github.com/hafiportrait/wedibox-api/internal/pkg/imaging"
	"github.com/hafiportrait/wedibox-api/internal/pkg/logger"
	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 20
	idleLogEvery = time.Minute
)

// thumbnailer is satisfied by *photo.Service
type thumbnailer interface {
	ProcessPendingThumbnails(ctx context.Context, batch int) (int, error)
}

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		LogFile:     cfg.LogFile,
	})

	log.Info().Msg("Starting thumbnail-worker")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	rdb, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, polling only")
		rdb = nil
	}
	defer database.CloseRedis(rdb)

	store, err := storage.New(storage.Config{
		Driver:      cfg.StorageDriver,
		LocalPath:   cfg.LocalStoragePath,
		LocalURL:    cfg.LocalStorageURL,
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3Bucket:    cfg.S3Bucket,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
		S3PublicURL: cfg.S3PublicURL,
		R2: storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise storage")
	}

	// Retries only read originals and write thumbnails; no event lookups or wake-ups.
	photos := photo.NewService(photo.NewRepository(db), nil, store, imaging.NewProcessor(imaging.DefaultConfig()), nil, cfg.MaxUploadBytes())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wake := make(chan struct{}, 1)
	if rdb != nil {
		go subscribeWakeups(ctx, rdb, wake)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info().Msg("Shutdown signal received")
		cancel()
	}()

	run(ctx, photos, wake, pollInterval)
	log.Info().Msg("thumbnail-worker stopped")
}

// run processes pending thumbnails on every tick or wake-up until ctx ends.
// A full batch is followed immediately by another pass.
func run(ctx context.Context, t thumbnailer, wake <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastIdleLog := time.Time{}

	for {
		select {
		case <-ctx.Done():
			return
		case <-wake:
		case <-ticker.C:
		}

		for ctx.Err() == nil {
			start := time.Now()
			done, err := t.ProcessPendingThumbnails(ctx, batchSize)
			if err != nil {
				log.Error().Err(err).Msg("DB error while listing pending thumbnails")
				break
			}
			if done == 0 {
				if now := time.Now(); lastIdleLog.IsZero() || now.Sub(lastIdleLog) >= idleLogEvery {
					log.Debug().Msg("Idle: no pending thumbnails")
					lastIdleLog = now
				}
				break
			}

			log.Info().Int("rendered", done).Dur("took", time.Since(start)).Msg("Thumbnails rendered")
			if done < batchSize {
				break
			}
		}
	}
}

func subscribeWakeups(ctx context.Context, rdb *redis.Client, wake chan<- struct{}) {
	sub := rdb.Subscribe(ctx, photo.ThumbnailChannel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			select {
			case wake <- struct{}{}:
			default:
			}
		}
	}
}
