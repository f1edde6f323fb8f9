package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/config"
	"github.com/hafiportrait/wedibox-api/internal/domain/admin"
	"github.com/hafiportrait/wedibox-api/internal/domain/content"
	"github.com/hafiportrait/wedibox-api/internal/domain/event"
	"github.com/hafiportrait/wedibox-api/internal/domain/inquiry"
	"github.com/hafiportrait/wedibox-api/internal/domain/message"
	"github.com/hafiportrait/wedibox-api/internal/domain/photo"
	"github.com/hafiportrait/wedibox-api/internal/domain/pricing"
	"github.com/hafiportrait/wedibox-api/internal/middleware"
	"github.com/hafiportrait/wedibox-api/internal/pkg/database"
	"github.com/hafiportrait/wedibox-api/internal/pkg/email"
	"github.com/hafiportrait/wedibox-api/internal/pkg/imaging"
	"github.com/hafiportrait/wedibox-api/internal/pkg/jwt"
	"github.com/hafiportrait/wedibox-api/internal/pkg/logger"
	"github.com/hafiportrait/wedibox-api/internal/pkg/qrcode"
	"github.com/hafiportrait/wedibox-api/internal/pkg/ratelimit"
	pkgresponse "github.com/hafiportrait/wedibox-api/internal/pkg/response"
	"github.com/hafiportrait/wedibox-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		LogFile:     cfg.LogFile,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("storage", cfg.StorageDriver).
		Msg("Starting Wedibox API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting and thumbnail wake-ups disabled")
		redis = nil
	}
	defer database.CloseRedis(redis)

	store, err := storage.New(storageConfig(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise storage")
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AdminTokenTTL, cfg.GuestTokenTTL)
	qrService := qrcode.NewService(cfg.AppURL, cfg.QRServiceURL)
	processor := imaging.NewProcessor(imaging.DefaultConfig())

	var sender email.Sender = email.LogSender{}
	if cfg.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	}
	emailService := email.NewService(sender)
	defer emailService.Close()

	// ---------- Repositories ----------
	eventRepo := event.NewRepository(db)
	photoRepo := photo.NewRepository(db)
	messageRepo := message.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	pricingRepo := pricing.NewRepository(db)
	contentRepo := content.NewRepository(db)
	inquiryRepo := inquiry.NewRepository(db)

	// ---------- Services ----------
	eventService := event.NewService(eventRepo, qrService, jwtService, store)
	photoService := photo.NewService(photoRepo, eventService, store, processor, photo.NewRedisPublisher(redis), cfg.MaxUploadBytes())
	messageService := message.NewService(messageRepo, eventService)
	adminService := admin.NewService(adminRepo, photoService)
	pricingService := pricing.NewService(pricingRepo, store)
	contentService := content.NewService(contentRepo)
	inquiryService := inquiry.NewService(inquiryRepo, emailService, cfg.StudioEmail)

	// ---------- Rate limits ----------
	limitStore := ratelimit.NewRedisStore(redis)

	deps := &routerDeps{
		cfg:    cfg,
		jwt:    jwtService,
		health: db,

		verifyLimit:  ratelimit.New(limitStore, "verify", cfg.RateLimitVerify, cfg.RateLimitWindow).Middleware,
		uploadLimit:  ratelimit.New(limitStore, "upload", cfg.RateLimitUploads, cfg.RateLimitWindow).Middleware,
		writeLimit:   ratelimit.New(limitStore, "message", cfg.RateLimitWrites, cfg.RateLimitWindow).Middleware,
		inquiryLimit: ratelimit.New(limitStore, "inquiry", cfg.RateLimitWrites, cfg.RateLimitWindow).Middleware,

		event:   event.NewHandler(eventService),
		photo:   photo.NewHandler(photoService),
		message: message.NewHandler(messageService),
		admin:   admin.NewHandler(adminService, jwtService),
		pricing: pricing.NewHandler(pricingService),
		content: content.NewHandler(contentService),
		inquiry: inquiry.NewHandler(inquiryService),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(deps),
		ReadTimeout:  60 * time.Second, // multipart uploads
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// pinger is satisfied by *sqlx.DB
type pinger interface {
	PingContext(ctx context.Context) error
}

type routerDeps struct {
	cfg    *config.Config
	jwt    *jwt.Service
	health pinger

	verifyLimit  func(http.Handler) http.Handler
	uploadLimit  func(http.Handler) http.Handler
	writeLimit   func(http.Handler) http.Handler
	inquiryLimit func(http.Handler) http.Handler

	event   *event.Handler
	photo   *photo.Handler
	message *message.Handler
	admin   *admin.Handler
	pricing *pricing.Handler
	content *content.Handler
	inquiry *inquiry.Handler
}

func newRouter(d *routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(d.cfg.AllowedOrigins))

	r.Get("/health", healthHandler(d.health))

	if d.cfg.StorageDriver == storage.DriverLocal || d.cfg.StorageDriver == "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(d.cfg.LocalStoragePath)))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Compress(5, "application/json"))
		r.Use(middleware.OptionalAuth(d.jwt))

		r.Route("/events", func(r chi.Router) {
			d.event.RegisterRoutes(r, d.admin.Authenticated(), d.verifyLimit)
			d.photo.RegisterEventRoutes(r, d.uploadLimit)
			d.message.RegisterEventRoutes(r, d.writeLimit)
		})

		r.Mount("/photos", d.photo.Routes())
		r.Mount("/messages", d.message.Routes())
		r.Mount("/gallery", d.photo.GalleryRoutes())
		r.Mount("/pricing", d.pricing.Routes())
		r.Mount("/faq", d.content.FAQRoutes())
		r.Mount("/testimonials", d.content.TestimonialRoutes())
		r.Mount("/inquiries", d.inquiry.Routes(d.inquiryLimit))

		r.Mount("/admin", d.admin.Routes(
			admin.Mount{Permission: admin.PermManageEvents, Register: d.event.RegisterAdminRoutes},
			admin.Mount{Permission: admin.PermManageEvents, Register: d.photo.RegisterAdminRoutes},
			admin.Mount{Permission: admin.PermManageGallery, Register: d.photo.RegisterGalleryAdminRoutes},
			admin.Mount{Permission: admin.PermModerateContent, Register: d.message.RegisterAdminRoutes},
			admin.Mount{Permission: admin.PermManagePricing, Register: d.pricing.RegisterAdminRoutes},
			admin.Mount{Permission: admin.PermManageMarketing, Register: d.content.RegisterAdminRoutes},
			admin.Mount{Permission: admin.PermViewInquiries, Register: d.inquiry.RegisterAdminRoutes},
		))
	})

	return r
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			pkgresponse.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable")
			return
		}
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	}
}

// noDirListing hides directory indexes of the local upload folder
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func storageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
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
	}
}
