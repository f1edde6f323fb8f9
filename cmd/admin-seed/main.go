package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hafiportrait/wedibox-api/internal/config"
	"github.com/hafiportrait/wedibox-api/internal/domain/admin"
	"github.com/hafiportrait/wedibox-api/internal/pkg/database"
	"github.com/hafiportrait/wedibox-api/internal/pkg/logger"
)

type seedArgs struct {
	email    string
	password string
	name     string
	role     string
}

// parseArgs reads flags, falling back to ADMIN_* environment variables
func parseArgs(args []string, getenv func(string) string) (seedArgs, error) {
	fs := flag.NewFlagSet("admin-seed", flag.ContinueOnError)
	var a seedArgs
	fs.StringVar(&a.email, "email", getenv("ADMIN_EMAIL"), "admin email")
	fs.StringVar(&a.password, "password", getenv("ADMIN_PASSWORD"), "admin password")
	fs.StringVar(&a.name, "name", getenv("ADMIN_NAME"), "display name")
	fs.StringVar(&a.role, "role", getenv("ADMIN_ROLE"), "owner, admin or staff")
	if err := fs.Parse(args); err != nil {
		return a, err
	}

	a.email = strings.ToLower(strings.TrimSpace(a.email))
	if a.role == "" {
		a.role = string(admin.RoleOwner)
	}
	if a.name == "" {
		a.name = "Studio Owner"
	}
	return a, nil
}

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	a, err := parseArgs(os.Args[1:], os.Getenv)
	if err != nil {
		os.Exit(2)
	}
	if a.email == "" || a.password == "" {
		log.Fatal().Msg("email and password are required (-email/-password or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := admin.NewService(admin.NewRepository(db), nil)
	user, created, err := svc.EnsureAdmin(ctx, a.email, a.password, a.name, admin.Role(a.role))
	if err != nil {
		log.Fatal().Err(err).Str("email", a.email).Msg("Failed to seed admin")
	}

	action := "reset"
	if created {
		action = "created"
	}
	log.Info().
		Str("id", user.ID.String()).
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Str("action", action).
		Msg("Admin seeded")
}
