// cmd/useradd/main.go
// Provision một tài khoản tác giả: go run ./cmd/useradd -username alice -password secret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"songblog-backend/internal/config"
	"songblog-backend/internal/domains/user"
	userRepo "songblog-backend/internal/domains/user/repository"
	userService "songblog-backend/internal/domains/user/service"
	"songblog-backend/internal/infrastructure/database"
	"songblog-backend/pkg/logger"
)

func main() {
	username := flag.String("username", "", "login name of the new author")
	password := flag.String("password", "", "plaintext password, stored as bcrypt hash")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(*username, *password); err != nil {
		log.Fatal().Err(err).Msg("[useradd] Failed")
	}
}

func run(username, password string) error {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Migrate {
		if err := database.Migrate(cfg.URL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	svc, err := userService.NewCredentialService(userRepo.NewPostgresRepository(db.Pool), userService.DefaultCost)
	if err != nil {
		return err
	}

	u, err := svc.Create(ctx, username, password)
	if errors.Is(err, user.ErrUsernameTaken) {
		return fmt.Errorf("username %q already exists", username)
	}
	if err != nil {
		return err
	}

	fmt.Printf("created user %q with id %d\n", u.Username, u.ID)
	return nil
}
