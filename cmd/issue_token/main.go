// Command issue_token mints a bearer token for local development and manual
// testing. In production tokens come from the authentication service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/auth"
	"github.com/DREXATROLL/muzrent-pro/internal/config"
	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/DREXATROLL/muzrent-pro/internal/repository"
	"github.com/DREXATROLL/muzrent-pro/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

func main() {
	userID := flag.String("user-id", "", "token subject")
	username := flag.String("username", "", "look the subject up by username (postgres storage only)")
	role := flag.String("role", string(domain.RoleUser), "user or admin")
	flag.Parse()

	cfg := config.MustLoad()

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"issue_token",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	if *userID == "" && *username != "" {
		id, err := lookupUser(cfg, *username)
		if err != nil {
			log.Error("lookup user failed",
				logger.String("username", *username),
				logger.String("error", err.Error()),
			)
			os.Exit(1)
		}
		*userID = id
	}
	if *userID == "" {
		fmt.Fprintln(os.Stderr, "either -user-id or -username is required")
		os.Exit(2)
	}

	r := domain.Role(*role)
	if r != domain.RoleUser && r != domain.RoleAdmin {
		log.Error("unknown role", logger.String("role", *role))
		os.Exit(2)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Generate(*userID, r)
	if err != nil {
		log.Error("generate token failed", logger.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(token)
}

func lookupUser(cfg *config.Config, username string) (string, error) {
	db, err := dbpg.New(cfg.Postgres.DSN(), nil, &dbpg.Options{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return "", fmt.Errorf("connect: %w", err)
	}
	defer db.Master.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := service.NewUserService(repository.NewUserRepo(db)).GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
