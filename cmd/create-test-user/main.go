// Seeds a default account for local development.
package main

import (
	"context"
	"errors"
	"flag"

	"productsiksha-backend/auth"
	"productsiksha-backend/config"
	"productsiksha-backend/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	email := flag.String("email", "test@example.com", "email for the seeded account")
	password := flag.String("password", "testpassword123", "password for the seeded account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := repository.NewStoreFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	existing, err := store.GetUserByEmail(ctx, *email)
	if err == nil {
		log.Infof("User %s already exists (ID: %s)", existing.Email, existing.ID)
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Failed to look up user: %v", err)
	}

	user, err := store.CreateUser(ctx, *email, auth.HashPassword(*password))
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Infof("Test user created: %s (ID: %s)", user.Email, user.ID)
}
