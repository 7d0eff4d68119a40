// Creates the users, questions and user_progress tables for the
// configured database. Safe to run repeatedly.
package main

import (
	"context"

	"productsiksha-backend/config"
	"productsiksha-backend/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

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

	log.Infof("Schema created (%s)", store.Backend())
}
