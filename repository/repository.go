// Package repository provides the data store behind users, questions and
// per-user completion records. Two backends implement the same Store
// interface: PostgreSQL for deployments and SQLite for local use, chosen
// from the database URL.
package repository

import (
	"context"
	"errors"
	"strings"

	"productsiksha-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store is the storage contract shared by both backends.
type Store interface {
	// InitSchema creates all tables if they do not exist. Idempotent.
	InitSchema(ctx context.Context) error

	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByCredentials performs the equality lookup used by login:
	// it matches both the email and the stored password digest.
	GetUserByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	InsertQuestions(ctx context.Context, questions []models.Question) error
	CountQuestions(ctx context.Context) (int, error)
	ListCategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	// ListCompanyRows returns normalized company names with raw
	// timestamps, optionally narrowed to a category label.
	ListCompanyRows(ctx context.Context, category string) ([]models.CompanyRow, error)
	// ListQuestionsWithProgress selects questions in a category,
	// optionally narrowed by normalized company, left-joined with the
	// given user's completion records.
	ListQuestionsWithProgress(ctx context.Context, userID uuid.UUID, category, company string) ([]models.QuestionWithProgress, error)

	GetProgress(ctx context.Context, userID uuid.UUID, questionID int64) (*models.Progress, error)
	// SaveProgress inserts or replaces a completion record.
	SaveProgress(ctx context.Context, progress *models.Progress) error

	// Backend names the storage backend ("postgresql" or "sqlite").
	Backend() string
	Close()
}

// NewStoreFromURL selects and opens a backend from a database URL.
// postgres:// and postgresql:// URLs open the PostgreSQL store;
// anything else is treated as a SQLite path (a sqlite:// prefix is
// stripped when present).
func NewStoreFromURL(ctx context.Context, databaseURL string) (Store, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return NewPostgresStore(ctx, databaseURL)
	}
	path := strings.TrimPrefix(databaseURL, "sqlite://")
	return NewSQLiteStore(path)
}
