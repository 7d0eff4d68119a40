package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productsiksha-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and verifies the connection.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &PostgresStore{db: pool}, nil
}

// InitSchema creates the users, questions and user_progress tables.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS questions (
			id BIGSERIAL PRIMARY KEY,
			timestamp TEXT,
			company TEXT,
			question TEXT,
			question_type TEXT,
			interview_type TEXT,
			comments TEXT,
			job_title TEXT,
			company_normalized TEXT,
			question_category TEXT
		);

		CREATE TABLE IF NOT EXISTS user_progress (
			user_id UUID NOT NULL REFERENCES users(id),
			question_id BIGINT NOT NULL REFERENCES questions(id),
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			PRIMARY KEY (user_id, question_id)
		);`

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := s.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStore) GetUserByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1 AND password_hash = $2`

	err := s.db.QueryRow(ctx, query, email, passwordHash).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStore) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertQuestions loads question rows in a single transaction so a
// partial load never survives a failure.
func (s *PostgresStore) InsertQuestions(ctx context.Context, questions []models.Question) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO questions (
			timestamp, company, question, question_type,
			interview_type, comments, job_title,
			company_normalized, question_category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, q := range questions {
		_, err := tx.Exec(ctx, query,
			q.Timestamp, q.Company, q.Question, q.QuestionType,
			q.InterviewType, q.Comments, q.JobTitle,
			q.CompanyNormalized, q.QuestionCategory,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

func (s *PostgresStore) ListCategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	query := `
		SELECT question_category, COUNT(*)
		FROM questions
		WHERE question_category IS NOT NULL AND question_category <> ''
		GROUP BY question_category
		ORDER BY COUNT(*) DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *PostgresStore) ListCompanyRows(ctx context.Context, category string) ([]models.CompanyRow, error) {
	query := `
		SELECT company_normalized, COALESCE(timestamp, '')
		FROM questions
		WHERE company_normalized IS NOT NULL AND company_normalized <> ''`

	args := []interface{}{}
	if category != "" {
		query += ` AND question_category = $1`
		args = append(args, category)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CompanyRow
	for rows.Next() {
		var r models.CompanyRow
		if err := rows.Scan(&r.CompanyNormalized, &r.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *PostgresStore) ListQuestionsWithProgress(ctx context.Context, userID uuid.UUID, category, company string) ([]models.QuestionWithProgress, error) {
	query := `
		SELECT q.id, COALESCE(q.timestamp, ''), COALESCE(q.company, ''),
			COALESCE(q.question, ''), COALESCE(q.question_type, ''),
			COALESCE(q.interview_type, ''), COALESCE(q.comments, ''),
			COALESCE(q.job_title, ''), COALESCE(q.company_normalized, ''),
			COALESCE(q.question_category, ''),
			COALESCE(up.is_completed, FALSE), up.completed_at
		FROM questions q
		LEFT JOIN user_progress up
			ON up.question_id = q.id AND up.user_id = $1
		WHERE q.question_category = $2`

	args := []interface{}{userID, category}
	if company != "" {
		query += ` AND q.company_normalized = $3`
		args = append(args, company)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.QuestionWithProgress
	for rows.Next() {
		var q models.QuestionWithProgress
		err := rows.Scan(
			&q.ID, &q.Timestamp, &q.Company,
			&q.Question.Question, &q.QuestionType,
			&q.InterviewType, &q.Comments,
			&q.JobTitle, &q.CompanyNormalized,
			&q.QuestionCategory,
			&q.IsCompleted, &q.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	return result, rows.Err()
}

func (s *PostgresStore) GetProgress(ctx context.Context, userID uuid.UUID, questionID int64) (*models.Progress, error) {
	progress := &models.Progress{}
	query := `
		SELECT user_id, question_id, is_completed, completed_at
		FROM user_progress
		WHERE user_id = $1 AND question_id = $2`

	err := s.db.QueryRow(ctx, query, userID, questionID).Scan(
		&progress.UserID, &progress.QuestionID,
		&progress.IsCompleted, &progress.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *PostgresStore) SaveProgress(ctx context.Context, progress *models.Progress) error {
	query := `
		INSERT INTO user_progress (user_id, question_id, is_completed, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, question_id) DO UPDATE SET
			is_completed = EXCLUDED.is_completed,
			completed_at = EXCLUDED.completed_at`

	var completedAt *time.Time
	if progress.CompletedAt != nil {
		t := progress.CompletedAt.UTC()
		completedAt = &t
	}

	_, err := s.db.Exec(ctx, query,
		progress.UserID, progress.QuestionID, progress.IsCompleted, completedAt,
	)
	return err
}

func (s *PostgresStore) Backend() string { return "postgresql" }

func (s *PostgresStore) Close() { s.db.Close() }
