package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"productsiksha-backend/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteStore implements Store on an embedded SQLite database. It is
// the default backend for local development, mirroring the PostgreSQL
// store's behavior. Times are stored as RFC 3339 text to keep scanning
// independent of driver column affinity.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates, if needed) a SQLite database file.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent toggles.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// InitSchema creates the users, questions and user_progress tables.
func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
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
			user_id TEXT NOT NULL REFERENCES users(id),
			question_id INTEGER NOT NULL REFERENCES questions(id),
			is_completed INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT,
			PRIMARY KEY (user_id, question_id)
		);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID.String(), user.Email, user.PasswordHash, user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*models.User, error) {
	var (
		id        string
		createdAt string
		user      models.User
	)
	err := row.Scan(&id, &user.Email, &user.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing user id: %w", err)
	}
	if user.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
	return s.scanUser(row)
}

func (s *SQLiteStore) GetUserByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ? AND password_hash = ?`,
		email, passwordHash)
	return s.scanUser(row)
}

func (s *SQLiteStore) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, userID.String())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertQuestions loads question rows in a single transaction so a
// partial load never survives a failure.
func (s *SQLiteStore) InsertQuestions(ctx context.Context, questions []models.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (
			timestamp, company, question, question_type,
			interview_type, comments, job_title,
			company_normalized, question_category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		_, err := stmt.ExecContext(ctx,
			q.Timestamp, q.Company, q.Question, q.QuestionType,
			q.InterviewType, q.Comments, q.JobTitle,
			q.CompanyNormalized, q.QuestionCategory,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

func (s *SQLiteStore) ListCategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_category, COUNT(*)
		FROM questions
		WHERE question_category IS NOT NULL AND question_category <> ''
		GROUP BY question_category
		ORDER BY COUNT(*) DESC`)
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

func (s *SQLiteStore) ListCompanyRows(ctx context.Context, category string) ([]models.CompanyRow, error) {
	query := `
		SELECT company_normalized, COALESCE(timestamp, '')
		FROM questions
		WHERE company_normalized IS NOT NULL AND company_normalized <> ''`

	args := []interface{}{}
	if category != "" {
		query += ` AND question_category = ?`
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *SQLiteStore) ListQuestionsWithProgress(ctx context.Context, userID uuid.UUID, category, company string) ([]models.QuestionWithProgress, error) {
	query := `
		SELECT q.id, COALESCE(q.timestamp, ''), COALESCE(q.company, ''),
			COALESCE(q.question, ''), COALESCE(q.question_type, ''),
			COALESCE(q.interview_type, ''), COALESCE(q.comments, ''),
			COALESCE(q.job_title, ''), COALESCE(q.company_normalized, ''),
			COALESCE(q.question_category, ''),
			COALESCE(up.is_completed, 0), up.completed_at
		FROM questions q
		LEFT JOIN user_progress up
			ON up.question_id = q.id AND up.user_id = ?
		WHERE q.question_category = ?`

	args := []interface{}{userID.String(), category}
	if company != "" {
		query += ` AND q.company_normalized = ?`
		args = append(args, company)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.QuestionWithProgress
	for rows.Next() {
		var (
			q           models.QuestionWithProgress
			completedAt sql.NullString
		)
		err := rows.Scan(
			&q.ID, &q.Timestamp, &q.Company,
			&q.Question.Question, &q.QuestionType,
			&q.InterviewType, &q.Comments,
			&q.JobTitle, &q.CompanyNormalized,
			&q.QuestionCategory,
			&q.IsCompleted, &completedAt,
		)
		if err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing completed_at: %w", err)
			}
			q.CompletedAt = &t
		}
		result = append(result, q)
	}
	return result, rows.Err()
}

func (s *SQLiteStore) GetProgress(ctx context.Context, userID uuid.UUID, questionID int64) (*models.Progress, error) {
	var (
		progress    models.Progress
		id          string
		completedAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, question_id, is_completed, completed_at
		FROM user_progress
		WHERE user_id = ? AND question_id = ?`,
		userID.String(), questionID,
	).Scan(&id, &progress.QuestionID, &progress.IsCompleted, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if progress.UserID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing user id: %w", err)
	}
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		progress.CompletedAt = &t
	}
	return &progress, nil
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, progress *models.Progress) error {
	var completedAt interface{}
	if progress.CompletedAt != nil {
		completedAt = progress.CompletedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_progress (user_id, question_id, is_completed, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, question_id) DO UPDATE SET
			is_completed = excluded.is_completed,
			completed_at = excluded.completed_at`,
		progress.UserID.String(), progress.QuestionID, progress.IsCompleted, completedAt,
	)
	return err
}

func (s *SQLiteStore) Backend() string { return "sqlite" }

func (s *SQLiteStore) Close() { s.db.Close() }
