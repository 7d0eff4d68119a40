package service

import (
	"context"
	"fmt"
	"time"

	"productsiksha-backend/models"
	"productsiksha-backend/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory repository.Store for service tests.
type memStore struct {
	users     map[string]*models.User
	questions []models.Question
	progress  map[string]*models.Progress
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		progress: make(map[string]*models.Progress),
	}
}

func progressKey(userID uuid.UUID, questionID int64) string {
	return fmt.Sprintf("%s|%d", userID, questionID)
}

func (m *memStore) InitSchema(ctx context.Context) error { return nil }

func (m *memStore) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if _, ok := m.users[email]; ok {
		return nil, fmt.Errorf("duplicate email %s", email)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[email] = user
	return user, nil
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.users[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) GetUserByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if user, ok := m.users[email]; ok && user.PasswordHash == passwordHash {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	for _, user := range m.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memStore) InsertQuestions(ctx context.Context, questions []models.Question) error {
	m.questions = append(m.questions, questions...)
	return nil
}

func (m *memStore) CountQuestions(ctx context.Context) (int, error) {
	return len(m.questions), nil
}

func (m *memStore) ListCategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	counts := make(map[string]int)
	for _, q := range m.questions {
		if q.QuestionCategory != "" {
			counts[q.QuestionCategory]++
		}
	}
	var result []models.CategoryCount
	for _, name := range models.Categories {
		if counts[name] > 0 {
			result = append(result, models.CategoryCount{Name: name, Count: counts[name]})
		}
	}
	return result, nil
}

func (m *memStore) ListCompanyRows(ctx context.Context, category string) ([]models.CompanyRow, error) {
	var rows []models.CompanyRow
	for _, q := range m.questions {
		if q.CompanyNormalized == "" {
			continue
		}
		if category != "" && q.QuestionCategory != category {
			continue
		}
		rows = append(rows, models.CompanyRow{
			CompanyNormalized: q.CompanyNormalized,
			Timestamp:         q.Timestamp,
		})
	}
	return rows, nil
}

func (m *memStore) ListQuestionsWithProgress(ctx context.Context, userID uuid.UUID, category, company string) ([]models.QuestionWithProgress, error) {
	var result []models.QuestionWithProgress
	for _, q := range m.questions {
		if q.QuestionCategory != category {
			continue
		}
		if company != "" && q.CompanyNormalized != company {
			continue
		}
		qwp := models.QuestionWithProgress{Question: q}
		if p, ok := m.progress[progressKey(userID, q.ID)]; ok {
			qwp.IsCompleted = p.IsCompleted
			qwp.CompletedAt = p.CompletedAt
		}
		result = append(result, qwp)
	}
	return result, nil
}

func (m *memStore) GetProgress(ctx context.Context, userID uuid.UUID, questionID int64) (*models.Progress, error) {
	if p, ok := m.progress[progressKey(userID, questionID)]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) SaveProgress(ctx context.Context, progress *models.Progress) error {
	copied := *progress
	m.progress[progressKey(progress.UserID, progress.QuestionID)] = &copied
	return nil
}

func (m *memStore) Backend() string { return "memory" }

func (m *memStore) Close() {}
