package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"productsiksha-backend/models"
	"productsiksha-backend/repository"

	"github.com/google/uuid"
)

// QuestionService implements the question listing pipeline, category and
// company listings, and the completion toggle.
type QuestionService struct {
	store repository.Store
}

// QuestionServiceOption is a functional option for QuestionService
type QuestionServiceOption func(*QuestionService)

// WithQuestionStore sets the backing store
func WithQuestionStore(store repository.Store) QuestionServiceOption {
	return func(s *QuestionService) {
		s.store = store
	}
}

// NewQuestionService creates a new question service
func NewQuestionService(opts ...QuestionServiceOption) *QuestionService {
	s := &QuestionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListQuestionsRequest carries the filters for a question listing.
type ListQuestionsRequest struct {
	UserID       uuid.UUID
	CategorySlug string
	Company      string // normalized company name; empty means no filter
	FromDate     string // YYYY-MM-DD, inclusive
	ToDate       string // YYYY-MM-DD, inclusive (extended to end of day)
}

// ListQuestionsResult is the ordered pipeline output.
type ListQuestionsResult struct {
	Category  string
	Count     int
	Questions []models.QuestionWithProgress
}

// ListQuestions runs the filter/sort pipeline:
//
//  1. select questions in the category, optionally narrowed by company,
//     left-joined with the user's completion records;
//  2. apply the inclusive date range against the parsed free-text
//     timestamp — rows that fail to parse are dropped only while a date
//     filter is active;
//  3. completed questions first, oldest completion first; then
//     uncompleted questions, newest question first (unparseable
//     timestamps sort as the earliest possible time).
func (s *QuestionService) ListQuestions(ctx context.Context, req ListQuestionsRequest) (*ListQuestionsResult, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	category := models.CategoryForSlug(req.CategorySlug)

	rows, err := s.store.ListQuestionsWithProgress(ctx, req.UserID, category, req.Company)
	if err != nil {
		return nil, err
	}

	fromDate, hasFrom := parseDateParam(req.FromDate)
	toDate, hasTo := parseDateParam(req.ToDate)
	if hasTo {
		toDate = endOfDay(toDate)
	}
	dateFilterActive := hasFrom || hasTo

	var completed, uncompleted []models.QuestionWithProgress
	for _, q := range rows {
		if dateFilterActive {
			ts, ok := parseTimestamp(q.Timestamp)
			if !ok {
				continue
			}
			if hasFrom && ts.Before(fromDate) {
				continue
			}
			if hasTo && ts.After(toDate) {
				continue
			}
		}
		if q.IsCompleted {
			completed = append(completed, q)
		} else {
			uncompleted = append(uncompleted, q)
		}
	}

	// Completed block: oldest completion first.
	sort.SliceStable(completed, func(i, j int) bool {
		return completionTime(completed[i]).Before(completionTime(completed[j]))
	})

	// Uncompleted block: newest question first; unparseable timestamps
	// sort as the zero time and therefore land at the end.
	sort.SliceStable(uncompleted, func(i, j int) bool {
		ti, _ := parseTimestamp(uncompleted[i].Timestamp)
		tj, _ := parseTimestamp(uncompleted[j].Timestamp)
		return ti.After(tj)
	})

	questions := make([]models.QuestionWithProgress, 0, len(completed)+len(uncompleted))
	questions = append(questions, completed...)
	questions = append(questions, uncompleted...)

	return &ListQuestionsResult{
		Category:  category,
		Count:     len(questions),
		Questions: questions,
	}, nil
}

func completionTime(q models.QuestionWithProgress) time.Time {
	if q.CompletedAt == nil {
		return time.Time{}
	}
	return *q.CompletedAt
}

// ListCategories returns every known category with its slug and
// question count, ordered by count descending.
func (s *QuestionService) ListCategories(ctx context.Context) ([]models.CategoryCount, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	counts, err := s.store.ListCategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range counts {
		counts[i].Path = models.CategorySlug(counts[i].Name)
	}
	if counts == nil {
		counts = []models.CategoryCount{}
	}
	return counts, nil
}

// ListCompaniesRequest carries the filters for the company dropdown.
type ListCompaniesRequest struct {
	CategorySlug string // empty means all categories
	FromDate     string
	ToDate       string
}

// ListCompanies returns normalized company names with counts matching
// the filters, ordered by count descending. The date filter uses the
// same parse-or-drop rule as the question pipeline.
func (s *QuestionService) ListCompanies(ctx context.Context, req ListCompaniesRequest) ([]models.CompanyCount, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	category := ""
	if req.CategorySlug != "" {
		category = models.CategoryForSlug(req.CategorySlug)
	}

	rows, err := s.store.ListCompanyRows(ctx, category)
	if err != nil {
		return nil, err
	}

	fromDate, hasFrom := parseDateParam(req.FromDate)
	toDate, hasTo := parseDateParam(req.ToDate)
	if hasTo {
		toDate = endOfDay(toDate)
	}
	dateFilterActive := hasFrom || hasTo

	counts := make(map[string]int)
	for _, r := range rows {
		if dateFilterActive {
			ts, ok := parseTimestamp(r.Timestamp)
			if !ok {
				continue
			}
			if hasFrom && ts.Before(fromDate) {
				continue
			}
			if hasTo && ts.After(toDate) {
				continue
			}
		}
		counts[r.CompanyNormalized]++
	}

	companies := make([]models.CompanyCount, 0, len(counts))
	for name, count := range counts {
		companies = append(companies, models.CompanyCount{Name: name, Count: count})
	}
	sort.Slice(companies, func(i, j int) bool {
		if companies[i].Count != companies[j].Count {
			return companies[i].Count > companies[j].Count
		}
		return companies[i].Name < companies[j].Name
	})

	return companies, nil
}

// ToggleResult reports the new completion state of a question.
type ToggleResult struct {
	QuestionID  int64
	IsCompleted bool
}

// ToggleCompletion flips the user's completion record for a question,
// creating it as completed on first toggle. The completion timestamp is
// set at the transition to completed and cleared at the transition back.
func (s *QuestionService) ToggleCompletion(ctx context.Context, userID uuid.UUID, questionID int64) (*ToggleResult, error) {
	if s.store == nil {
		return nil, errors.New("store not set")
	}

	progress, err := s.store.GetProgress(ctx, userID, questionID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		now := time.Now().UTC()
		progress = &models.Progress{
			UserID:      userID,
			QuestionID:  questionID,
			IsCompleted: true,
			CompletedAt: &now,
		}
	case err != nil:
		return nil, err
	default:
		progress.IsCompleted = !progress.IsCompleted
		if progress.IsCompleted {
			now := time.Now().UTC()
			progress.CompletedAt = &now
		} else {
			progress.CompletedAt = nil
		}
	}

	if err := s.store.SaveProgress(ctx, progress); err != nil {
		return nil, err
	}

	return &ToggleResult{
		QuestionID:  questionID,
		IsCompleted: progress.IsCompleted,
	}, nil
}
