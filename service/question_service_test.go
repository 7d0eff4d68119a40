package service

import (
	"context"
	"testing"
	"time"

	"productsiksha-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuestions(store *memStore) {
	store.questions = []models.Question{
		{ID: 1, Timestamp: "3/1/2023", CompanyNormalized: "Meta", QuestionCategory: "Product Design"},
		{ID: 2, Timestamp: "3/2/2023", CompanyNormalized: "Google", QuestionCategory: "Product Design"},
	}
}

func TestListQuestions_UncompletedNewestFirst(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       uuid.New(),
		CategorySlug: "product-design",
	})
	require.NoError(t, err)

	assert.Equal(t, "Product Design", result.Category)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(2), result.Questions[0].ID, "3/2/2023 sorts before 3/1/2023")
	assert.Equal(t, int64(1), result.Questions[1].ID)
}

func TestListQuestions_CompletedBlockFirst(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	userID := uuid.New()
	completedAt := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	store.progress[progressKey(userID, 1)] = &models.Progress{
		UserID: userID, QuestionID: 1, IsCompleted: true, CompletedAt: &completedAt,
	}
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       userID,
		CategorySlug: "product-design",
	})
	require.NoError(t, err)

	// The older question is completed and still precedes the newer one.
	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(1), result.Questions[0].ID)
	assert.True(t, result.Questions[0].IsCompleted)
	require.NotNil(t, result.Questions[0].CompletedAt)
	assert.Equal(t, int64(2), result.Questions[1].ID)
	assert.False(t, result.Questions[1].IsCompleted)
}

func TestListQuestions_CompletedSortedByCompletionTime(t *testing.T) {
	store := newMemStore()
	store.questions = []models.Question{
		{ID: 1, Timestamp: "3/1/2023", QuestionCategory: "Technical"},
		{ID: 2, Timestamp: "3/2/2023", QuestionCategory: "Technical"},
	}
	userID := uuid.New()
	early := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC)
	// The newer question was completed first and must come out first.
	store.progress[progressKey(userID, 2)] = &models.Progress{
		UserID: userID, QuestionID: 2, IsCompleted: true, CompletedAt: &early,
	}
	store.progress[progressKey(userID, 1)] = &models.Progress{
		UserID: userID, QuestionID: 1, IsCompleted: true, CompletedAt: &late,
	}
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       userID,
		CategorySlug: "technical",
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(2), result.Questions[0].ID)
	assert.Equal(t, int64(1), result.Questions[1].ID)
}

func TestListQuestions_DateRangeExcludesAll(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       uuid.New(),
		CategorySlug: "product-design",
		FromDate:     "2023-02-01",
		ToDate:       "2023-02-28",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Questions)
}

func TestListQuestions_ToDateIsInclusive(t *testing.T) {
	store := newMemStore()
	store.questions = []models.Question{
		{ID: 1, Timestamp: "3/1/2023 18:30:00", QuestionCategory: "Product Design"},
	}
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       uuid.New(),
		CategorySlug: "product-design",
		ToDate:       "2023-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count, "to_date extends to end of day")
}

func TestListQuestions_UnparseableDroppedOnlyWithDateFilter(t *testing.T) {
	store := newMemStore()
	store.questions = []models.Question{
		{ID: 1, Timestamp: "not-a-date", QuestionCategory: "Other"},
		{ID: 2, Timestamp: "3/2/2023", QuestionCategory: "Other"},
	}
	svc := NewQuestionService(WithQuestionStore(store))
	userID := uuid.New()

	// Without a date filter the unparseable row is kept and sorts last.
	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       userID,
		CategorySlug: "other",
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(2), result.Questions[0].ID)
	assert.Equal(t, int64(1), result.Questions[1].ID)

	// With a date filter it is dropped.
	result, err = svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       userID,
		CategorySlug: "other",
		FromDate:     "2023-01-01",
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, int64(2), result.Questions[0].ID)
}

func TestListQuestions_UnknownSlugPassesThrough(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       uuid.New(),
		CategorySlug: "no-such-category",
	})
	require.NoError(t, err)

	assert.Equal(t, "no-such-category", result.Category)
	assert.Equal(t, 0, result.Count)
}

func TestListQuestions_CompanyFilter(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	svc := NewQuestionService(WithQuestionStore(store))

	result, err := svc.ListQuestions(context.Background(), ListQuestionsRequest{
		UserID:       uuid.New(),
		CategorySlug: "product-design",
		Company:      "Meta",
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Meta", result.Questions[0].CompanyNormalized)
}

func TestToggleCompletion_DoubleToggleRestoresState(t *testing.T) {
	store := newMemStore()
	seedQuestions(store)
	svc := NewQuestionService(WithQuestionStore(store))
	userID := uuid.New()

	first, err := svc.ToggleCompletion(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.True(t, first.IsCompleted)

	saved := store.progress[progressKey(userID, 1)]
	require.NotNil(t, saved)
	require.NotNil(t, saved.CompletedAt, "completion timestamp set on transition to completed")

	second, err := svc.ToggleCompletion(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.False(t, second.IsCompleted)

	saved = store.progress[progressKey(userID, 1)]
	require.NotNil(t, saved)
	assert.False(t, saved.IsCompleted)
	assert.Nil(t, saved.CompletedAt, "completion timestamp cleared on transition back")
}

func TestListCategories(t *testing.T) {
	store := newMemStore()
	store.questions = []models.Question{
		{ID: 1, QuestionCategory: "Execution & Metrics"},
		{ID: 2, QuestionCategory: "Execution & Metrics"},
		{ID: 3, QuestionCategory: "Behavioral"},
	}
	svc := NewQuestionService(WithQuestionStore(store))

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	for _, c := range categories {
		switch c.Name {
		case "Execution & Metrics":
			assert.Equal(t, "execution-metrics", c.Path)
			assert.Equal(t, 2, c.Count)
		case "Behavioral":
			assert.Equal(t, "behavioral", c.Path)
			assert.Equal(t, 1, c.Count)
		default:
			t.Fatalf("unexpected category %q", c.Name)
		}
	}
}

func TestListCompanies(t *testing.T) {
	store := newMemStore()
	store.questions = []models.Question{
		{ID: 1, Timestamp: "3/1/2023", CompanyNormalized: "Meta", QuestionCategory: "Product Design"},
		{ID: 2, Timestamp: "3/2/2023", CompanyNormalized: "Meta", QuestionCategory: "Product Design"},
		{ID: 3, Timestamp: "3/3/2023", CompanyNormalized: "Google", QuestionCategory: "Product Design"},
		{ID: 4, Timestamp: "3/4/2023", CompanyNormalized: "Google", QuestionCategory: "Technical"},
	}
	svc := NewQuestionService(WithQuestionStore(store))

	companies, err := svc.ListCompanies(context.Background(), ListCompaniesRequest{
		CategorySlug: "product-design",
	})
	require.NoError(t, err)

	require.Len(t, companies, 2)
	assert.Equal(t, models.CompanyCount{Name: "Meta", Count: 2}, companies[0])
	assert.Equal(t, models.CompanyCount{Name: "Google", Count: 1}, companies[1])

	// Date filter narrows the counts.
	companies, err = svc.ListCompanies(context.Background(), ListCompaniesRequest{
		CategorySlug: "product-design",
		FromDate:     "2023-03-02",
	})
	require.NoError(t, err)

	require.Len(t, companies, 2)
	assert.Equal(t, models.CompanyCount{Name: "Google", Count: 1}, companies[0])
	assert.Equal(t, models.CompanyCount{Name: "Meta", Count: 1}, companies[1])
}
