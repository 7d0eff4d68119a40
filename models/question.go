package models

import "time"

// Question represents one interview question loaded from the dataset.
// The raw Timestamp is kept as free text to match the source CSV; date
// parsing happens at query time.
type Question struct {
	ID                int64  `json:"id"`
	Timestamp         string `json:"timestamp"`
	Company           string `json:"company"`
	Question          string `json:"question"`
	QuestionType      string `json:"question_type"`
	InterviewType     string `json:"interview_type"`
	Comments          string `json:"comments"`
	JobTitle          string `json:"job_title"`
	CompanyNormalized string `json:"company_normalized"`
	QuestionCategory  string `json:"question_category"`
}

// QuestionWithProgress is a Question joined with the requesting user's
// completion state. CompletedAt is nil unless the question is completed.
type QuestionWithProgress struct {
	Question
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// CategoryCount is one row of the category listing.
type CategoryCount struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// CompanyCount is one row of the company filter dropdown.
type CompanyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CompanyRow is the projection used to build company counts: the
// normalized company name plus the raw question timestamp for
// Go-side date filtering.
type CompanyRow struct {
	CompanyNormalized string
	Timestamp         string
}
