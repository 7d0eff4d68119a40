package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the per-user completion record for a question.
// Invariant: CompletedAt is set exactly when IsCompleted is true.
type Progress struct {
	UserID      uuid.UUID  `json:"user_id"`
	QuestionID  int64      `json:"question_id"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}
