package application

import "github.com/bnema/pomodesk/internal/domain"

type CreateTodoCommand struct {
	Title     string              `json:"title" validate:"required"`
	Detail    *string             `json:"detail"`
	Priority  domain.TodoPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tags      []string            `json:"tags"`
	PlannedAt *string             `json:"plannedAt"`
	DueAt     *string             `json:"dueAt"`
}

type updateTodoRules struct {
	Title    string              `json:"title" validate:"required"`
	Priority domain.TodoPriority `json:"priority" validate:"oneof=low medium high"`
}

// AppendSessionCommand carries a session as reported by the timer. When EndAt
// is set and DurationMinutes is not a positive number, the duration is derived
// from the two timestamps.
type AppendSessionCommand struct {
	TodoID          *string            `json:"todoId"`
	StartAt         string             `json:"startAt" validate:"required"`
	EndAt           *string            `json:"endAt"`
	DurationMinutes *int               `json:"durationMinutes" validate:"omitempty,gte=0"`
	Kind            domain.SessionKind `json:"type" validate:"required,oneof=focus shortBreak longBreak"`
	Completed       bool               `json:"completed"`
}

type settingsRules struct {
	Theme           domain.Theme `json:"theme" validate:"required,oneof=system light dark mac"`
	FloatingOpacity float64      `json:"floatingOpacity" validate:"gte=0,lte=1"`
}
