package domain

import "time"

// SessionDateLayout formats the calendar day a session belongs to, e.g. "Sat Oct 17 2026"
const SessionDateLayout = "Mon Jan 02 2006"

// Session is a completed focus interval
type Session struct {
	Category    Category
	CompletedAt time.Time
	Date        string
	Duration    int // minutes
	ID          string
	Task        string
}

// NewSession builds the record for a focus interval completed at completedAt
func NewSession(id, task string, category Category, durationMinutes int, completedAt time.Time) Session {
	return Session{
		Category:    category,
		CompletedAt: completedAt,
		Date:        completedAt.Format(SessionDateLayout),
		Duration:    durationMinutes,
		ID:          id,
		Task:        task,
	}
}
