package storage

import (
	"tempo/internal/domain"
)

// completedSessionModelToDomain converts a CompletedSessionModel (GORM) to domain.Session
func completedSessionModelToDomain(m CompletedSessionModel) domain.Session {
	return domain.Session{
		Category:    domain.Category(m.Category),
		CompletedAt: m.CompletedAt,
		Date:        m.Date,
		Duration:    m.Duration,
		ID:          m.ID,
		Task:        m.Task,
	}
}

// domainToCompletedSessionModel converts a domain.Session to CompletedSessionModel (GORM)
func domainToCompletedSessionModel(s domain.Session) CompletedSessionModel {
	return CompletedSessionModel{
		Category:    string(s.Category),
		CompletedAt: s.CompletedAt.UTC(),
		Date:        s.Date,
		Duration:    s.Duration,
		ID:          s.ID,
		Task:        s.Task,
	}
}
