package services

import (
	"context"
	"fmt"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// DefaultSessionListLimit caps session listings when no limit is given
const DefaultSessionListLimit = 50

// SessionService reads the completed session log
type SessionService struct {
	sessionReader ports.SessionReader
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionReader ports.SessionReader) *SessionService {
	return &SessionService{
		sessionReader: sessionReader,
	}
}

// List returns the most recent completed sessions, newest first
func (s *SessionService) List(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit <= 0 {
		limit = DefaultSessionListLimit
	}

	logging.Logger.Debug("Listing sessions", "limit", limit)
	sessions, err := s.sessionReader.List(ctx, limit)
	if err != nil {
		logging.Logger.Error("Failed to list sessions", "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// Get returns a single completed session
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessionReader.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return session, nil
}
