package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
	"tempo/internal/ports/mocks"
)

func TestSessionService_ListAppliesDefaultLimit(t *testing.T) {
	reader := mocks.NewMockSessionReader(t)
	want := []domain.Session{domain.NewSession("1", "a", domain.CategoryWork, 25, testEpoch)}
	reader.EXPECT().List(mock.Anything, DefaultSessionListLimit).Return(want, nil).Once()
	reader.EXPECT().List(mock.Anything, 5).Return(want, nil).Once()

	svc := NewSessionService(reader)

	got, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.List(context.Background(), 5)
	require.NoError(t, err)
}

func TestSessionService_ListError(t *testing.T) {
	reader := mocks.NewMockSessionReader(t)
	reader.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db closed")).Once()

	_, err := NewSessionService(reader).List(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list sessions")
}

func TestSessionService_GetNotFound(t *testing.T) {
	reader := mocks.NewMockSessionReader(t)
	reader.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrSessionNotFound).Once()

	_, err := NewSessionService(reader).Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
