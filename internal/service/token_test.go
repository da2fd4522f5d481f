package service

// Тесты access-токена (internal/service/token.go):
// round-trip выпуск/валидация, истечение срока, чужая подпись и мусор.

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     models.RoleAuthor,
		IsActive: true,
	}
}

func TestService_AccessToken_RoundTrip(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	user := testUser()

	token, err := s.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	id, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id.UserID)
	require.Equal(t, user.Username, id.Username)
	require.Equal(t, user.Role, id.Role)
	require.False(t, id.IsAdmin())
}

func TestService_AccessToken_Expired(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// Выпущен два часа назад при TTL 15 минут; leeway 5s давно позади.
	token, err := s.generateAccessToken(context.Background(), testUser(), time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = s.ValidateAccessToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_AccessToken_WrongSecret(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	other, _, ctrl2 := newServiceWithMocks(t)
	defer ctrl2.Finish()
	other.cfg.Auth.JWTSecret = "another-secret"

	token, err := other.generateAccessToken(context.Background(), testUser(), time.Now().UTC())
	require.NoError(t, err)

	_, err = s.ValidateAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_AccessToken_Garbage(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.ValidateAccessToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateAccessToken("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
