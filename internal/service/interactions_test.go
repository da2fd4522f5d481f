package service

// Тесты взаимодействий (internal/service/interactions.go).
//
//  Проверяем:
//  - валидацию типа и диапазонов strength/reading_progress/time_spent;
//  - что взаимодействие пишется только по опубликованной статье;
//  - производный session_id: стабилен в пределах часа, не содержит user_id.

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestService_RecordInteraction_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}

	cases := []struct {
		name string
		p    RecordInteractionParams
	}{
		{"unknown_type", RecordInteractionParams{ArticleID: uuid.New(), Type: "poke"}},
		{"strength_above_one", RecordInteractionParams{ArticleID: uuid.New(), Type: models.InteractionLike, Strength: 1.5}},
		{"negative_strength", RecordInteractionParams{ArticleID: uuid.New(), Type: models.InteractionLike, Strength: -0.1}},
		{"progress_above_one", RecordInteractionParams{ArticleID: uuid.New(), Type: models.InteractionView, ReadingProgress: 2}},
		{"negative_time_spent", RecordInteractionParams{ArticleID: uuid.New(), Type: models.InteractionView, TimeSpent: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.RecordInteraction(context.Background(), caller, tc.p)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_RecordInteraction_RequiresPublished(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}

	missing := uuid.New()
	ms.EXPECT().ArticleByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound)
	_, err := s.RecordInteraction(context.Background(), caller, RecordInteractionParams{
		ArticleID: missing, Type: models.InteractionView,
	})
	require.ErrorIs(t, err, ErrNotFound)

	draft := &models.Article{ID: uuid.New(), Status: models.StatusDraft}
	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)
	_, err = s.RecordInteraction(context.Background(), caller, RecordInteractionParams{
		ArticleID: draft.ID, Type: models.InteractionView,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_RecordInteraction_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}
	article := &models.Article{ID: uuid.New(), Status: models.StatusPublished}

	ms.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)

	var saved *models.Interaction
	ms.EXPECT().SaveInteraction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *models.Interaction) error {
			saved = it
			return nil
		})

	got, err := s.RecordInteraction(context.Background(), caller, RecordInteractionParams{
		ArticleID:       article.ID,
		Type:            models.InteractionLike,
		Strength:        0.8,
		ReadingProgress: 0.5,
		TimeSpent:       42,
		DeviceType:      "mobile",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, caller.UserID, got.UserID)
	require.Equal(t, models.InteractionLike, got.Type)
	require.NotEmpty(t, got.SessionID)
}

func TestSessionID_StableWithinHour(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

	a := sessionID(userID, at)
	b := sessionID(userID, at.Add(50*time.Minute))
	c := sessionID(userID, at.Add(time.Hour))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	// Производный идентификатор не раскрывает исходный user_id.
	require.False(t, strings.Contains(a, userID.String()))

	// Разные пользователи в один и тот же час — разные сессии.
	require.NotEqual(t, a, sessionID(uuid.New(), at))
}

func TestService_ListInteractions_ClampsLimit(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}

	ms.EXPECT().ListInteractions(gomock.Any(), caller.UserID, int32(100)).Return(nil, nil)

	_, err := s.ListInteractions(context.Background(), caller, 500)
	require.NoError(t, err)
}
