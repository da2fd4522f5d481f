package service

// Тесты комментариев (internal/service/comments.go).
//
//  Проверяем:
//  - валидацию контента (пустой, сверхдлинный);
//  - комментарий пишется только к опубликованной статье;
//  - счётчик комментариев обновляется как взаимодействие, его сбой не фатален;
//  - удаление — модераторская операция (только администратор).

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/mocks"
	"github.com/stretchr/testify/require"
)

// newServiceWithComments — сервис с моками стораджа и комментариев.
func newServiceWithComments(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockCommentStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mc := mocks.NewMockCommentStorage(ctrl)
	s := New(ms, testConfig(), WithComments(mc))
	return s, ms, mc, ctrl
}

func TestService_CreateComment_NotConfigured(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.CreateComment(context.Background(), Identity{UserID: uuid.New()}, uuid.New(), "hi")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateComment_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}

	_, err := s.CreateComment(context.Background(), caller, uuid.New(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateComment(context.Background(), caller, uuid.New(), strings.Repeat("я", maxCommentLength+1))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateComment_RequiresPublished(t *testing.T) {
	s, ms, _, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}
	draft := &models.Article{ID: uuid.New(), Status: models.StatusDraft}

	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)

	_, err := s.CreateComment(context.Background(), caller, draft.ID, "nice article")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateComment_OK(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}
	article := &models.Article{ID: uuid.New(), Status: models.StatusPublished}
	now := time.Now().UTC().Truncate(time.Millisecond)

	ms.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	mc.EXPECT().SaveComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Comment) (*models.Comment, error) {
			out := *c
			out.ID = "68b2f0a1e4b0c93d2f1a7b55"
			out.CreatedAt = now
			return &out, nil
		})
	ms.EXPECT().SaveInteraction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *models.Interaction) error {
			require.Equal(t, models.InteractionComment, it.Type)
			require.Equal(t, article.ID, it.ArticleID)
			require.Equal(t, caller.UserID, it.UserID)
			return nil
		})

	got, err := s.CreateComment(context.Background(), caller, article.ID, "  nice article  ")
	require.NoError(t, err)
	require.Equal(t, "nice article", got.Content)
	require.NotEmpty(t, got.ID)
}

func TestService_CreateComment_CounterFailureNonFatal(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	caller := Identity{UserID: uuid.New(), Role: models.RoleReader}
	article := &models.Article{ID: uuid.New(), Status: models.StatusPublished}

	ms.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	mc.EXPECT().SaveComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Comment) (*models.Comment, error) {
			out := *c
			out.ID = "68b2f0a1e4b0c93d2f1a7b56"
			out.CreatedAt = time.Now().UTC()
			return &out, nil
		})
	ms.EXPECT().SaveInteraction(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	got, err := s.CreateComment(context.Background(), caller, article.ID, "still fine")
	require.NoError(t, err)
	require.Equal(t, "still fine", got.Content)
}

func TestService_DeleteComment_AdminOnly(t *testing.T) {
	s, _, mc, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	err := s.DeleteComment(context.Background(), Identity{UserID: uuid.New(), Role: models.RoleReader}, "68b2f0a1e4b0c93d2f1a7b55")
	require.ErrorIs(t, err, ErrPermissionDenied)

	admin := Identity{UserID: uuid.New(), Role: models.RoleAdministrator}

	mc.EXPECT().DeleteComment(gomock.Any(), "missing").Return(storage.ErrNotFound)
	err = s.DeleteComment(context.Background(), admin, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	mc.EXPECT().DeleteComment(gomock.Any(), "68b2f0a1e4b0c93d2f1a7b55").Return(nil)
	require.NoError(t, s.DeleteComment(context.Background(), admin, "68b2f0a1e4b0c93d2f1a7b55"))
}

func TestService_CommentsByArticle_ClampsLimit(t *testing.T) {
	s, _, mc, ctrl := newServiceWithComments(t)
	defer ctrl.Finish()

	articleID := uuid.New()

	mc.EXPECT().CommentsByArticle(gomock.Any(), articleID, int32(100)).Return([]models.Comment{}, nil)

	_, err := s.CommentsByArticle(context.Background(), articleID, 500)
	require.NoError(t, err)
}
