package service

// Тесты статей (internal/service/articles.go).
//
//  Проверяем:
//  - права на создание (author/administrator) и управление статьёй;
//  - вычисление производных полей при создании и пересчёт при изменении текста;
//  - видимость черновиков (автор/админ) и инкремент просмотров published;
//  - принудительный фильтр по автору в листинге не-published для не-админа.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/scoring"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/stretchr/testify/require"
)

const articleContent = "Quantum computing reached another milestone today. " +
	"Researchers demonstrated error correction across dozens of logical qubits, " +
	"a result many considered years away. The approach combines surface codes " +
	"with real-time decoding and opens a practical path to fault tolerance."

func TestService_CreateArticle_Permissions(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	reader := Identity{UserID: uuid.New(), Role: models.RoleReader}

	_, err := s.CreateArticle(context.Background(), reader, CreateArticleParams{
		Title: "t", Content: "c",
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_CreateArticle_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	author := Identity{UserID: uuid.New(), Role: models.RoleAuthor}

	_, err := s.CreateArticle(context.Background(), author, CreateArticleParams{Title: "   ", Content: "c"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateArticle(context.Background(), author, CreateArticleParams{Title: "t", Content: "   "})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateArticle_DerivedFields(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	author := Identity{UserID: uuid.New(), Role: models.RoleAuthor}

	var saved *models.Article
	ms.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Article) error {
			saved = a
			return nil
		})

	got, err := s.CreateArticle(context.Background(), author, CreateArticleParams{
		Title:   "Quantum milestone",
		Content: articleContent,
		Summary: "Error correction at scale.",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	require.Equal(t, models.StatusDraft, got.Status)
	require.Equal(t, "en", got.Language)
	require.Equal(t, author.UserID, *got.AuthorID)

	require.Equal(t, scoring.WordCount(articleContent), got.WordCount)
	require.Equal(t, scoring.ReadingTime(articleContent), got.ReadingTime)
	require.Equal(t, scoring.QualityScore(articleContent, "Quantum milestone", "Error correction at scale."), got.QualityScore)
	require.NotEmpty(t, got.SEOKeywords)
}

func TestService_ArticleByID_DraftVisibility(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	draft := &models.Article{ID: uuid.New(), AuthorID: &authorID, Status: models.StatusDraft}

	// Аноним черновик не видит.
	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)
	_, err := s.ArticleByID(context.Background(), nil, draft.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Чужой читатель — тоже.
	reader := Identity{UserID: uuid.New(), Role: models.RoleReader}
	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)
	_, err = s.ArticleByID(context.Background(), &reader, draft.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Автор видит свой черновик; просмотры черновика не считаются.
	owner := Identity{UserID: authorID, Role: models.RoleAuthor}
	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)
	got, err := s.ArticleByID(context.Background(), &owner, draft.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, got.ID)
}

func TestService_ArticleByID_PublishedCountsView(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	article := &models.Article{ID: uuid.New(), Status: models.StatusPublished, ViewCount: 7}

	ms.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	ms.EXPECT().IncrementViewCount(gomock.Any(), article.ID).Return(nil)

	got, err := s.ArticleByID(context.Background(), nil, article.ID)
	require.NoError(t, err)
	require.Equal(t, int64(8), got.ViewCount)

	// Сбой инкремента не мешает чтению.
	article2 := &models.Article{ID: uuid.New(), Status: models.StatusPublished, ViewCount: 7}
	ms.EXPECT().ArticleByID(gomock.Any(), article2.ID).Return(article2, nil)
	ms.EXPECT().IncrementViewCount(gomock.Any(), article2.ID).Return(errors.New("timeout"))

	got, err = s.ArticleByID(context.Background(), nil, article2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.ViewCount)
}

func TestService_UpdateArticle_RecomputesDerived(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	owner := Identity{UserID: authorID, Role: models.RoleAuthor}
	current := &models.Article{
		ID:       uuid.New(),
		AuthorID: &authorID,
		Title:    "Old title",
		Content:  "Old content.",
		Status:   models.StatusDraft,
	}

	newContent := articleContent

	ms.EXPECT().ArticleByID(gomock.Any(), current.ID).Return(current, nil)
	ms.EXPECT().UpdateArticle(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, upd models.ArticleUpdate) (*models.Article, error) {
			require.NotNil(t, upd.WordCount)
			require.Equal(t, scoring.WordCount(newContent), *upd.WordCount)
			require.NotNil(t, upd.ReadingTime)
			require.NotNil(t, upd.QualityScore)
			require.NotNil(t, upd.SEOKeywords)
			return current, nil
		})

	_, err := s.UpdateArticle(context.Background(), owner, current.ID, models.ArticleUpdate{Content: &newContent})
	require.NoError(t, err)
}

func TestService_UpdateArticle_ForeignDenied(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	current := &models.Article{ID: uuid.New(), AuthorID: &authorID, Status: models.StatusDraft}
	stranger := Identity{UserID: uuid.New(), Role: models.RoleAuthor}

	ms.EXPECT().ArticleByID(gomock.Any(), current.ID).Return(current, nil)

	title := "hijack"
	_, err := s.UpdateArticle(context.Background(), stranger, current.ID, models.ArticleUpdate{Title: &title})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_PublishArticle(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	owner := Identity{UserID: authorID, Role: models.RoleAuthor}
	draft := &models.Article{ID: uuid.New(), AuthorID: &authorID, Status: models.StatusDraft}
	published := &models.Article{ID: draft.ID, AuthorID: &authorID, Status: models.StatusPublished}

	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(draft, nil)
	ms.EXPECT().SetArticleStatus(gomock.Any(), draft.ID, models.StatusPublished).Return(nil)
	ms.EXPECT().ArticleByID(gomock.Any(), draft.ID).Return(published, nil)

	got, err := s.PublishArticle(context.Background(), owner, draft.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusPublished, got.Status)
}

func TestService_ListArticles_NonPublishedScoping(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// Аноним не может запросить черновики.
	_, _, err := s.ListArticles(context.Background(), nil, models.ArticleListOptions{Status: models.StatusDraft})
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Не-админ принудительно ограничивается своими статьями.
	author := Identity{UserID: uuid.New(), Role: models.RoleAuthor}
	ms.EXPECT().ListArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.ArticleListOptions) ([]models.Article, int64, error) {
			require.NotNil(t, opts.AuthorID)
			require.Equal(t, author.UserID, *opts.AuthorID)
			return nil, 0, nil
		})
	_, _, err = s.ListArticles(context.Background(), &author, models.ArticleListOptions{Status: models.StatusDraft})
	require.NoError(t, err)

	// Пустой статус означает published.
	ms.EXPECT().ListArticles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.ArticleListOptions) ([]models.Article, int64, error) {
			require.Equal(t, models.StatusPublished, opts.Status)
			return nil, 0, nil
		})
	_, _, err = s.ListArticles(context.Background(), nil, models.ArticleListOptions{})
	require.NoError(t, err)
}

func TestService_DeleteArticle_NotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	admin := Identity{UserID: uuid.New(), Role: models.RoleAdministrator}
	id := uuid.New()

	ms.EXPECT().ArticleByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	err := s.DeleteArticle(context.Background(), admin, id)
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, strings.Contains(err.Error(), "sql"))
}
