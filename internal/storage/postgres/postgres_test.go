package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    users: создание/чтение/частичный апдейт, конфликт уникальности, мягкое удаление;
//    articles: ArticlesByIDs с сохранением порядка, TrendingArticles (сортировка и фильтр категорий);
//    interactions: транзакционный инкремент агрегатов, ReadArticleIDs;
//    recommendation_cache: выбор свежего активного снапшота, пропуск просроченных/неактивных;
//    payments: pending -> confirmed и ErrInvalidState при повторном подтверждении.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// mustUser — создаёт пользователя с уникальными username/email.
func mustUser(t *testing.T, st *Storage) *models.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	u := &models.User{
		ID:           uuid.New(),
		Username:     "user_" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.org",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleReader,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActive:   now,
		IsActive:     true,
	}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

// mustArticle — создаёт опубликованную статью с заданными скорами.
func mustArticle(t *testing.T, st *Storage, author *models.User, category string, trending, engagement float64) *models.Article {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	a := &models.Article{
		ID:              uuid.New(),
		Title:           "Title " + uuid.NewString()[:8],
		Content:         "Body content for testing purposes.",
		AuthorID:        &author.ID,
		Status:          models.StatusPublished,
		Category:        category,
		Tags:            []string{"tag"},
		Language:        "en",
		ReadingTime:     1,
		WordCount:       6,
		TrendingScore:   trending,
		EngagementScore: engagement,
		PublishedAt:     &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, st.SaveArticle(context.Background(), a))
	return a
}

func TestIntegration_Users_CRUD(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st)

	got, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)
	require.Equal(t, models.RoleReader, got.Role)

	byName, err := st.UserByUsername(ctx, u.Username)
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)

	// Конфликт username.
	dup := *u
	dup.ID = uuid.New()
	dup.Email = "other@example.org"
	err = st.SaveUser(ctx, &dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	// Частичный апдейт: меняем только anonymous_mode.
	anon := true
	upd, err := st.UpdateUser(ctx, u.ID, models.UserUpdate{AnonymousMode: &anon})
	require.NoError(t, err)
	require.True(t, upd.AnonymousMode)
	require.Equal(t, u.Username, upd.Username)

	// Мягкое удаление.
	require.NoError(t, st.DeactivateUser(ctx, u.ID))
	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	_, err = st.UserByID(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Articles_ByIDs_PreservesOrder(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := mustUser(t, st)

	a1 := mustArticle(t, st, author, "tech", 10, 1)
	a2 := mustArticle(t, st, author, "tech", 20, 2)
	a3 := mustArticle(t, st, author, "tech", 30, 3)

	// Порядок запроса, не порядок вставки; отсутствующий ID пропускается.
	got, err := st.ArticlesByIDs(ctx, []uuid.UUID{a2.ID, uuid.New(), a3.ID, a1.ID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, a2.ID, got[0].ID)
	require.Equal(t, a3.ID, got[1].ID)
	require.Equal(t, a1.ID, got[2].ID)
}

func TestIntegration_Articles_Trending(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := mustUser(t, st)

	low := mustArticle(t, st, author, "tech", 10, 5)
	high := mustArticle(t, st, author, "tech", 50, 1)
	tieA := mustArticle(t, st, author, "life", 30, 9)
	tieB := mustArticle(t, st, author, "life", 30, 2)

	// Черновик в выдачу не попадает.
	draft := mustArticle(t, st, author, "tech", 99, 99)
	require.NoError(t, st.SetArticleStatus(ctx, draft.ID, models.StatusDraft))

	got, err := st.TrendingArticles(ctx, nil, nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, high.ID, got[0].ID)
	// Тай-брейк по engagement_score.
	require.Equal(t, tieA.ID, got[1].ID)
	require.Equal(t, tieB.ID, got[2].ID)
	require.Equal(t, low.ID, got[3].ID)

	// Фильтр по категориям.
	tech, err := st.TrendingArticles(ctx, []string{"tech"}, nil, 10)
	require.NoError(t, err)
	require.Len(t, tech, 2)
	require.Equal(t, high.ID, tech[0].ID)

	// Исключение уже просмотренных статей.
	excl, err := st.TrendingArticles(ctx, nil, []uuid.UUID{high.ID, tieA.ID}, 10)
	require.NoError(t, err)
	require.Len(t, excl, 2)
	require.Equal(t, tieB.ID, excl[0].ID)
	require.Equal(t, low.ID, excl[1].ID)
}

func TestIntegration_Interactions_TxCounters(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	user := mustUser(t, st)
	author := mustUser(t, st)
	article := mustArticle(t, st, author, "tech", 1, 1)

	save := func(typ models.InteractionType) {
		it := &models.Interaction{
			ID:        uuid.New(),
			UserID:    user.ID,
			ArticleID: article.ID,
			Type:      typ,
			Strength:  1,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, st.SaveInteraction(ctx, it))
	}

	save(models.InteractionLike)
	save(models.InteractionView)
	save(models.InteractionShare)
	save(models.InteractionSave) // счётчик не меняет

	got, err := st.ArticleByID(ctx, article.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.LikeCount)
	require.EqualValues(t, 1, got.ViewCount)
	require.EqualValues(t, 1, got.ShareCount)

	ids, err := st.ReadArticleIDs(ctx, user.ID, models.ReadInteractionTypes())
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{article.ID}, ids)

	// dislike не входит в «прочитанные» типы.
	other, err := st.ReadArticleIDs(ctx, user.ID, []models.InteractionType{models.InteractionDislike})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestIntegration_RecommendationCache_LatestActive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	user := mustUser(t, st)
	author := mustUser(t, st)
	a1 := mustArticle(t, st, author, "tech", 1, 1)
	a2 := mustArticle(t, st, author, "tech", 2, 2)

	now := time.Now().UTC()
	insert := func(ids []uuid.UUID, ts, expiry time.Time, active bool, model string) {
		_, err := st.db.Exec(ctx, `
			INSERT INTO recommendation_cache (user_id, recommended_article_ids, scores,
				model_ensemble, cache_timestamp, expiry_timestamp, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			user.ID, ids, []float64{0.9, 0.5}, model, ts, expiry, active)
		require.NoError(t, err)
	}

	insert([]uuid.UUID{a1.ID, a2.ID}, now.Add(-2*time.Hour), now.Add(time.Hour), true, "old")
	insert([]uuid.UUID{a2.ID, a1.ID}, now.Add(-time.Minute), now.Add(time.Hour), true, "fresh")
	insert([]uuid.UUID{a1.ID}, now, now.Add(-time.Minute), true, "expired")
	insert([]uuid.UUID{a1.ID}, now, now.Add(time.Hour), false, "inactive")

	rec, err := st.LatestActiveForUser(ctx, user.ID, now)
	require.NoError(t, err)
	require.Equal(t, "fresh", rec.ModelEnsemble)
	require.Equal(t, []uuid.UUID{a2.ID, a1.ID}, rec.ArticleIDs)
	require.Equal(t, []float64{0.9, 0.5}, rec.Scores)

	_, err = st.LatestActiveForUser(ctx, uuid.New(), now)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Payments_ConfirmFlow(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := mustUser(t, st)
	donor := mustUser(t, st)
	article := mustArticle(t, st, author, "tech", 1, 1)

	p := &models.Payment{
		ID:              uuid.New(),
		AuthorID:        author.ID,
		ArticleID:       article.ID,
		DonorID:         &donor.ID,
		Amount:          1.0,
		PlatformFee:     0.025,
		NetAmount:       0.975,
		Currency:        "ETH",
		TransactionHash: "0x" + uuid.NewString(),
		Status:          models.PaymentPending,
		Type:            models.PaymentNFTDonation,
		Network:         "ethereum",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, st.SavePayment(ctx, p))

	// Дубликат transaction_hash.
	dup := *p
	dup.ID = uuid.New()
	require.ErrorIs(t, st.SavePayment(ctx, &dup), storage.ErrAlreadyExists)

	confirmed, err := st.ConfirmPayment(ctx, p.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, models.PaymentConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)

	// Повторное подтверждение недопустимо.
	_, err = st.ConfirmPayment(ctx, p.ID, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrInvalidState)

	_, err = st.ConfirmPayment(ctx, uuid.New(), time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)

	stats, err := st.AuthorStats(ctx, author.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalDonations)
	require.InDelta(t, 0.975, stats.TotalReceived, 1e-9)
	require.Len(t, stats.TopArticles, 1)
	require.Equal(t, article.ID, stats.TopArticles[0].ArticleID)
}
