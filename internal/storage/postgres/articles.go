package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// articleColumns — единый список колонок таблицы articles,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const articleColumns = `
id, title, content, summary, author_id, anonymous_author, status, category,
subcategory, tags, language, reading_time, word_count, source_url, image_urls,
seo_keywords, metadata, view_count, like_count, comment_count, share_count,
engagement_score, quality_score, trending_score, published_at, created_at, updated_at
`

// scanArticle сканирует одну строку статьи из результата запроса в доменную модель.
func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article

	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Summary,
		&a.AuthorID,
		&a.AnonymousAuthor,
		&a.Status,
		&a.Category,
		&a.Subcategory,
		&a.Tags,
		&a.Language,
		&a.ReadingTime,
		&a.WordCount,
		&a.SourceURL,
		&a.ImageURLs,
		&a.SEOKeywords,
		&a.Metadata,
		&a.ViewCount,
		&a.LikeCount,
		&a.CommentCount,
		&a.ShareCount,
		&a.EngagementScore,
		&a.QualityScore,
		&a.TrendingScore,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

// SaveArticle вставляет новую запись статьи.
func (s *Storage) SaveArticle(ctx context.Context, article *models.Article) error {
	const op = "storage/postgres/articles/SaveArticle"

	q := `
	INSERT INTO articles (id, title, content, summary, author_id, anonymous_author,
		status, category, subcategory, tags, language, reading_time, word_count,
		source_url, image_urls, seo_keywords, metadata, engagement_score,
		quality_score, trending_score, published_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23)
	`

	_, err := s.db.Exec(ctx, q,
		article.ID,
		article.Title,
		article.Content,
		article.Summary,
		article.AuthorID,
		article.AnonymousAuthor,
		article.Status,
		article.Category,
		article.Subcategory,
		article.Tags,
		article.Language,
		article.ReadingTime,
		article.WordCount,
		article.SourceURL,
		article.ImageURLs,
		article.SEOKeywords,
		article.Metadata,
		article.EngagementScore,
		article.QualityScore,
		article.TrendingScore,
		article.PublishedAt,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ArticleByID возвращает статью по идентификатору.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage/postgres/articles/ArticleByID"

	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	result, err := scanArticle(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ArticlesByIDs возвращает найденные статьи в порядке входного списка.
// Отсутствующие идентификаторы молча пропускаются.
func (s *Storage) ArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Article, error) {
	const op = "storage/postgres/articles/ArticlesByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = ANY($1)`

	rows, err := s.db.Query(ctx, q, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]models.Article, len(ids))
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byID[a.ID] = *a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Порядок входного списка задаёт порядок выдачи (ранжирование модели).
	result := make([]models.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			result = append(result, a)
		}
	}

	return result, nil
}

// UpdateArticle выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Перевод в status='published' выставляет published_at, если он ещё пуст.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateArticle(ctx context.Context, id uuid.UUID, upd models.ArticleUpdate) (*models.Article, error) {
	const op = "storage/postgres/articles/UpdateArticle"

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 14)
	count := 1

	add := func(column string, value any) {
		count++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, count))
		args = append(args, value)
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Content != nil {
		add("content", *upd.Content)
	}
	if upd.Summary != nil {
		add("summary", *upd.Summary)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Subcategory != nil {
		add("subcategory", *upd.Subcategory)
	}
	if upd.Tags != nil {
		add("tags", *upd.Tags)
	}
	if upd.Language != nil {
		add("language", *upd.Language)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
		if *upd.Status == models.StatusPublished {
			sets = append(sets, "published_at = COALESCE(published_at, now())")
		}
	}
	if upd.AnonymousAuthor != nil {
		add("anonymous_author", *upd.AnonymousAuthor)
	}
	if upd.Metadata != nil {
		add("metadata", *upd.Metadata)
	}
	if upd.ReadingTime != nil {
		add("reading_time", *upd.ReadingTime)
	}
	if upd.WordCount != nil {
		add("word_count", *upd.WordCount)
	}
	if upd.SEOKeywords != nil {
		add("seo_keywords", *upd.SEOKeywords)
	}
	if upd.QualityScore != nil {
		add("quality_score", *upd.QualityScore)
	}

	count++
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE articles SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), count, articleColumns)

	result, err := scanArticle(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteArticle удаляет статью.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/articles/DeleteArticle"

	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListArticles возвращает страницу статей и общее число под фильтром.
// SortBy ограничен белым списком колонок; по умолчанию created_at DESC.
func (s *Storage) ListArticles(ctx context.Context, opts models.ArticleListOptions) ([]models.Article, int64, error) {
	const op = "storage/postgres/articles/ListArticles"

	where := []string{"TRUE"}
	args := make([]any, 0, 6)
	count := 0

	if opts.Status != "" {
		count++
		where = append(where, fmt.Sprintf("status = $%d", count))
		args = append(args, opts.Status)
	}
	if opts.Category != "" {
		count++
		where = append(where, fmt.Sprintf("category = $%d", count))
		args = append(args, opts.Category)
	}
	if opts.Language != "" {
		count++
		where = append(where, fmt.Sprintf("language = $%d", count))
		args = append(args, opts.Language)
	}
	if opts.AuthorID != nil {
		count++
		where = append(where, fmt.Sprintf("author_id = $%d", count))
		args = append(args, *opts.AuthorID)
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM articles WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	// Белый список сортировок: имя колонки из запроса в SQL не попадает.
	orderBy := "created_at"
	switch opts.SortBy {
	case "published_at", "view_count", "trending_score", "engagement_score", "quality_score", "created_at":
		orderBy = opts.SortBy
	}
	dir := "DESC"
	if strings.EqualFold(opts.SortOrder, "asc") {
		dir = "ASC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	q := fmt.Sprintf(`SELECT %s FROM articles WHERE %s ORDER BY %s %s, id DESC LIMIT $%d OFFSET $%d`,
		articleColumns, cond, orderBy, dir, count+1, count+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return articles, total, nil
}

// TrendingArticles возвращает опубликованные статьи, отсортированные по
// trending_score DESC, engagement_score DESC. Пустые categories/excludeIDs —
// без соответствующего фильтра.
func (s *Storage) TrendingArticles(ctx context.Context, categories []string, excludeIDs []uuid.UUID, limit int32) ([]models.Article, error) {
	const op = "storage/postgres/articles/TrendingArticles"

	if limit <= 0 {
		limit = 10
	}

	args := []any{models.StatusPublished}
	cond := "status = $1"
	if len(categories) > 0 {
		args = append(args, categories)
		cond += fmt.Sprintf(" AND category = ANY($%d)", len(args))
	}
	if len(excludeIDs) > 0 {
		args = append(args, excludeIDs)
		cond += fmt.Sprintf(" AND NOT (id = ANY($%d))", len(args))
	}
	args = append(args, limit)

	q := fmt.Sprintf(`SELECT %s FROM articles WHERE %s
		ORDER BY trending_score DESC, engagement_score DESC, id DESC LIMIT $%d`,
		articleColumns, cond, len(args))

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

// SearchArticles выполняет полнотекстовый поиск по опубликованным статьям
// (tsvector по title/content/summary, websearch_to_tsquery).
// Сортировка: relevance (ts_rank), date (published_at) или popularity (view_count).
func (s *Storage) SearchArticles(ctx context.Context, opts models.SearchOptions) ([]models.Article, int64, error) {
	const op = "storage/postgres/articles/SearchArticles"

	where := []string{
		"status = $1",
		"search_vector @@ websearch_to_tsquery('simple', $2)",
	}
	args := []any{models.StatusPublished, opts.Query}
	count := 2

	if len(opts.Categories) > 0 {
		count++
		where = append(where, fmt.Sprintf("category = ANY($%d)", count))
		args = append(args, opts.Categories)
	}
	if len(opts.Languages) > 0 {
		count++
		where = append(where, fmt.Sprintf("language = ANY($%d)", count))
		args = append(args, opts.Languages)
	}
	if opts.AuthorID != nil {
		count++
		where = append(where, fmt.Sprintf("author_id = $%d", count))
		args = append(args, *opts.AuthorID)
	}
	if opts.DateFrom != nil {
		count++
		where = append(where, fmt.Sprintf("published_at >= $%d", count))
		args = append(args, opts.DateFrom.UTC())
	}
	if opts.DateTo != nil {
		count++
		where = append(where, fmt.Sprintf("published_at <= $%d", count))
		args = append(args, opts.DateTo.UTC())
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM articles WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	orderBy := "ts_rank(search_vector, websearch_to_tsquery('simple', $2)) DESC"
	switch opts.SortBy {
	case models.SortDate:
		orderBy = "published_at DESC"
	case models.SortPopularity:
		orderBy = "view_count DESC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	q := fmt.Sprintf(`SELECT %s FROM articles WHERE %s ORDER BY %s, id DESC LIMIT $%d OFFSET $%d`,
		articleColumns, cond, orderBy, count+1, count+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return articles, total, nil
}

// IncrementViewCount атомарно увеличивает счётчик просмотров.
// Отсутствие записи не считается ошибкой.
func (s *Storage) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/articles/IncrementViewCount"

	if _, err := s.db.Exec(ctx, `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetArticleStatus меняет статус статьи. Перевод в 'published' выставляет
// published_at, если он ещё пуст.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) SetArticleStatus(ctx context.Context, id uuid.UUID, status models.ArticleStatus) error {
	const op = "storage/postgres/articles/SetArticleStatus"

	q := `
	UPDATE articles
	SET status = $2,
		published_at = CASE WHEN $2 = 'published' THEN COALESCE(published_at, now()) ELSE published_at END,
		updated_at = now()
	WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, q, id, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
