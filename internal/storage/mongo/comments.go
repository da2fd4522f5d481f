package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentDoc — документ коллекции comments.
// UUID храним строками: единый вид с PostgreSQL-идентификаторами.
type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ArticleID string             `bson:"article_id"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d commentDoc) toModel() (models.Comment, error) {
	articleID, err := uuid.Parse(d.ArticleID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("bad article_id %q: %w", d.ArticleID, err)
	}

	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("bad user_id %q: %w", d.UserID, err)
	}

	return models.Comment{
		ID:        d.ID.Hex(),
		ArticleID: articleID,
		UserID:    userID,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}, nil
}

// SaveComment создаёт комментарий и возвращает его с присвоенным ObjectID.
func (m *Mongo) SaveComment(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/SaveComment"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := commentDoc{
		ArticleID: c.ArticleID.String(),
		UserID:    c.UserID.String(),
		Content:   c.Content,
		CreatedAt: now,
	}

	res, err := m.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}

	out := *c
	out.ID = oid.Hex()
	out.CreatedAt = now

	return &out, nil
}

// CommentsByArticle возвращает комментарии статьи (новые первыми).
func (m *Mongo) CommentsByArticle(ctx context.Context, articleID uuid.UUID, limit int32) ([]models.Comment, error) {
	const op = "storage/mongo/CommentsByArticle"

	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := m.comments.Find(ctx, bson.D{{Key: "article_id", Value: articleID.String()}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Comment
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		c, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// DeleteComment удаляет комментарий по hex-идентификатору.
// Ошибки: storage.ErrNotFound при невалидном ID или отсутствии документа.
func (m *Mongo) DeleteComment(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteComment"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: delete: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.CommentStorage = (*Mongo)(nil)
