package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий к статье (хранится в MongoDB).
type Comment struct {
	ID        string    `json:"id"`
	ArticleID uuid.UUID `json:"article_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
