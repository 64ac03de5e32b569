package domain

import (
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 2000

type Comment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProjectID  int64     `db:"project_id" json:"projectId"`
	Content    string    `db:"content" json:"content"`
	AuthorName string    `db:"author_name" json:"authorName"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
