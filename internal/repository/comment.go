package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shared-city/backend/internal/domain"
)

type commentRepository struct {
	db *sqlx.DB
}

func newCommentRepository(db *sqlx.DB) *commentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const op = "repository.comment.Create"

	const query = `
	INSERT INTO comment (id, project_id, content, author_name, created_at)
	VALUES (uuid_to_bin(:id), :project_id, :content, :author_name, :created_at)
	`

	res, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("%s: insert comment failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *commentRepository) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Comment, error) {
	const query = `
	SELECT id, project_id, content, author_name, created_at
	FROM comment
	WHERE project_id = ?
	ORDER BY created_at DESC
	`

	comments := make([]domain.Comment, 0)
	if err := r.db.SelectContext(ctx, &comments, query, projectID); err != nil {
		return nil, fmt.Errorf("select comments by project failed: %w", err)
	}

	return comments, nil
}
