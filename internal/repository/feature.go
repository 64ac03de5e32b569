package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shared-city/backend/internal/domain"
)

type featureRepository struct {
	db *sqlx.DB
}

func newFeatureRepository(db *sqlx.DB) *featureRepository {
	return &featureRepository{
		db: db,
	}
}

func (r *featureRepository) GetByProjectID(ctx context.Context, projectID int64) (*domain.FeatureDocument, error) {
	const query = `SELECT project_id, content, updated_at FROM project_feature WHERE project_id = ?`

	var doc domain.FeatureDocument
	if err := r.db.GetContext(ctx, &doc, query, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select feature document failed: %w", err)
	}

	return &doc, nil
}

// Upsert stores doc as the single feature document of its project.
func (r *featureRepository) Upsert(ctx context.Context, doc *domain.FeatureDocument) error {
	const query = `
	INSERT INTO project_feature (project_id, content, updated_at)
	VALUES (:project_id, :content, :updated_at)
	ON DUPLICATE KEY UPDATE content = VALUES(content), updated_at = VALUES(updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("upsert feature document failed: %w", err)
	}

	return nil
}
