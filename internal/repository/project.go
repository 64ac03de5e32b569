package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shared-city/backend/internal/domain"
)

const projectColumns = `id, name, description, status, start_date, end_date, created_at, category, center_lng, center_lat`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type projectRepository struct {
	db *sqlx.DB
}

func newProjectRepository(db *sqlx.DB) *projectRepository {
	return &projectRepository{
		db: db,
	}
}

// containsPattern matches keyword as a literal substring.
func containsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

func (r *projectRepository) selectProjects(ctx context.Context, op string, where string, args ...interface{}) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM project`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY id ASC`

	projects := make([]domain.Project, 0)
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("%s: select projects failed: %w", op, err)
	}

	return projects, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	return r.selectProjects(ctx, "repository.project.GetAll", "")
}

func (r *projectRepository) GetByCategory(ctx context.Context, category domain.Category) ([]domain.Project, error) {
	return r.selectProjects(ctx, "repository.project.GetByCategory", `category = ?`, category)
}

func (r *projectRepository) GetByCategoryAndStatus(ctx context.Context, category domain.Category, status string) ([]domain.Project, error) {
	return r.selectProjects(ctx, "repository.project.GetByCategoryAndStatus", `category = ? AND status = ?`, category, status)
}

func (r *projectRepository) GetByKeyword(ctx context.Context, keyword string) ([]domain.Project, error) {
	pattern := containsPattern(keyword)
	return r.selectProjects(ctx, "repository.project.GetByKeyword", `(name LIKE ? OR description LIKE ?)`, pattern, pattern)
}

func (r *projectRepository) GetByKeywordAndCategory(ctx context.Context, keyword string, category domain.Category) ([]domain.Project, error) {
	pattern := containsPattern(keyword)
	return r.selectProjects(ctx, "repository.project.GetByKeywordAndCategory", `(name LIKE ? OR description LIKE ?) AND category = ?`, pattern, pattern, category)
}

func (r *projectRepository) GetOneByID(ctx context.Context, id int64) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM project WHERE id = ?`

	var project domain.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from project by id failed: %w", err)
	}

	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const op = "repository.project.Create"

	const query = `
	INSERT INTO project (name, description, status, start_date, end_date, created_at, category, center_lng, center_lat)
	VALUES (:name, :description, :status, :start_date, :end_date, :created_at, :category, :center_lng, :center_lat)
	`

	res, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("%s: insert project failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: get last insert id failed: %w", op, err)
	}
	project.ID = id

	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const op = "repository.project.Update"

	const query = `
	UPDATE project
	SET name = :name, description = :description, status = :status, start_date = :start_date, end_date = :end_date,
		created_at = :created_at, category = :category, center_lng = :center_lng, center_lat = :center_lat
	WHERE id = :id
	`

	if _, err := r.db.NamedExecContext(ctx, query, project); err != nil {
		return fmt.Errorf("%s: update project failed: %w", op, err)
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	const op = "repository.project.Delete"

	res, err := r.db.ExecContext(ctx, `DELETE FROM project WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: delete project failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM project`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count projects failed: %w", err)
	}
	return count, nil
}

func (r *projectRepository) GetStats(ctx context.Context) (*domain.ProjectStats, error) {
	type groupStat struct {
		Value sql.NullString `db:"value"`
		Count int64          `db:"count"`
	}

	stats := &domain.ProjectStats{
		Statuses:   make(map[string]int64),
		Categories: make(map[string]int64),
	}

	var byStatus []groupStat
	if err := r.db.SelectContext(ctx, &byStatus, `SELECT status AS value, COUNT(*) AS count FROM project GROUP BY status`); err != nil {
		return nil, fmt.Errorf("get project status stats failed: %w", err)
	}
	for _, s := range byStatus {
		stats.Statuses[s.Value.String] = s.Count
		stats.Total += s.Count
	}

	var byCategory []groupStat
	if err := r.db.SelectContext(ctx, &byCategory, `SELECT category AS value, COUNT(*) AS count FROM project WHERE category IS NOT NULL GROUP BY category`); err != nil {
		return nil, fmt.Errorf("get project category stats failed: %w", err)
	}
	for _, s := range byCategory {
		stats.Categories[s.Value.String] = s.Count
	}

	return stats, nil
}
