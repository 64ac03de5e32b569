package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shared-city/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{"id", "name", "description", "status", "start_date", "end_date", "created_at", "category", "center_lng", "center_lat"}

func TestProjectRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM project ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(1, "智慧城市建设项目", "城市基础设施智能化改造项目", "inProgress", "2023-01-15", "2023-12-31", "2023-01-01", "PUBLIC_FACILITIES", 104.0668, 30.5728).
			AddRow(2, "draft", "", "", nil, nil, nil, nil, nil, nil))

	projects, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, int64(1), first.ID)
	require.NotNil(t, first.Category)
	assert.Equal(t, domain.PublicFacilities, *first.Category)
	assert.Equal(t, "2023-01-15", first.StartDate.String())
	assert.InDelta(t, 104.0668, *first.CenterLng, 1e-9)

	second := projects[1]
	assert.Nil(t, second.Category)
	assert.Nil(t, second.StartDate)
	assert.Nil(t, second.CenterLat)
}

func TestProjectRepository_GetAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`FROM project`).WillReturnRows(sqlmock.NewRows(projectRowColumns))

	projects, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepository_GetByKeywordEscapesPattern(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`WHERE \(name LIKE \? OR description LIKE \?\) ORDER BY id ASC`).
		WithArgs(`%100\%\_\_%`, `%100\%\_\_%`).
		WillReturnRows(sqlmock.NewRows(projectRowColumns))

	projects, err := repo.GetByKeyword(context.Background(), "100%__")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectRepository_GetByKeywordAndCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`WHERE \(name LIKE \? OR description LIKE \?\) AND category = \? ORDER BY id ASC`).
		WithArgs("%交通%", "%交通%", "ROAD_TRAFFIC").
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(2, "公共交通优化工程", "城市公共交通系统升级与优化", "inProgress", "2023-03-01", "2023-10-31", "2023-02-15", "ROAD_TRAFFIC", 104.1, 30.6))

	projects, err := repo.GetByKeywordAndCategory(context.Background(), "交通", domain.RoadTraffic)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "公共交通优化工程", projects[0].Name)
}

func TestProjectRepository_GetByCategoryAndStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`WHERE category = \? AND status = \? ORDER BY id ASC`).
		WithArgs("ROAD_TRAFFIC", "inProgress").
		WillReturnRows(sqlmock.NewRows(projectRowColumns))

	_, err := repo.GetByCategoryAndStatus(context.Background(), domain.RoadTraffic, "inProgress")
	require.NoError(t, err)
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	category := domain.RoadTraffic
	start := domain.MustParseDate("2023-03-01")
	project := &domain.Project{Name: "公共交通优化工程", Status: "inProgress", Category: &category, StartDate: &start}

	mock.ExpectExec(`INSERT INTO project`).
		WithArgs("公共交通优化工程", "", "inProgress", "2023-03-01", nil, nil, "ROAD_TRAFFIC", nil, nil).
		WillReturnResult(sqlmock.NewResult(42, 1))

	require.NoError(t, repo.Create(context.Background(), project))
	assert.Equal(t, int64(42), project.ID)
}

func TestProjectRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectExec(`DELETE FROM project WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 7), domain.ErrNotFound)
}

func TestProjectRepository_GetStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newProjectRepository(db)

	mock.ExpectQuery(`GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"value", "count"}).AddRow("inProgress", 5).AddRow("completed", 1))
	mock.ExpectQuery(`GROUP BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"value", "count"}).AddRow("ROAD_TRAFFIC", 1))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(5), stats.Statuses["inProgress"])
	assert.Equal(t, int64(1), stats.Categories["ROAD_TRAFFIC"])
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%交通%", containsPattern("交通"))
	assert.Equal(t, `%a\%b\_c\\%`, containsPattern(`a%b_c\`))
}
