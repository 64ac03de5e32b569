package domain

import "time"

// EmptyFeatureCollection is served for projects without stored features.
const EmptyFeatureCollection = `{"type":"FeatureCollection","features":[]}`

// FeatureDocument is the raw GeoJSON FeatureCollection stored for a project.
type FeatureDocument struct {
	ProjectID int64     `db:"project_id"`
	Content   string    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}
