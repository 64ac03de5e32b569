package domain

const (
	StatusNotStarted = "notStarted"
	StatusInProgress = "inProgress"
	StatusCompleted  = "completed"
	StatusDelayed    = "delayed"
)

// Project is a municipal infrastructure project. Status is kept as a free string.
type Project struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	StartDate   *Date     `db:"start_date" json:"startDate"`
	EndDate     *Date     `db:"end_date" json:"endDate"`
	CreatedAt   *Date     `db:"created_at" json:"createdAt"`
	Category    *Category `db:"category" json:"category"`
	CenterLng   *float64  `db:"center_lng" json:"centerLng"`
	CenterLat   *float64  `db:"center_lat" json:"centerLat"`
}

// ProjectStats counts projects per status and per category.
type ProjectStats struct {
	Total      int64            `json:"total"`
	Statuses   map[string]int64 `json:"statuses"`
	Categories map[string]int64 `json:"categories"`
}
