package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	p := Project{Name: "x", StartDate: &Date{}}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","startDate":"2023-01-15","endDate":null}`), &p))

	require.NotNil(t, p.StartDate)
	assert.Equal(t, "2023-01-15", p.StartDate.String())
	assert.Nil(t, p.EndDate)

	out, err := json.Marshal(p.StartDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"2023-01-15"`, string(out))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2023, 3, 1, 15, 4, 5, 0, time.Local)))
	assert.Equal(t, "2023-03-01", d.String())

	require.NoError(t, d.Scan([]byte("2024-02-28")))
	assert.Equal(t, "2024-02-28", d.String())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("28.02.2024"))
}
