package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSortable = map[string]string{
	"id":           "id",
	"name":         "name",
	"created_date": "created_date",
}

func TestNewPageRequest_Clamping(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 0, 10},
		{"negative page", -3, 5, 0, 5},
		{"negative page size", 1, -1, 1, 10},
		{"page size over max", 2, 1000, 2, 100},
		{"page size at max", 0, 100, 0, 100},
		{"huge page", math.MaxInt / 50, 100, math.MaxInt32 / 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPageRequest(tt.page, tt.pageSize, "", testSortable, "created_date", 10, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestNewPageRequest_Offset(t *testing.T) {
	p, err := NewPageRequest(3, 20, "", testSortable, "id", 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 60, p.Offset())

	p, err = NewPageRequest(math.MaxInt/50, 100, "", testSortable, "id", 10, 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name     string
		sort     string
		wantCol  string
		wantDesc bool
		wantErr  bool
	}{
		{"empty uses default", "", "created_date", false, false},
		{"field only", "name", "name", false, false},
		{"asc", "name,asc", "name", false, false},
		{"desc upper case", "NAME,DESC", "name", true, false},
		{"spaces", " created_date , desc ", "created_date", true, false},
		{"unknown field", "password", "", false, true},
		{"sql injection", "name;DROP TABLE courses", "", false, true},
		{"unknown direction", "name,sideways", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, desc, err := ParseSort(tt.sort, testSortable, "created_date")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestPageRequest_OrderBy(t *testing.T) {
	assert.Equal(t, "created_date ASC, id ASC", PageRequest{SortColumn: "created_date"}.OrderBy())
	assert.Equal(t, "name DESC, id DESC", PageRequest{SortColumn: "name", SortDesc: true}.OrderBy())
	assert.Equal(t, "id DESC", PageRequest{SortColumn: "id", SortDesc: true}.OrderBy())
	assert.Equal(t, "u.name ASC, u.id ASC", PageRequest{SortColumn: "name"}.OrderByAlias("u"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
