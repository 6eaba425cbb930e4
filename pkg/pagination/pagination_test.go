package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: -3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage, "per_page is capped at 100")

	p = &PaginationParams{Page: 4, PerPage: 25}
	p.Validate()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	first := NewPagination(1, 15, 10)
	assert.Equal(t, 1, first.TotalPages)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)
}
