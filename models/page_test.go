package models

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Derived(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		size      int
		total     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"empty", 0, 10, 0, 0, false, false},
		{"single partial page", 0, 10, 3, 1, false, false},
		{"first of many", 0, 2, 4, 2, true, false},
		{"last of many", 1, 2, 4, 2, false, true},
		{"middle", 1, 2, 5, 3, true, true},
		{"past the end", 7, 2, 4, 2, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Page[int]{Page: tc.page, PageSize: tc.size, TotalCount: tc.total}
			assert.Equal(t, tc.wantPages, p.TotalPages())
			assert.Equal(t, tc.wantNext, p.HasNextPage())
			assert.Equal(t, tc.wantPrev, p.HasPreviousPage())
		})
	}
}

func TestMapPage(t *testing.T) {
	p := Page[int]{Data: []int{1, 2, 3}, Page: 2, PageSize: 3, TotalCount: 9}

	out := MapPage(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, out.Data)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.PageSize)
	assert.Equal(t, 9, out.TotalCount)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.DisplayName())
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.DisplayName())
}
