package models

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestLimitOffset(t *testing.T) {
	tests := []struct {
		page           int
		limit, offset  int
	}{
		{0, 21, 0},
		{-3, 21, 0},
		{1, 21, 0},
		{2, 21, 20},
		{5, 21, 80},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.page), func(t *testing.T) {
			limit, offset := LimitOffset(tt.page)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestNewPage_FirstPageWithMore(t *testing.T) {
	p := NewPage(1, seq(PageSize+1))

	assert.Len(t, p.List, PageSize)
	require.NotNil(t, p.Next)
	assert.Equal(t, 2, *p.Next)
	assert.Nil(t, p.Previous)
}

func TestNewPage_ShortLastPage(t *testing.T) {
	p := NewPage(3, seq(5))

	assert.Len(t, p.List, 5)
	assert.Nil(t, p.Next, "no next page when fewer rows than the page size came back")
	require.NotNil(t, p.Previous)
	assert.Equal(t, 2, *p.Previous)
}

func TestNewPage_ExactlyFullPage(t *testing.T) {
	p := NewPage(1, seq(PageSize))

	assert.Len(t, p.List, PageSize)
	assert.Nil(t, p.Next)
}

func TestNewPage_Empty(t *testing.T) {
	p := NewPage[int](1, nil)

	assert.NotNil(t, p.List)
	assert.Empty(t, p.List)
}

func TestMapPage(t *testing.T) {
	p := NewPage(2, []int{1, 2, 3})

	out, err := MapPage(p, func(i int) (string, error) { return strconv.Itoa(i), nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, out.List)
	assert.Equal(t, p.Previous, out.Previous)

	_, err = MapPage(p, func(i int) (string, error) { return "", errors.New("boom") })
	assert.Error(t, err)
}
