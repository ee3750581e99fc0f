package paginator_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"event-insights-service/internal/domain"
	"event-insights-service/internal/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseCursor(t *testing.T) {
	c, err := paginator.ParseCursor("")
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = paginator.ParseCursor("0:10:1")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Offset)
	assert.True(t, c.IsPrev)
	assert.Equal(t, "0:10:1", c.String())

	c, err = paginator.ParseCursor("0:100000:0")
	require.NoError(t, err)
	assert.Equal(t, paginator.MaxOffset, c.Offset)

	for _, raw := range []string{"abc", "0:x:0", "0:-5:0", "1:2", "0:1:y", "0:100001:0", "0:9223372036854775807:0"} {
		_, err := paginator.ParseCursor(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidCursor, raw)
	}
}

func TestPerPage(t *testing.T) {
	v, err := paginator.PerPage(nil, 5, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = paginator.PerPage(intPtr(3), 5, 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = paginator.PerPage(intPtr(100), 5, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = paginator.PerPage(intPtr(0), 5, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidPerPage)
}

func TestGenericOffsetPaginator_HasMore(t *testing.T) {
	var gotOffset, gotLimit int
	p := &paginator.GenericOffsetPaginator[int]{
		DataFn: func(ctx context.Context, offset, limit int) ([]int, error) {
			gotOffset, gotLimit = offset, limit
			return []int{1, 2, 3, 4, 5, 6}, nil
		},
	}

	res, err := p.GetResult(context.Background(), 5, &paginator.Cursor{Offset: 5})

	require.NoError(t, err)
	assert.Equal(t, 5, gotOffset)
	assert.Equal(t, 6, gotLimit)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Data)
	assert.True(t, res.Next.Results)
	assert.Equal(t, "0:10:0", res.Next.String())
	assert.True(t, res.Prev.Results)
	assert.Equal(t, "0:0:1", res.Prev.String())
}

func TestGenericOffsetPaginator_LastPage(t *testing.T) {
	p := &paginator.GenericOffsetPaginator[int]{
		DataFn: func(ctx context.Context, offset, limit int) ([]int, error) {
			return nil, nil
		},
	}

	res, err := p.GetResult(context.Background(), 5, nil)

	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.NotNil(t, res.Data)
	assert.False(t, res.Next.Results)
	assert.False(t, res.Prev.Results)
}

func TestGenericOffsetPaginator_OffsetOutOfRange(t *testing.T) {
	called := false
	p := &paginator.GenericOffsetPaginator[int]{
		DataFn: func(ctx context.Context, offset, limit int) ([]int, error) {
			called = true
			return nil, nil
		},
	}

	_, err := p.GetResult(context.Background(), 5, &paginator.Cursor{Offset: paginator.MaxOffset + 1})

	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
	assert.False(t, called)
}

func TestGenericOffsetPaginator_Error(t *testing.T) {
	boom := errors.New("boom")
	p := &paginator.GenericOffsetPaginator[int]{
		DataFn: func(ctx context.Context, offset, limit int) ([]int, error) {
			return nil, boom
		},
	}

	_, err := p.GetResult(context.Background(), 5, nil)
	assert.ErrorIs(t, err, boom)
}

func TestLinkHeader(t *testing.T) {
	base, _ := url.Parse("http://localhost/organizations/acme/events-facets-performance?query=foo&cursor=0:5:0")

	header := paginator.LinkHeader(base,
		paginator.Cursor{Offset: 0, IsPrev: true, Results: true},
		paginator.Cursor{Offset: 10, Results: false},
	)

	assert.Contains(t, header, `rel="previous"; results="true"; cursor="0:0:1"`)
	assert.Contains(t, header, `rel="next"; results="false"; cursor="0:10:0"`)
	assert.Contains(t, header, "query=foo")
	assert.Contains(t, header, "cursor=0%3A10%3A0")
}
