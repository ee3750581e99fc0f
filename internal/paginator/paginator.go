// Package paginator реализует курсорную пагинацию по смещению для
// источников данных, которые не поддерживают диапазонные запросы.
package paginator

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"event-insights-service/internal/domain"
)

// MaxOffset ограничивает смещение курсора.
const MaxOffset = 100_000

// Cursor имеет вид "<value>:<offset>:<is_prev>".
type Cursor struct {
	Value   int64
	Offset  int
	IsPrev  bool
	Results bool
}

func (c Cursor) String() string {
	prev := 0
	if c.IsPrev {
		prev = 1
	}
	return fmt.Sprintf("%d:%d:%d", c.Value, c.Offset, prev)
}

// ParseCursor разбирает курсор из query string. Пустая строка означает отсутствие курсора.
func ParseCursor(raw string) (*Cursor, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return nil, domain.ErrInvalidCursor
	}

	value, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidCursor
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 || offset > MaxOffset {
		return nil, domain.ErrInvalidCursor
	}
	isPrev, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, domain.ErrInvalidCursor
	}

	return &Cursor{Value: value, Offset: offset, IsPrev: isPrev != 0}, nil
}

// PerPage разбирает per_page. Значения больше maxPerPage обрезаются.
func PerPage(raw *int, defaultPerPage, maxPerPage int) (int, error) {
	if maxPerPage < defaultPerPage {
		maxPerPage = defaultPerPage
	}
	if raw == nil {
		return defaultPerPage, nil
	}
	if *raw < 1 {
		return 0, domain.ErrInvalidPerPage
	}
	if *raw > maxPerPage {
		return maxPerPage, nil
	}
	return *raw, nil
}

// Result содержит страницу данных и курсоры соседних страниц.
type Result[T any] struct {
	Data []T
	Prev Cursor
	Next Cursor
}

// GenericOffsetPaginator запрашивает у DataFn на одну строку больше лимита,
// чтобы узнать, есть ли следующая страница. Значение курсора всегда 0,
// поэтому offset совпадает с абсолютным смещением в выборке.
type GenericOffsetPaginator[T any] struct {
	DataFn func(ctx context.Context, offset, limit int) ([]T, error)
}

// GetResult возвращает страницу размером не более limit.
func (p *GenericOffsetPaginator[T]) GetResult(ctx context.Context, limit int, cursor *Cursor) (*Result[T], error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidPerPage
	}

	offset := 0
	if cursor != nil {
		offset = cursor.Offset
	}
	if offset < 0 || offset > MaxOffset {
		return nil, domain.ErrInvalidCursor
	}

	data, err := p.DataFn(ctx, offset, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(data) > limit
	if hasMore {
		data = data[:limit]
	}
	if data == nil {
		data = []T{}
	}

	prevOffset := offset - limit
	if prevOffset < 0 {
		prevOffset = 0
	}

	return &Result[T]{
		Data: data,
		Prev: Cursor{Value: 0, Offset: prevOffset, IsPrev: true, Results: offset > 0},
		Next: Cursor{Value: 0, Offset: offset + limit, IsPrev: false, Results: hasMore},
	}, nil
}

// LinkHeader строит заголовок Link для запроса на base.
func LinkHeader(base *url.URL, prev, next Cursor) string {
	return strings.Join([]string{
		buildLink(base, "previous", prev),
		buildLink(base, "next", next),
	}, ", ")
}

func buildLink(base *url.URL, rel string, cursor Cursor) string {
	u := *base
	q := u.Query()
	q.Set("cursor", cursor.String())
	u.RawQuery = q.Encode()

	return fmt.Sprintf(`<%s>; rel="%s"; results="%t"; cursor="%s"`, u.String(), rel, cursor.Results, cursor.String())
}
