package scope

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"event-insights-service/internal/domain"
)

const (
	DefaultStatsPeriod = 14 * 24 * time.Hour
	allProjects        = -1
)

var statsPeriodRe = regexp.MustCompile(`^(\d+)([smhdw]?)$`)

// Resolver реализует domain.ScopeResolver поверх репозитория организаций.
type Resolver struct {
	orgRepo domain.OrganizationRepository
	now     func() time.Time
}

// NewResolver создает новый экземпляр Resolver.
func NewResolver(orgRepo domain.OrganizationRepository) *Resolver {
	return &Resolver{
		orgRepo: orgRepo,
		now:     time.Now,
	}
}

// WithClock подменяет источник времени.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// GetSnubaParams разрешает проекты, окружения и временной диапазон запроса.
func (r *Resolver) GetSnubaParams(ctx context.Context, org *domain.Organization, req domain.ScopeRequest) (*domain.SnubaParams, error) {
	start, end, err := r.timeRange(req)
	if err != nil {
		return nil, err
	}

	projects, err := r.orgRepo.ListProjects(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization projects: %w", err)
	}

	projectIDs := filterProjects(projects, req.ProjectIDs)
	if len(projectIDs) == 0 {
		return nil, domain.ErrNoProjects
	}

	return &domain.SnubaParams{
		OrganizationID: org.ID,
		ProjectIDs:     projectIDs,
		Environments:   req.Environments,
		Start:          start,
		End:            end,
	}, nil
}

func filterProjects(projects []*domain.Project, requested []int64) []int64 {
	wanted := make(map[int64]bool, len(requested))
	all := len(requested) == 0
	for _, id := range requested {
		if id == allProjects {
			all = true
		}
		wanted[id] = true
	}

	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		if all || wanted[p.ID] {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (r *Resolver) timeRange(req domain.ScopeRequest) (time.Time, time.Time, error) {
	if req.Start != "" || req.End != "" {
		if req.Start == "" || req.End == "" {
			return time.Time{}, time.Time{}, domain.ErrInvalidTimeRange
		}
		start, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidTimeRange
		}
		end, err := time.Parse(time.RFC3339, req.End)
		if err != nil || !start.Before(end) {
			return time.Time{}, time.Time{}, domain.ErrInvalidTimeRange
		}
		return start.UTC(), end.UTC(), nil
	}

	period := DefaultStatsPeriod
	if req.StatsPeriod != "" {
		var err error
		if period, err = ParseStatsPeriod(req.StatsPeriod); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	end := r.now().UTC()
	return end.Add(-period), end, nil
}

// ParseStatsPeriod разбирает период вида "24h", "14d", "2w". Без единицы считается в секундах.
func ParseStatsPeriod(raw string) (time.Duration, error) {
	m := statsPeriodRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, domain.ErrInvalidTimeRange
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrInvalidTimeRange
	}

	unit := time.Second
	switch m[2] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, domain.ErrInvalidTimeRange
	}
	return time.Duration(n) * unit, nil
}
