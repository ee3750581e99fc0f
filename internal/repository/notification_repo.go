package repository

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"event-insights-service/internal/database"
	"event-insights-service/internal/domain"
)

// NotificationRepository реализует запросы для сборки уведомлений в PostgreSQL.
// Отсутствующие записи возвращаются как nil или пустые значения, не как ошибки.
type NotificationRepository struct {
	queries *database.Queries
}

// NewNotificationRepository создает новый экземпляр NotificationRepository.
func NewNotificationRepository(queries *database.Queries) domain.NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

// GetActivity возвращает активность, если она принадлежит проекту организации.
func (r *NotificationRepository) GetActivity(ctx context.Context, organizationID, activityID int64) (*domain.Activity, error) {
	dbActivity, err := r.queries.GetActivityForOrganization(ctx, database.GetActivityForOrganizationParams{
		ActivityID:     activityID,
		OrganizationID: organizationID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	data := map[string]any{}
	if len(dbActivity.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(dbActivity.Data))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode activity data: %w", err)
		}
	}

	return &domain.Activity{
		ID:        dbActivity.ID,
		ProjectID: dbActivity.ProjectID,
		Type:      dbActivity.Type,
		Data:      data,
		CreatedAt: dbActivity.CreatedAt,
	}, nil
}

// GetProjects оставляет только проекты, принадлежащие хотя бы одной из команд.
func (r *NotificationRepository) GetProjects(ctx context.Context, projects []*domain.Project, teamIDs []int64) ([]*domain.Project, error) {
	if len(projects) == 0 || len(teamIDs) == 0 {
		return []*domain.Project{}, nil
	}

	ids, err := r.queries.ListProjectIDsByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get team projects: %w", err)
	}

	teamProjects := make(map[int64]bool, len(ids))
	for _, id := range ids {
		teamProjects[id] = true
	}

	seen := make(map[int64]bool, len(projects))
	result := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if teamProjects[p.ID] && !seen[p.ID] {
			seen[p.ID] = true
			result = append(result, p)
		}
	}

	return result, nil
}

// GetUsersByTeams возвращает команды каждого участника организации.
// Участник без команд присутствует с пустым списком.
func (r *NotificationRepository) GetUsersByTeams(ctx context.Context, organizationID int64) (map[int64][]int64, error) {
	rows, err := r.queries.ListUserTeamsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by teams: %w", err)
	}

	userTeams := make(map[int64][]int64)
	for _, row := range rows {
		teams, ok := userTeams[row.UserID]
		if !ok {
			teams = []int64{}
		}
		if row.TeamID.Valid {
			teams = append(teams, row.TeamID.Int64)
		}
		userTeams[row.UserID] = teams
	}

	return userTeams, nil
}

// GetDeploy возвращает деплой из data["deploy_id"] активности.
func (r *NotificationRepository) GetDeploy(ctx context.Context, activity *domain.Activity) (*domain.Deploy, error) {
	deployID, ok := dataInt64(activity, "deploy_id")
	if !ok {
		return nil, nil
	}

	dbDeploy, err := r.queries.GetDeployByID(ctx, deployID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deploy: %w", err)
	}

	return &domain.Deploy{
		ID:            dbDeploy.ID,
		ReleaseID:     dbDeploy.ReleaseID,
		EnvironmentID: dbDeploy.EnvironmentID,
		Name:          dbDeploy.Name.String,
		URL:           dbDeploy.URL.String,
		DateFinished:  dbDeploy.DateFinished,
	}, nil
}

// GetRelease возвращает релиз организации по data["version"] активности.
func (r *NotificationRepository) GetRelease(ctx context.Context, activity *domain.Activity, organizationID int64) (*domain.Release, error) {
	version, ok := dataString(activity, "version")
	if !ok {
		return nil, nil
	}

	dbRelease, err := r.queries.GetReleaseByVersion(ctx, database.GetReleaseByVersionParams{
		OrganizationID: organizationID,
		Version:        version,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get release: %w", err)
	}

	return &domain.Release{
		ID:             dbRelease.ID,
		OrganizationID: dbRelease.OrganizationID,
		Version:        dbRelease.Version,
		DateAdded:      dbRelease.DateAdded,
	}, nil
}

// GetReleaseProjects возвращает проекты релиза.
func (r *NotificationRepository) GetReleaseProjects(ctx context.Context, releaseID int64) ([]*domain.Project, error) {
	dbProjects, err := r.queries.ListReleaseProjects(ctx, releaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get release projects: %w", err)
	}
	return toDomainProjects(dbProjects), nil
}

// GetGroupCountsByProject считает issues каждого проекта, связанные с коммитами релиза.
func (r *NotificationRepository) GetGroupCountsByProject(ctx context.Context, release *domain.Release, projects []*domain.Project) (map[int64]int, error) {
	counts := make(map[int64]int)
	if release == nil || len(projects) == 0 {
		return counts, nil
	}

	rows, err := r.queries.CountGroupsByProjectForRelease(ctx, database.CountGroupsByProjectForReleaseParams{
		ReleaseID:  release.ID,
		ProjectIDs: projectIDs(projects),
		LinkedType: domain.GroupLinkTypeCommit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count groups by project: %w", err)
	}

	for _, row := range rows {
		counts[row.ProjectID] = int(row.NumGroups)
	}
	return counts, nil
}

// GetUsersByEmails находит пользователей организации по подтверждённым email
// без учёта регистра. Ключ результата: email в том виде, как он сохранён.
func (r *NotificationRepository) GetUsersByEmails(ctx context.Context, emails []string, organizationID int64) (map[string]*domain.User, error) {
	users := make(map[string]*domain.User)
	if len(emails) == 0 {
		return users, nil
	}

	lowered := make([]string, 0, len(emails))
	for _, e := range emails {
		lowered = append(lowered, strings.ToLower(e))
	}

	rows, err := r.queries.ListVerifiedUsersByEmails(ctx, database.ListVerifiedUsersByEmailsParams{
		OrganizationID: organizationID,
		Emails:         lowered,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get users by emails: %w", err)
	}

	for _, row := range rows {
		users[row.MatchedEmail] = &domain.User{
			ID:       row.UserID,
			Username: row.Username,
			Name:     row.Name,
			Email:    row.Email,
		}
	}
	return users, nil
}

// GetRepos группирует коммиты по репозиториям организации и подставляет
// пользователя, найденного по email автора.
func (r *NotificationRepository) GetRepos(ctx context.Context, commits []*domain.Commit, usersByEmail map[string]*domain.User, organizationID int64) ([]domain.RepositoryCommits, error) {
	if len(commits) == 0 {
		return []domain.RepositoryCommits{}, nil
	}

	repoIDs := make([]int64, 0, len(commits))
	seen := make(map[int64]bool)
	for _, c := range commits {
		if !seen[c.RepositoryID] {
			seen[c.RepositoryID] = true
			repoIDs = append(repoIDs, c.RepositoryID)
		}
	}

	rows, err := r.queries.ListRepositoriesByIDs(ctx, database.ListRepositoriesByIDsParams{
		OrganizationID: organizationID,
		IDs:            repoIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get repositories: %w", err)
	}

	repos := make([]domain.RepositoryCommits, len(rows))
	index := make(map[int64]int, len(rows))
	for i, row := range rows {
		repos[i] = domain.RepositoryCommits{Name: row.Name, Commits: []domain.CommitWithAuthor{}}
		index[row.ID] = i
	}

	for _, c := range commits {
		i, ok := index[c.RepositoryID]
		if !ok {
			continue
		}
		var user *domain.User
		if c.Author != nil {
			user = usersByEmail[c.Author.Email]
		}
		repos[i].Commits = append(repos[i].Commits, domain.CommitWithAuthor{Commit: c, User: user})
	}

	return repos, nil
}

// GetCommitsForRelease возвращает коммиты релиза без повторов, с авторами.
func (r *NotificationRepository) GetCommitsForRelease(ctx context.Context, release *domain.Release) ([]*domain.Commit, error) {
	if release == nil {
		return []*domain.Commit{}, nil
	}

	rows, err := r.queries.ListCommitsForRelease(ctx, release.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get release commits: %w", err)
	}

	commits := make([]*domain.Commit, 0, len(rows))
	for _, row := range rows {
		c := &domain.Commit{
			ID:             row.ID,
			OrganizationID: row.OrganizationID,
			RepositoryID:   row.RepositoryID,
			Key:            row.Key,
			Message:        row.Message,
			DateAdded:      row.DateAdded,
		}
		if row.AuthorID.Valid {
			c.Author = &domain.CommitAuthor{
				ID:    row.AuthorID.Int64,
				Name:  row.AuthorName.String,
				Email: row.AuthorEmail.String,
			}
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// GetEnvironmentForDeploy возвращает имя окружения деплоя или
// domain.DefaultEnvironmentName.
func (r *NotificationRepository) GetEnvironmentForDeploy(ctx context.Context, deploy *domain.Deploy) (string, error) {
	if deploy == nil {
		return domain.DefaultEnvironmentName, nil
	}

	env, err := r.queries.GetEnvironmentByID(ctx, deploy.EnvironmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultEnvironmentName, nil
		}
		return "", fmt.Errorf("failed to get environment: %w", err)
	}
	if env.Name == "" {
		return domain.DefaultEnvironmentName, nil
	}
	return env.Name, nil
}

// GetFileCount считает уникальные имена файлов, изменённых в коммитах.
func (r *NotificationRepository) GetFileCount(ctx context.Context, commits []*domain.Commit, organizationID int64) (int, error) {
	if len(commits) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(commits))
	for _, c := range commits {
		ids = append(ids, c.ID)
	}

	count, err := r.queries.CountDistinctFilenames(ctx, database.CountDistinctFilenamesParams{
		OrganizationID: organizationID,
		CommitIDs:      ids,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count changed files: %w", err)
	}
	return int(count), nil
}

func projectIDs(projects []*domain.Project) []int64 {
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func dataString(activity *domain.Activity, key string) (string, bool) {
	if activity == nil {
		return "", false
	}
	switch v := activity.Data[key].(type) {
	case string:
		return v, v != ""
	case json.Number:
		return v.String(), true
	}
	return "", false
}

func dataInt64(activity *domain.Activity, key string) (int64, bool) {
	if activity == nil {
		return 0, false
	}
	switch v := activity.Data[key].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}
