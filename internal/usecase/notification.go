package usecase

import (
	"context"
	"strings"

	"event-insights-service/internal/domain"
)

// NotificationUseCase собирает контекст уведомления по записи активности.
type NotificationUseCase struct {
	orgRepo   domain.OrganizationRepository
	notifRepo domain.NotificationRepository
}

// NewNotificationUseCase создает новый экземпляр NotificationUseCase.
func NewNotificationUseCase(orgRepo domain.OrganizationRepository, notifRepo domain.NotificationRepository) domain.NotificationUseCase {
	return &NotificationUseCase{
		orgRepo:   orgRepo,
		notifRepo: notifRepo,
	}
}

func (uc *NotificationUseCase) BuildNotification(ctx context.Context, organization string, activityID int64, teamIDs []int64) (*domain.NotificationContext, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, organization)
	if err != nil {
		return nil, err
	}

	activity, err := uc.notifRepo.GetActivity(ctx, org.ID, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}

	switch activity.Type {
	case domain.ActivityTypeDeploy, domain.ActivityTypeRelease:
		release, err := uc.buildRelease(ctx, org, activity, teamIDs)
		if err != nil {
			return nil, err
		}
		return &domain.NotificationContext{ActivityType: activity.Type, Release: release}, nil

	case domain.ActivityTypeNewProcessingIssues:
		reprocessing, _ := activity.Data["reprocessing_active"].(bool)
		return &domain.NotificationContext{
			ActivityType: activity.Type,
			ProcessingIssues: &domain.ProcessingIssuesNotification{
				Issues:             SummarizeIssues(activityIssues(activity)),
				ReprocessingActive: reprocessing,
			},
		}, nil

	default:
		return nil, domain.ErrUnsupportedActivity
	}
}

func (uc *NotificationUseCase) buildRelease(ctx context.Context, org *domain.Organization, activity *domain.Activity, teamIDs []int64) (*domain.ReleaseNotification, error) {
	release, err := uc.notifRepo.GetRelease(ctx, activity, org.ID)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, domain.ErrReleaseNotFound
	}

	deploy, err := uc.notifRepo.GetDeploy(ctx, activity)
	if err != nil {
		return nil, err
	}

	environment, err := uc.notifRepo.GetEnvironmentForDeploy(ctx, deploy)
	if err != nil {
		return nil, err
	}

	projects, err := uc.notifRepo.GetReleaseProjects(ctx, release.ID)
	if err != nil {
		return nil, err
	}
	if len(teamIDs) > 0 {
		projects, err = uc.notifRepo.GetProjects(ctx, projects, teamIDs)
		if err != nil {
			return nil, err
		}
	}

	commits, err := uc.notifRepo.GetCommitsForRelease(ctx, release)
	if err != nil {
		return nil, err
	}

	usersByEmail, err := uc.notifRepo.GetUsersByEmails(ctx, authorEmails(commits), org.ID)
	if err != nil {
		return nil, err
	}

	repos, err := uc.notifRepo.GetRepos(ctx, commits, usersByEmail, org.ID)
	if err != nil {
		return nil, err
	}

	fileCount, err := uc.notifRepo.GetFileCount(ctx, commits, org.ID)
	if err != nil {
		return nil, err
	}

	groupCounts, err := uc.notifRepo.GetGroupCountsByProject(ctx, release, projects)
	if err != nil {
		return nil, err
	}

	usersByTeams, err := uc.notifRepo.GetUsersByTeams(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	return &domain.ReleaseNotification{
		Release:      release,
		Deploy:       deploy,
		Environment:  environment,
		Projects:     projects,
		Commits:      commits,
		Repos:        repos,
		FileCount:    fileCount,
		GroupCounts:  groupCounts,
		UsersByTeams: usersByTeams,
	}, nil
}

// authorEmails возвращает уникальные email авторов без учёта регистра.
func authorEmails(commits []*domain.Commit) []string {
	seen := make(map[string]struct{})
	var emails []string
	for _, c := range commits {
		if c.Author == nil || c.Author.Email == "" {
			continue
		}
		key := strings.ToLower(c.Author.Email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		emails = append(emails, c.Author.Email)
	}
	return emails
}

func activityIssues(activity *domain.Activity) []map[string]any {
	raw, _ := activity.Data["issues"].([]any)
	issues := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if issue, ok := item.(map[string]any); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}
