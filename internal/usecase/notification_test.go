package usecase_test

import (
	"context"
	"testing"

	"event-insights-service/internal/domain"
	"event-insights-service/internal/mocks"
	"event-insights-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationUseCase() (domain.NotificationUseCase, *mocks.OrganizationRepository, *mocks.NotificationRepository) {
	orgRepo := &mocks.OrganizationRepository{}
	notifRepo := &mocks.NotificationRepository{}
	return usecase.NewNotificationUseCase(orgRepo, notifRepo), orgRepo, notifRepo
}

func TestNotification_ActivityNotFound(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(99)).Return(nil, nil)

	result, err := uc.BuildNotification(ctx, "acme", 99, nil)

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	assert.Nil(t, result)
}

func TestNotification_UnsupportedActivity(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(5)).Return(&domain.Activity{ID: 5, Type: "note"}, nil)

	result, err := uc.BuildNotification(ctx, "acme", 5, nil)

	assert.ErrorIs(t, err, domain.ErrUnsupportedActivity)
	assert.Nil(t, result)
}

func TestNotification_ReleaseMissing(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()
	activity := &domain.Activity{ID: 5, Type: domain.ActivityTypeDeploy, Data: map[string]any{"version": "1.0"}}

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(5)).Return(activity, nil)
	notifRepo.On("GetRelease", ctx, activity, int64(1)).Return(nil, nil)

	result, err := uc.BuildNotification(ctx, "acme", 5, nil)

	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
	assert.Nil(t, result)
	notifRepo.AssertNotCalled(t, "GetDeploy", mock.Anything, mock.Anything)
}

func TestNotification_Deploy(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()

	activity := &domain.Activity{ID: 5, Type: domain.ActivityTypeDeploy, Data: map[string]any{"version": "1.0", "deploy_id": 3}}
	release := &domain.Release{ID: 20, OrganizationID: 1, Version: "1.0"}
	deploy := &domain.Deploy{ID: 3, ReleaseID: 20, EnvironmentID: 4}
	projects := []*domain.Project{{ID: 10}, {ID: 11}}
	teamProjects := []*domain.Project{{ID: 11}}
	commits := []*domain.Commit{
		{ID: 1, RepositoryID: 2, Author: &domain.CommitAuthor{Email: "Jane@Example.com"}},
		{ID: 2, RepositoryID: 2, Author: &domain.CommitAuthor{Email: "jane@example.com"}},
		{ID: 3, RepositoryID: 2},
	}
	users := map[string]*domain.User{"jane@example.com": {ID: 7}}
	repos := []domain.RepositoryCommits{{Name: "acme/web"}}

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(5)).Return(activity, nil)
	notifRepo.On("GetRelease", ctx, activity, int64(1)).Return(release, nil)
	notifRepo.On("GetDeploy", ctx, activity).Return(deploy, nil)
	notifRepo.On("GetEnvironmentForDeploy", ctx, deploy).Return("production", nil)
	notifRepo.On("GetReleaseProjects", ctx, int64(20)).Return(projects, nil)
	notifRepo.On("GetProjects", ctx, projects, []int64{8}).Return(teamProjects, nil)
	notifRepo.On("GetCommitsForRelease", ctx, release).Return(commits, nil)
	notifRepo.On("GetUsersByEmails", ctx, []string{"Jane@Example.com"}, int64(1)).Return(users, nil)
	notifRepo.On("GetRepos", ctx, commits, users, int64(1)).Return(repos, nil)
	notifRepo.On("GetFileCount", ctx, commits, int64(1)).Return(4, nil)
	notifRepo.On("GetGroupCountsByProject", ctx, release, teamProjects).Return(map[int64]int{11: 2}, nil)
	notifRepo.On("GetUsersByTeams", ctx, int64(1)).Return(map[int64][]int64{7: {8}}, nil)

	result, err := uc.BuildNotification(ctx, "acme", 5, []int64{8})
	require.NoError(t, err)

	assert.Equal(t, domain.ActivityTypeDeploy, result.ActivityType)
	assert.Nil(t, result.ProcessingIssues)
	require.NotNil(t, result.Release)
	assert.Equal(t, release, result.Release.Release)
	assert.Equal(t, deploy, result.Release.Deploy)
	assert.Equal(t, "production", result.Release.Environment)
	assert.Equal(t, teamProjects, result.Release.Projects)
	assert.Equal(t, repos, result.Release.Repos)
	assert.Equal(t, 4, result.Release.FileCount)
	assert.Equal(t, map[int64]int{11: 2}, result.Release.GroupCounts)
	assert.Equal(t, map[int64][]int64{7: {8}}, result.Release.UsersByTeams)
	notifRepo.AssertExpectations(t)
}

func TestNotification_ReleaseWithoutTeams(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()

	activity := &domain.Activity{ID: 6, Type: domain.ActivityTypeRelease, Data: map[string]any{"version": "2.0"}}
	release := &domain.Release{ID: 21, OrganizationID: 1, Version: "2.0"}
	projects := []*domain.Project{{ID: 10}}

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(6)).Return(activity, nil)
	notifRepo.On("GetRelease", ctx, activity, int64(1)).Return(release, nil)
	notifRepo.On("GetDeploy", ctx, activity).Return(nil, nil)
	notifRepo.On("GetEnvironmentForDeploy", ctx, (*domain.Deploy)(nil)).Return(domain.DefaultEnvironmentName, nil)
	notifRepo.On("GetReleaseProjects", ctx, int64(21)).Return(projects, nil)
	notifRepo.On("GetCommitsForRelease", ctx, release).Return([]*domain.Commit{}, nil)
	notifRepo.On("GetUsersByEmails", ctx, []string(nil), int64(1)).Return(map[string]*domain.User{}, nil)
	notifRepo.On("GetRepos", ctx, []*domain.Commit{}, map[string]*domain.User{}, int64(1)).Return([]domain.RepositoryCommits{}, nil)
	notifRepo.On("GetFileCount", ctx, []*domain.Commit{}, int64(1)).Return(0, nil)
	notifRepo.On("GetGroupCountsByProject", ctx, release, projects).Return(map[int64]int{}, nil)
	notifRepo.On("GetUsersByTeams", ctx, int64(1)).Return(map[int64][]int64{}, nil)

	result, err := uc.BuildNotification(ctx, "acme", 6, nil)
	require.NoError(t, err)

	assert.Nil(t, result.Release.Deploy)
	assert.Equal(t, domain.DefaultEnvironmentName, result.Release.Environment)
	assert.Equal(t, projects, result.Release.Projects)
	notifRepo.AssertNotCalled(t, "GetProjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotification_ProcessingIssues(t *testing.T) {
	ctx := context.Background()
	uc, orgRepo, notifRepo := newNotificationUseCase()

	activity := &domain.Activity{ID: 7, Type: domain.ActivityTypeNewProcessingIssues, Data: map[string]any{
		"reprocessing_active": true,
		"issues": []any{
			map[string]any{"type": "native_missing_dsym", "data": map[string]any{"image_path": "/usr/lib/libfoo.dylib", "image_arch": "arm64"}},
			"garbage",
		},
	}}

	orgRepo.On("GetBySlug", ctx, "acme").Return(acme, nil)
	notifRepo.On("GetActivity", ctx, int64(1), int64(7)).Return(activity, nil)

	result, err := uc.BuildNotification(ctx, "acme", 7, nil)
	require.NoError(t, err)

	require.NotNil(t, result.ProcessingIssues)
	assert.Nil(t, result.Release)
	assert.True(t, result.ProcessingIssues.ReprocessingActive)
	require.Len(t, result.ProcessingIssues.Issues, 1)
	assert.Equal(t, "A required debug information file was missing.", result.ProcessingIssues.Issues[0].Message)
	assert.Equal(t, "libfoo.dylib (arm64)", *result.ProcessingIssues.Issues[0].ExtraInfo)
}
