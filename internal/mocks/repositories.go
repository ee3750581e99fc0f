// Package mocks содержит testify-моки доменных интерфейсов.
package mocks

import (
	"context"

	"event-insights-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrganizationRepository struct {
	mock.Mock
}

func (m *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	args := m.Called(ctx, slug)
	org, _ := args.Get(0).(*domain.Organization)
	return org, args.Error(1)
}

func (m *OrganizationRepository) ListProjects(ctx context.Context, organizationID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, organizationID)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

type FeatureRepository struct {
	mock.Mock
}

func (m *FeatureRepository) GetOverride(ctx context.Context, organizationID, actorID int64, feature string) (bool, bool, error) {
	args := m.Called(ctx, organizationID, actorID, feature)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) GetActivity(ctx context.Context, organizationID, activityID int64) (*domain.Activity, error) {
	args := m.Called(ctx, organizationID, activityID)
	activity, _ := args.Get(0).(*domain.Activity)
	return activity, args.Error(1)
}

func (m *NotificationRepository) GetProjects(ctx context.Context, projects []*domain.Project, teamIDs []int64) ([]*domain.Project, error) {
	args := m.Called(ctx, projects, teamIDs)
	result, _ := args.Get(0).([]*domain.Project)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetUsersByTeams(ctx context.Context, organizationID int64) (map[int64][]int64, error) {
	args := m.Called(ctx, organizationID)
	result, _ := args.Get(0).(map[int64][]int64)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetDeploy(ctx context.Context, activity *domain.Activity) (*domain.Deploy, error) {
	args := m.Called(ctx, activity)
	deploy, _ := args.Get(0).(*domain.Deploy)
	return deploy, args.Error(1)
}

func (m *NotificationRepository) GetRelease(ctx context.Context, activity *domain.Activity, organizationID int64) (*domain.Release, error) {
	args := m.Called(ctx, activity, organizationID)
	release, _ := args.Get(0).(*domain.Release)
	return release, args.Error(1)
}

func (m *NotificationRepository) GetReleaseProjects(ctx context.Context, releaseID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, releaseID)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

func (m *NotificationRepository) GetGroupCountsByProject(ctx context.Context, release *domain.Release, projects []*domain.Project) (map[int64]int, error) {
	args := m.Called(ctx, release, projects)
	result, _ := args.Get(0).(map[int64]int)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetUsersByEmails(ctx context.Context, emails []string, organizationID int64) (map[string]*domain.User, error) {
	args := m.Called(ctx, emails, organizationID)
	result, _ := args.Get(0).(map[string]*domain.User)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetRepos(ctx context.Context, commits []*domain.Commit, usersByEmail map[string]*domain.User, organizationID int64) ([]domain.RepositoryCommits, error) {
	args := m.Called(ctx, commits, usersByEmail, organizationID)
	result, _ := args.Get(0).([]domain.RepositoryCommits)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetCommitsForRelease(ctx context.Context, release *domain.Release) ([]*domain.Commit, error) {
	args := m.Called(ctx, release)
	result, _ := args.Get(0).([]*domain.Commit)
	return result, args.Error(1)
}

func (m *NotificationRepository) GetEnvironmentForDeploy(ctx context.Context, deploy *domain.Deploy) (string, error) {
	args := m.Called(ctx, deploy)
	return args.String(0), args.Error(1)
}

func (m *NotificationRepository) GetFileCount(ctx context.Context, commits []*domain.Commit, organizationID int64) (int, error) {
	args := m.Called(ctx, commits, organizationID)
	return args.Int(0), args.Error(1)
}
