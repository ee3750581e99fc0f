package domain

import (
	"context"
	"time"
)

// Типы активностей, для которых строится контекст уведомления.
const (
	ActivityTypeDeploy              = "deploy"
	ActivityTypeRelease             = "release"
	ActivityTypeNewProcessingIssues = "new_processing_issues"

	DefaultEnvironmentName = "Default Environment"
)

// GroupLinkTypeCommit задаёт linked_type связи issue с коммитом.
const GroupLinkTypeCommit int16 = 1

// Release представляет релиз организации.
type Release struct {
	ID             int64
	OrganizationID int64
	Version        string
	DateAdded      time.Time
}

// CommitAuthor описывает автора коммита из VCS, он не обязательно пользователь.
type CommitAuthor struct {
	ID    int64
	Name  string
	Email string
}

// Commit представляет коммит репозитория.
type Commit struct {
	ID             int64
	OrganizationID int64
	RepositoryID   int64
	Key            string
	Message        string
	DateAdded      time.Time
	Author         *CommitAuthor
}

// Deploy представляет деплой релиза в окружение.
type Deploy struct {
	ID            int64
	ReleaseID     int64
	EnvironmentID int64
	Name          string
	URL           string
	DateFinished  time.Time
}

// Activity описывает запись ленты активности с произвольным payload.
type Activity struct {
	ID        int64
	ProjectID int64
	Type      string
	Data      map[string]any
	CreatedAt time.Time
}

// CommitWithAuthor связывает коммит и пользователя, найденного по email автора.
type CommitWithAuthor struct {
	Commit *Commit `json:"commit"`
	User   *User   `json:"user"`
}

// RepositoryCommits группирует коммиты репозитория в порядке входа.
type RepositoryCommits struct {
	Name    string             `json:"name"`
	Commits []CommitWithAuthor `json:"commits"`
}

// IssueSummary содержит краткое описание проблемы обработки события.
type IssueSummary struct {
	Message   string  `json:"message"`
	ExtraInfo *string `json:"extra_info"`
}

// ReleaseNotification содержит данные для уведомления о релизе или деплое.
type ReleaseNotification struct {
	Release      *Release
	Deploy       *Deploy
	Environment  string
	Projects     []*Project
	Commits      []*Commit
	Repos        []RepositoryCommits
	FileCount    int
	GroupCounts  map[int64]int
	UsersByTeams map[int64][]int64
}

// ProcessingIssuesNotification содержит данные для уведомления о проблемах обработки.
type ProcessingIssuesNotification struct {
	Issues             []IssueSummary
	ReprocessingActive bool
}

// NotificationContext содержит результат сборки, заполнено ровно одно поле.
type NotificationContext struct {
	ActivityType     string
	Release          *ReleaseNotification
	ProcessingIssues *ProcessingIssuesNotification
}

// NotificationRepository определяет запросы для сборки уведомлений.
// Ни один метод не возвращает ошибку "не найдено": отсутствие возвращается как nil или пустое значение.
type NotificationRepository interface {
	GetActivity(ctx context.Context, organizationID, activityID int64) (*Activity, error)
	GetProjects(ctx context.Context, projects []*Project, teamIDs []int64) ([]*Project, error)
	GetUsersByTeams(ctx context.Context, organizationID int64) (map[int64][]int64, error)
	GetDeploy(ctx context.Context, activity *Activity) (*Deploy, error)
	GetRelease(ctx context.Context, activity *Activity, organizationID int64) (*Release, error)
	GetReleaseProjects(ctx context.Context, releaseID int64) ([]*Project, error)
	GetGroupCountsByProject(ctx context.Context, release *Release, projects []*Project) (map[int64]int, error)
	GetUsersByEmails(ctx context.Context, emails []string, organizationID int64) (map[string]*User, error)
	GetRepos(ctx context.Context, commits []*Commit, usersByEmail map[string]*User, organizationID int64) ([]RepositoryCommits, error)
	GetCommitsForRelease(ctx context.Context, release *Release) ([]*Commit, error)
	GetEnvironmentForDeploy(ctx context.Context, deploy *Deploy) (string, error)
	GetFileCount(ctx context.Context, commits []*Commit, organizationID int64) (int, error)
}
