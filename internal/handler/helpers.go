package handler

import (
	"errors"
	"net/http"
	"strconv"

	"event-insights-service/api"
	"event-insights-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIFacets(facets []domain.FacetPerformance) []api.FacetPerformance {
	result := make([]api.FacetPerformance, len(facets))
	for i, f := range facets {
		result[i] = api.FacetPerformance{
			Key: f.Key,
			Value: api.FacetValue{
				Name:       f.Value.Name,
				Value:      f.Value.Value,
				Count:      f.Value.Count,
				Frequency:  f.Value.Frequency,
				Aggregate:  f.Value.Aggregate,
				Comparison: f.Value.Comparison,
				Sumdelta:   f.Value.SumDelta,
			},
		}
	}
	return result
}

func toAPIMobileAppEvents(events *domain.MobileAppEvents) *api.MobileAppEvents {
	if events == nil {
		return nil
	}
	return &api.MobileAppEvents{
		BrowserName:  events.BrowserName,
		ClientOsName: events.ClientOsName,
	}
}

func toAPINotification(n *domain.NotificationContext) api.NotificationResponse {
	resp := api.NotificationResponse{ActivityType: n.ActivityType}
	if n.Release != nil {
		release := toAPIReleaseNotification(n.Release)
		resp.Release = &release
	}
	if n.ProcessingIssues != nil {
		issues := make([]api.IssueSummary, len(n.ProcessingIssues.Issues))
		for i, issue := range n.ProcessingIssues.Issues {
			issues[i] = api.IssueSummary{Message: issue.Message, ExtraInfo: issue.ExtraInfo}
		}
		reprocessing := n.ProcessingIssues.ReprocessingActive
		resp.Issues = &issues
		resp.ReprocessingActive = &reprocessing
	}
	return resp
}

func toAPIReleaseNotification(n *domain.ReleaseNotification) api.ReleaseNotification {
	projects := make([]api.Project, len(n.Projects))
	for i, p := range n.Projects {
		projects[i] = api.Project{Id: p.ID, Slug: p.Slug, Name: p.Name}
	}

	commits := make([]api.Commit, len(n.Commits))
	for i, c := range n.Commits {
		commits[i] = toAPICommit(c)
	}

	repos := make([]api.RepositoryCommits, len(n.Repos))
	for i, r := range n.Repos {
		repoCommits := make([]api.CommitWithAuthor, len(r.Commits))
		for j, cwa := range r.Commits {
			repoCommits[j] = api.CommitWithAuthor{Commit: toAPICommit(cwa.Commit), User: toAPIUser(cwa.User)}
		}
		repos[i] = api.RepositoryCommits{Name: r.Name, Commits: repoCommits}
	}

	groupCounts := make(map[string]int, len(n.GroupCounts))
	for projectID, count := range n.GroupCounts {
		groupCounts[strconv.FormatInt(projectID, 10)] = count
	}

	usersByTeams := make(map[string][]int64, len(n.UsersByTeams))
	for userID, teamIDs := range n.UsersByTeams {
		if teamIDs == nil {
			teamIDs = []int64{}
		}
		usersByTeams[strconv.FormatInt(userID, 10)] = teamIDs
	}

	return api.ReleaseNotification{
		Release: api.Release{
			Id:        n.Release.ID,
			Version:   n.Release.Version,
			DateAdded: n.Release.DateAdded,
		},
		Deploy:               toAPIDeploy(n.Deploy),
		Environment:          n.Environment,
		Projects:             projects,
		Commits:              commits,
		Repos:                repos,
		FileCount:            n.FileCount,
		GroupCountsByProject: groupCounts,
		UsersByTeams:         usersByTeams,
	}
}

func toAPICommit(c *domain.Commit) api.Commit {
	commit := api.Commit{
		Id:           c.ID,
		RepositoryId: c.RepositoryID,
		Key:          c.Key,
		Message:      c.Message,
		DateAdded:    c.DateAdded,
	}
	if c.Author != nil {
		commit.Author = &api.CommitAuthor{Name: c.Author.Name, Email: c.Author.Email}
	}
	return commit
}

func toAPIUser(u *domain.User) *api.User {
	if u == nil {
		return nil
	}
	return &api.User{Id: u.ID, Username: u.Username, Name: u.Name, Email: u.Email}
}

func toAPIDeploy(d *domain.Deploy) *api.Deploy {
	if d == nil {
		return nil
	}
	deploy := &api.Deploy{
		Id:            d.ID,
		EnvironmentId: d.EnvironmentID,
		DateFinished:  d.DateFinished,
	}
	if d.Name != "" {
		deploy.Name = &d.Name
	}
	if d.URL != "" {
		deploy.Url = &d.URL
	}
	return deploy
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Not Found errors (404)
	case errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrReleaseNotFound),
		errors.Is(err, domain.ErrFeatureDisabled):
		return http.StatusNotFound

	// Bad Request errors (400) - разбор параметров и невалидные запросы к движку
	case errors.Is(err, domain.ErrMultipleProjects),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrInvalidCursor),
		errors.Is(err, domain.ErrInvalidPerPage),
		errors.Is(err, domain.ErrUnsupportedActivity),
		errors.Is(err, domain.ErrInvalidSearchQuery),
		errors.Is(err, domain.ErrQueryOutsideRetention),
		errors.Is(err, domain.ErrQueryIllegalTypeOfArgument):
		return http.StatusBadRequest

	// Too Many Requests (429)
	case errors.Is(err, domain.ErrQueryTimeout):
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}
