package mocks

import (
	"context"

	"event-insights-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FacetsPerformanceUseCase struct {
	mock.Mock
}

func (m *FacetsPerformanceUseCase) Prepare(ctx context.Context, req domain.FacetsRequest) (domain.FacetsDataFn, error) {
	args := m.Called(ctx, req)
	fn, _ := args.Get(0).(domain.FacetsDataFn)
	return fn, args.Error(1)
}

type MobileAppEventsUseCase struct {
	mock.Mock
}

func (m *MobileAppEventsUseCase) CheckHasMobileAppEvents(ctx context.Context, organization string, userAgents []string) (*domain.MobileAppEvents, error) {
	args := m.Called(ctx, organization, userAgents)
	result, _ := args.Get(0).(*domain.MobileAppEvents)
	return result, args.Error(1)
}

type NotificationUseCase struct {
	mock.Mock
}

func (m *NotificationUseCase) BuildNotification(ctx context.Context, organization string, activityID int64, teamIDs []int64) (*domain.NotificationContext, error) {
	args := m.Called(ctx, organization, activityID, teamIDs)
	result, _ := args.Get(0).(*domain.NotificationContext)
	return result, args.Error(1)
}
