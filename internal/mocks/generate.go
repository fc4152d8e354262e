// Package mocks provides mock implementations of the repository ports for service and handler tests.
//
// Mocks are generated with go.uber.org/mock (gomock). To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	repo := mocks.NewMockAnalyticsRepository(ctrl)
//	repo.EXPECT().AttemptCount(gomock.Any(), gomock.Any()).Return(int64(4), nil)
package mocks

// Generate mock for AnalyticsRepository interface from internal/core package.
// This creates MockAnalyticsRepository covering every attempt, engagement, environment,
// reliability and admin read used by the dashboards.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=analytics_repository_mock.go github.com/miva/mind-dashboard/internal/core AnalyticsRepository
