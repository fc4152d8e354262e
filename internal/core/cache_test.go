package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/miva/mind-dashboard/internal/domain/model"
)

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=core

func newTestCache(repo CacheRepository, ttl time.Duration) *AggregateCache {
	return NewAggregateCache(AggregateCacheOptions{
		Cache:  repo,
		Config: AggregateCacheConfig{TTL: ttl, KeyPrefix: "mind:"},
	})
}

func TestAggregateCache_Key(t *testing.T) {
	c := newTestCache(nil, time.Minute)
	assert.Equal(t, "mind:dashboard:faculty:2024-01-01:2024-01-31", c.Key("dashboard", "faculty", "2024-01-01:2024-01-31"))
}

func TestCached(t *testing.T) {
	t.Parallel()

	want := []model.CaseScore{{CaseID: "c1", AvgScore: 71.5, Attempts: 4}}
	encoded := []byte(`[{"case_id":"c1","avg_score":71.5,"attempts":4}]`)

	tests := []struct {
		name      string
		setup     func(*MockCacheRepository)
		loadErr   error
		wantLoads int
		wantErr   bool
	}{
		{
			name: "hit skips loader",
			setup: func(m *MockCacheRepository) {
				m.EXPECT().Get(gomock.Any(), "k").Return(encoded, nil)
			},
			wantLoads: 0,
		},
		{
			name: "miss loads and stores",
			setup: func(m *MockCacheRepository) {
				m.EXPECT().Get(gomock.Any(), "k").Return(nil, nil)
				m.EXPECT().Set(gomock.Any(), "k", gomock.Any(), 5*time.Minute).Return(nil)
			},
			wantLoads: 1,
		},
		{
			name: "read error falls through to loader",
			setup: func(m *MockCacheRepository) {
				m.EXPECT().Get(gomock.Any(), "k").Return(nil, errors.New("redis down"))
				m.EXPECT().Set(gomock.Any(), "k", gomock.Any(), 5*time.Minute).Return(errors.New("redis down"))
			},
			wantLoads: 1,
		},
		{
			name: "corrupt entry is replaced",
			setup: func(m *MockCacheRepository) {
				m.EXPECT().Get(gomock.Any(), "k").Return([]byte("{not json"), nil)
				m.EXPECT().Set(gomock.Any(), "k", gomock.Any(), 5*time.Minute).Return(nil)
			},
			wantLoads: 1,
		},
		{
			name: "loader error is returned and nothing stored",
			setup: func(m *MockCacheRepository) {
				m.EXPECT().Get(gomock.Any(), "k").Return(nil, nil)
			},
			loadErr:   errors.New("db down"),
			wantLoads: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := NewMockCacheRepository(ctrl)
			tt.setup(repo)

			loads := 0
			got, err := Cached(context.Background(), newTestCache(repo, 5*time.Minute), "k",
				func(context.Context) ([]model.CaseScore, error) {
					loads++
					return want, tt.loadErr
				})

			assert.Equal(t, tt.wantLoads, loads)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCached_DisabledPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockCacheRepository(ctrl) // no expectations: any call fails the test

	got, err := Cached(context.Background(), newTestCache(repo, 0), "k",
		func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	var nilCache *AggregateCache
	got, err = Cached(context.Background(), nilCache, "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
