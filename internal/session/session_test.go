package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

func testSnapshot(gen uint64, city string) *Snapshot {
	start := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	f := &models.Forecast{
		City: city,
		Points: []models.ForecastPoint{
			{Time: start, Temperature: 10, Icon: "04d"},
			{Time: start.Add(24 * time.Hour), Temperature: 12, Icon: "10d"},
		},
		FetchedAt: start,
	}
	return &Snapshot{
		Generation:  gen,
		City:        city,
		Forecast:    f,
		Aggregation: forecast.Aggregate(f.Points, time.UTC),
		FetchedAt:   start,
	}
}

func TestSession_BeginIsMonotonic(t *testing.T) {
	s := New()
	require.Equal(t, uint64(0), s.Generation())
	require.False(t, s.IsCurrent(0))

	first := s.Begin()
	second := s.Begin()
	require.Greater(t, second, first)
	require.False(t, s.IsCurrent(first))
	require.True(t, s.IsCurrent(second))
}

func TestSession_CommitLatest(t *testing.T) {
	s := New()
	require.Nil(t, s.Current())

	gen := s.Begin()
	require.True(t, s.Commit(testSnapshot(gen, "Kocaeli")))
	require.Equal(t, "Kocaeli", s.Current().City)

	summary, bucket, ok := s.Day(1)
	require.True(t, ok)
	require.Equal(t, "2025-03-05", summary.Key)
	require.Len(t, bucket.Points, 1)
}

func TestSession_StaleCommitRejected(t *testing.T) {
	s := New()
	old := s.Begin()
	latest := s.Begin()

	// the slow first search returns after the second was started
	require.False(t, s.Commit(testSnapshot(old, "Ankara")))
	require.Nil(t, s.Current())

	require.True(t, s.Commit(testSnapshot(latest, "İzmir")))
	require.False(t, s.Commit(testSnapshot(old, "Ankara")))
	require.Equal(t, "İzmir", s.Current().City)
}

func TestSession_FailedSearchKeepsPreviousData(t *testing.T) {
	s := New()
	gen := s.Begin()
	require.True(t, s.Commit(testSnapshot(gen, "Kocaeli")))

	// a new search starts and fails; nothing is committed
	s.Begin()
	require.Equal(t, "Kocaeli", s.Current().City)
}

func TestSession_NilAndEmpty(t *testing.T) {
	s := New()
	require.False(t, s.Commit(nil))

	_, _, ok := s.Day(0)
	require.False(t, ok)

	gen := s.Begin()
	require.True(t, s.Commit(&Snapshot{Generation: gen, City: "Kocaeli"}))
	_, _, ok = s.Day(0)
	require.False(t, ok)
}

func TestSession_ConcurrentCommits(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen := s.Begin()
			s.Commit(testSnapshot(gen, "Kocaeli"))
		}()
	}
	wg.Wait()

	if snap := s.Current(); snap != nil {
		require.LessOrEqual(t, snap.Generation, s.Generation())
	}
}
