// Package session tracks the active search and the weather data it produced
package session

import (
	"sync/atomic"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Snapshot is the complete result of one successful search
type Snapshot struct {
	Generation  uint64
	City        string
	Forecast    *models.Forecast
	Aggregation *forecast.Aggregation
	FetchedAt   time.Time
}

// Session holds the search generation counter and the latest committed snapshot.
// It is safe for concurrent use.
type Session struct {
	generation atomic.Uint64
	current    atomic.Pointer[Snapshot]
}

// New creates an empty session
func New() *Session {
	return &Session{}
}

// Begin starts a new search and returns its generation
func (s *Session) Begin() uint64 {
	return s.generation.Add(1)
}

// Generation returns the latest generation handed out by Begin
func (s *Session) Generation() uint64 {
	return s.generation.Load()
}

// IsCurrent reports whether gen belongs to the latest search
func (s *Session) IsCurrent(gen uint64) bool {
	return gen != 0 && gen == s.generation.Load()
}

// Commit replaces the current snapshot if it belongs to the latest search.
// It returns false and leaves the session untouched otherwise.
func (s *Session) Commit(snap *Snapshot) bool {
	if snap == nil || !s.IsCurrent(snap.Generation) {
		return false
	}
	for {
		prev := s.current.Load()
		if prev != nil && prev.Generation > snap.Generation {
			return false
		}
		if s.current.CompareAndSwap(prev, snap) {
			return true
		}
	}
}

// Current returns the committed snapshot, or nil before the first successful search
func (s *Session) Current() *Snapshot {
	return s.current.Load()
}

// Day returns the summary and bucket for the i-th day of the current snapshot
func (s *Session) Day(i int) (forecast.DaySummary, *forecast.DayBucket, bool) {
	snap := s.current.Load()
	if snap == nil || snap.Aggregation == nil {
		return forecast.DaySummary{}, nil, false
	}
	return snap.Aggregation.Day(i)
}
