package services

import (
	"sync"
	"time"

	"github.com/alimgiray/gfolio/internal/debounce"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/render"
)

// QueryDebounce is how long typing has to pause before the list re-renders.
const QueryDebounce = 250 * time.Millisecond

// Session is one viewer's interactive filter state over a loaded snapshot.
// Every change re-runs the pipeline against the same raw list.
type Session struct {
	snapshot *Snapshot
	targets  render.Targets
	debounce *debounce.Debouncer

	mu    sync.Mutex
	state models.FilterState
}

func NewSession(snapshot *Snapshot, targets render.Targets) *Session {
	return newSession(snapshot, targets, QueryDebounce)
}

func newSession(snapshot *Snapshot, targets render.Targets, delay time.Duration) *Session {
	return &Session{
		snapshot: snapshot,
		targets:  targets,
		debounce: debounce.New(delay),
		state:    models.DefaultFilterState(),
	}
}

// State returns the current filter state.
func (s *Session) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetQuery records the search text and schedules a render.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	s.state.Query = query
	s.mu.Unlock()

	s.debounce.Trigger(s.Render)
}

// SetLanguage changes the language filter and renders immediately.
func (s *Session) SetLanguage(language string) {
	s.mu.Lock()
	s.state.Language = language
	s.mu.Unlock()

	s.Render()
}

// SetSort changes the sort key and renders immediately.
func (s *Session) SetSort(key models.SortKey) {
	s.mu.Lock()
	s.state.Sort = key
	s.mu.Unlock()

	s.Render()
}

// Render paints the project list for the current state.
func (s *Session) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.RepositoriesErr != nil {
		render.PaintProjectsFailed(s.targets)
		return
	}
	render.PaintProjects(s.targets, s.snapshot.Languages, s.state, s.snapshot.Cards(s.state))
}

// Flush runs a pending debounced render now.
func (s *Session) Flush() {
	s.debounce.Flush()
}

// Close drops any pending render.
func (s *Session) Close() {
	s.debounce.Stop()
}
