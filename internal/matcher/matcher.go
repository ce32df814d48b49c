package matcher

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/balkashynov/tdo/internal/models"
)

// Scope selects which tasks a reference may resolve to
type Scope int

const (
	// ScopeActive is used by done, edit, delete and move.
	ScopeActive Scope = iota
	// ScopeTrashed is used by restore.
	ScopeTrashed
	// ScopeCompleted covers logbook history.
	ScopeCompleted
)

func (s Scope) includes(t *models.Task) bool {
	switch s {
	case ScopeTrashed:
		return t.Status == models.TaskTrashed
	case ScopeCompleted:
		return t.Status == models.TaskCompleted
	default:
		return t.Status == models.TaskActive
	}
}

// Resolve finds the task that ref names within scope. A numeric ref is an ID
// lookup; anything else is a case-insensitive title substring search where
// the lowest matching ID wins.
func Resolve(ref string, tasks []models.Task, scope Scope) (*models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, models.ErrTaskNotFound(ref)
	}

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		for i := range tasks {
			t := &tasks[i]
			if uint64(t.ID) == id && scope.includes(t) {
				return t, nil
			}
		}
		return nil, models.ErrTaskNotFound(ref)
	}

	needle := strings.ToLower(ref)
	var best *models.Task
	for i := range tasks {
		t := &tasks[i]
		if !scope.includes(t) || !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		if best == nil || t.ID < best.ID {
			best = t
		}
	}
	if best == nil {
		return nil, models.ErrTaskNotFound(ref)
	}
	return best, nil
}

// Search ranks in-scope tasks by fuzzy title match, best first.
func Search(query string, tasks []models.Task, scope Scope) []models.Task {
	var pool []models.Task
	var titles []string
	for i := range tasks {
		if scope.includes(&tasks[i]) {
			pool = append(pool, tasks[i])
			titles = append(titles, tasks[i].Title)
		}
	}

	matches := fuzzy.Find(strings.TrimSpace(query), titles)
	out := make([]models.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, pool[m.Index])
	}
	return out
}

// Suggest returns up to limit titles that loosely resemble ref.
func Suggest(ref string, tasks []models.Task, scope Scope, limit int) []string {
	var out []string
	for _, t := range Search(ref, tasks, scope) {
		if len(out) == limit {
			break
		}
		out = append(out, t.Title)
	}
	return out
}
