// Package views selects, groups and orders tasks for each view and resolves
// their Area/Project context strings. Every function here is pure over
// (now, tasks, catalog).
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/parser"
)

// Name identifies a view
type Name string

const (
	Today    Name = "today"
	Inbox    Name = "inbox"
	Anytime  Name = "anytime"
	Someday  Name = "someday"
	Upcoming Name = "upcoming"
	Logbook  Name = "logbook"
	Trash    Name = "trash"
	All      Name = "all"
	Project  Name = "project"
)

// EveningLabel labels the Today-Evening block of the today view
const EveningLabel = "Evening"

var titles = map[Name]string{
	Today:    "Today",
	Inbox:    "Inbox",
	Anytime:  "Anytime",
	Someday:  "Someday",
	Upcoming: "Upcoming",
	Logbook:  "Logbook",
	Trash:    "Trash",
	All:      "All",
}

// Entry is one rendered task line
type Entry struct {
	Task    *models.Task
	Context string
	Overdue bool
}

// Group is a labeled block of entries. The first group of a view may have an
// empty label.
type Group struct {
	Label   string
	Entries []Entry
}

// Result is the ordered, grouped output of a view
type Result struct {
	View   Name
	Title  string
	Groups []Group
}

// Count returns the number of entries across all groups.
func (r Result) Count() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Entries)
	}
	return n
}

// Engine evaluates views over a snapshot of tasks and a catalog.
type Engine struct {
	Now     time.Time
	Tasks   []models.Task
	Catalog *models.Catalog
}

// New creates an engine over the given snapshot.
func New(now time.Time, tasks []models.Task, catalog *models.Catalog) *Engine {
	return &Engine{Now: now, Tasks: tasks, Catalog: catalog}
}

// Build evaluates a named view. Project views go through ProjectView.
func (e *Engine) Build(name Name) (Result, error) {
	switch name {
	case Today:
		return e.today(), nil
	case Inbox:
		return e.bucket(Inbox, models.BucketInbox), nil
	case Anytime:
		return e.bucket(Anytime, models.BucketAnytime), nil
	case Someday:
		return e.bucket(Someday, models.BucketSomeday), nil
	case Upcoming:
		return e.upcoming(), nil
	case Logbook:
		return e.logbook(), nil
	case Trash:
		return e.trash(), nil
	case All:
		return e.all(), nil
	}
	return Result{}, models.NewError(models.ErrCodeInvalid, "Unknown view: "+string(name))
}

func (e *Engine) today() Result {
	today := e.todayKey()
	var primary, evening []Entry
	for _, t := range e.sortedByID() {
		if !t.IsActive() {
			continue
		}
		overdueSchedule := t.Bucket == models.BucketScheduled && t.ScheduledOn <= today
		dueDeadline := t.Deadline != "" && t.Deadline <= today
		switch {
		case t.Bucket == models.BucketEvening:
			evening = append(evening, e.Entry(t))
		case t.Bucket == models.BucketToday, overdueSchedule, dueDeadline:
			primary = append(primary, e.Entry(t))
		}
	}
	r := Result{View: Today, Title: titles[Today]}
	if len(primary) > 0 {
		r.Groups = append(r.Groups, Group{Entries: primary})
	}
	if len(evening) > 0 {
		r.Groups = append(r.Groups, Group{Label: EveningLabel, Entries: evening})
	}
	return r
}

func (e *Engine) bucket(name Name, bucket models.Bucket) Result {
	return e.single(name, titles[name], func(t *models.Task) bool {
		return t.IsActive() && t.Bucket == bucket
	})
}

func (e *Engine) upcoming() Result {
	today := e.todayKey()
	byDate := map[string][]Entry{}
	var dates []string
	for _, t := range e.sortedByID() {
		if !t.IsActive() || t.Bucket != models.BucketScheduled || t.ScheduledOn <= today {
			continue
		}
		if _, ok := byDate[t.ScheduledOn]; !ok {
			dates = append(dates, t.ScheduledOn)
		}
		byDate[t.ScheduledOn] = append(byDate[t.ScheduledOn], e.Entry(t))
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Strings(dates)

	r := Result{View: Upcoming, Title: titles[Upcoming]}
	for _, d := range dates {
		r.Groups = append(r.Groups, Group{
			Label:   parser.FormatDateHeader(d, e.Now),
			Entries: byDate[d],
		})
	}
	return r
}

func (e *Engine) logbook() Result {
	var tasks []*models.Task
	for _, t := range e.sortedByID() {
		if InLogbook(t, e.Now) {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CompletedAt.After(*tasks[j].CompletedAt)
	})

	r := Result{View: Logbook, Title: titles[Logbook]}
	if len(tasks) > 0 {
		g := Group{}
		for _, t := range tasks {
			g.Entries = append(g.Entries, e.Entry(t))
		}
		r.Groups = append(r.Groups, g)
	}
	return r
}

func (e *Engine) trash() Result {
	return e.single(Trash, titles[Trash], func(t *models.Task) bool {
		return t.Status == models.TaskTrashed
	})
}

func (e *Engine) all() Result {
	return e.single(All, titles[All], (*models.Task).IsActive)
}

// ProjectView lists the active tasks of the non-deleted project with slug.
func (e *Engine) ProjectView(slug string) (Result, error) {
	p := e.Catalog.ProjectBySlug(strings.TrimSpace(slug))
	if p == nil {
		return Result{}, models.ErrProjectNotFound(slug)
	}
	title := p.Name
	if a := e.Catalog.Area(p.AreaID); a != nil {
		title = a.Name + " / " + p.Name
	}
	return e.single(Project, title, func(t *models.Task) bool {
		return t.IsActive() && t.ProjectID != nil && *t.ProjectID == p.ID
	}), nil
}

// ProjectSummary is one line of the projects listing
type ProjectSummary struct {
	Project   *models.Project
	Area      string
	OpenTasks int
}

// Projects lists every non-deleted project with its area and open task count.
func (e *Engine) Projects() []ProjectSummary {
	open := map[uint]int{}
	for i := range e.Tasks {
		t := &e.Tasks[i]
		if t.IsActive() && t.ProjectID != nil {
			open[*t.ProjectID]++
		}
	}
	var out []ProjectSummary
	for _, p := range e.Catalog.Projects() {
		s := ProjectSummary{Project: p, OpenTasks: open[p.ID]}
		if a := e.Catalog.Area(p.AreaID); a != nil {
			s.Area = a.Name
		}
		out = append(out, s)
	}
	return out
}

func (e *Engine) single(name Name, title string, keep func(*models.Task) bool) Result {
	r := Result{View: name, Title: title}
	g := Group{}
	for _, t := range e.sortedByID() {
		if keep(t) {
			g.Entries = append(g.Entries, e.Entry(t))
		}
	}
	if len(g.Entries) > 0 {
		r.Groups = append(r.Groups, g)
	}
	return r
}

// Entry builds the rendered line data for t.
func (e *Engine) Entry(t *models.Task) Entry {
	return Entry{
		Task:    t,
		Context: ContextFor(t, e.Catalog),
		Overdue: IsOverdue(t, e.Now),
	}
}

func (e *Engine) sortedByID() []*models.Task {
	out := make([]*models.Task, 0, len(e.Tasks))
	for i := range e.Tasks {
		out = append(out, &e.Tasks[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (e *Engine) todayKey() string {
	return e.Now.Format(parser.DateLayout)
}

// ContextFor resolves the Area/Project label of a task:
//
//	project with area  -> "Area / Project"
//	area, no project   -> "Area"
//	project, no area   -> "Project"
//	neither            -> ""
//
// The project's area wins over an area set directly on the task. Deleted or
// missing records count as absent.
func ContextFor(t *models.Task, catalog *models.Catalog) string {
	if p := catalog.Project(t.ProjectID); p != nil {
		if a := catalog.Area(p.AreaID); a != nil {
			return a.Name + " / " + p.Name
		}
		return p.Name
	}
	if a := catalog.Area(t.AreaID); a != nil {
		return a.Name
	}
	return ""
}

// IsOverdue reports whether an active task's scheduled date or deadline is
// before today.
func IsOverdue(t *models.Task, now time.Time) bool {
	if !t.IsActive() {
		return false
	}
	today := now.Format(parser.DateLayout)
	if t.Bucket == models.BucketScheduled && t.ScheduledOn != "" && t.ScheduledOn < today {
		return true
	}
	return t.Deadline != "" && t.Deadline < today
}

// InLogbook reports whether a completed task is still inside the logbook window.
func InLogbook(t *models.Task, now time.Time) bool {
	if t.Status != models.TaskCompleted || t.CompletedAt == nil {
		return false
	}
	return now.Sub(*t.CompletedAt) <= models.LogbookWindow
}
