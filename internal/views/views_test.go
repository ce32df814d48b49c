package views

import (
	"testing"
	"time"

	"github.com/balkashynov/tdo/internal/models"
)

var now = time.Date(2025, time.February, 14, 12, 0, 0, 0, time.Local)

func uintPtr(v uint) *uint { return &v }

func daysAgo(d int) *time.Time {
	t := now.Add(-time.Duration(d) * 24 * time.Hour)
	return &t
}

func fixture() ([]models.Task, *models.Catalog) {
	catalog := models.NewCatalog(
		[]models.Project{
			{ID: 1, Name: "Kitchen", Slug: "kitchen", AreaID: uintPtr(1), Status: models.ProjectActive},
			{ID: 2, Name: "Side Hustle", Slug: "side-hustle", Status: models.ProjectActive},
		},
		[]models.Area{
			{ID: 1, Name: "Home", Status: models.AreaActive},
			{ID: 2, Name: "Health", Status: models.AreaActive},
		},
	)
	tasks := []models.Task{
		{ID: 9, Title: "Cook dinner", Bucket: models.BucketEvening, Status: models.TaskActive},
		{ID: 1, Title: "Buy tiles", Bucket: models.BucketToday, ProjectID: uintPtr(1), Status: models.TaskActive},
		{ID: 2, Title: "Overdue invoice", Bucket: models.BucketScheduled, ScheduledOn: "2025-02-10", ProjectID: uintPtr(2), Status: models.TaskActive},
		{ID: 3, Title: "Gym", Bucket: models.BucketAnytime, AreaID: uintPtr(2), Deadline: "2025-02-14", Status: models.TaskActive},
		{ID: 4, Title: "Dentist", Bucket: models.BucketScheduled, ScheduledOn: "2025-02-15", Status: models.TaskActive},
		{ID: 5, Title: "Taxes", Bucket: models.BucketScheduled, ScheduledOn: "2025-02-17", Status: models.TaskActive},
		{ID: 6, Title: "Car wash", Bucket: models.BucketScheduled, ScheduledOn: "2025-02-15", Status: models.TaskActive},
		{ID: 7, Title: "Learn piano", Bucket: models.BucketSomeday, Status: models.TaskActive},
		{ID: 8, Title: "Sort mail", Bucket: models.BucketInbox, Status: models.TaskActive},
		{ID: 10, Title: "Old today", Bucket: models.BucketToday, Status: models.TaskTrashed},
		{ID: 11, Title: "Done today", Bucket: models.BucketToday, Status: models.TaskCompleted, CompletedAt: daysAgo(13)},
		{ID: 12, Title: "Ancient", Bucket: models.BucketInbox, Status: models.TaskCompleted, CompletedAt: daysAgo(15)},
		{ID: 13, Title: "Yesterday", Bucket: models.BucketInbox, Status: models.TaskCompleted, CompletedAt: daysAgo(1)},
		{ID: 14, Title: "Trashed later", Bucket: models.BucketInbox, Status: models.TaskTrashed},
	}
	return tasks, catalog
}

func ids(g Group) []uint {
	var out []uint
	for _, e := range g.Entries {
		out = append(out, e.Task.ID)
	}
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func build(t *testing.T, name Name) Result {
	t.Helper()
	tasks, catalog := fixture()
	r, err := New(now, tasks, catalog).Build(name)
	if err != nil {
		t.Fatalf("build %s: %v", name, err)
	}
	return r
}

func TestTodayViewGroupsEveningSeparately(t *testing.T) {
	r := build(t, Today)
	if len(r.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(r.Groups))
	}
	if got := ids(r.Groups[0]); !equalIDs(got, []uint{1, 2, 3}) {
		t.Fatalf("primary group = %v, expected [1 2 3]", got)
	}
	if r.Groups[1].Label != EveningLabel {
		t.Fatalf("expected evening label, got %q", r.Groups[1].Label)
	}
	if got := ids(r.Groups[1]); !equalIDs(got, []uint{9}) {
		t.Fatalf("evening group = %v, expected [9]", got)
	}
	if !r.Groups[0].Entries[1].Overdue {
		t.Fatalf("task scheduled in the past should be overdue")
	}
	if r.Groups[0].Entries[0].Overdue {
		t.Fatalf("today task should not be overdue")
	}
}

func TestBucketViews(t *testing.T) {
	tests := []struct {
		name Name
		want []uint
	}{
		{Inbox, []uint{8}},
		{Anytime, []uint{3}},
		{Someday, []uint{7}},
		{Trash, []uint{10, 14}},
		{All, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tt := range tests {
		r := build(t, tt.name)
		if len(r.Groups) != 1 {
			t.Fatalf("%s: expected 1 group, got %d", tt.name, len(r.Groups))
		}
		if got := ids(r.Groups[0]); !equalIDs(got, tt.want) {
			t.Fatalf("%s: got %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestUpcomingGroupsByDate(t *testing.T) {
	r := build(t, Upcoming)
	if len(r.Groups) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(r.Groups))
	}
	if r.Groups[0].Label != "Tomorrow" {
		t.Fatalf("expected Tomorrow label, got %q", r.Groups[0].Label)
	}
	if got := ids(r.Groups[0]); !equalIDs(got, []uint{4, 6}) {
		t.Fatalf("tomorrow group = %v, expected [4 6]", got)
	}
	if r.Groups[1].Label != "Monday, Feb 17" {
		t.Fatalf("unexpected label %q", r.Groups[1].Label)
	}
}

func TestLogbookWindowAndOrder(t *testing.T) {
	r := build(t, Logbook)
	if len(r.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(r.Groups))
	}
	if got := ids(r.Groups[0]); !equalIDs(got, []uint{13, 11}) {
		t.Fatalf("logbook = %v, expected [13 11]", got)
	}
}

func TestEmptyViewHasNoGroups(t *testing.T) {
	r, err := New(now, nil, models.NewCatalog(nil, nil)).Build(Today)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(r.Groups) != 0 || r.Count() != 0 {
		t.Fatalf("expected empty result, got %+v", r)
	}
}

func TestContextRules(t *testing.T) {
	area := models.Area{ID: 1, Name: "A", Status: models.AreaActive}
	other := models.Area{ID: 2, Name: "Direct", Status: models.AreaActive}
	project := models.Project{ID: 1, Name: "P", Slug: "p", AreaID: uintPtr(1), Status: models.ProjectActive}

	catalog := models.NewCatalog([]models.Project{project}, []models.Area{area, other})
	withProject := &models.Task{ProjectID: uintPtr(1)}
	if got := ContextFor(withProject, catalog); got != "A / P" {
		t.Fatalf("rule A: got %q", got)
	}

	both := &models.Task{ProjectID: uintPtr(1), AreaID: uintPtr(2)}
	if got := ContextFor(both, catalog); got != "A / P" {
		t.Fatalf("project area should win: got %q", got)
	}

	if got := ContextFor(&models.Task{AreaID: uintPtr(2)}, catalog); got != "Direct" {
		t.Fatalf("rule B: got %q", got)
	}

	project.AreaID = nil
	catalog = models.NewCatalog([]models.Project{project}, []models.Area{area, other})
	if got := ContextFor(withProject, catalog); got != "P" {
		t.Fatalf("rule C: got %q", got)
	}

	if got := ContextFor(&models.Task{}, catalog); got != "" {
		t.Fatalf("rule D: got %q", got)
	}
}

func TestDeletedProjectFallsBack(t *testing.T) {
	project := models.Project{ID: 1, Name: "P", Slug: "p", AreaID: uintPtr(1), Status: models.ProjectDeleted}
	catalog := models.NewCatalog([]models.Project{project}, []models.Area{
		{ID: 1, Name: "A", Status: models.AreaActive},
		{ID: 2, Name: "Direct", Status: models.AreaActive},
	})
	if got := ContextFor(&models.Task{ProjectID: uintPtr(1)}, catalog); got != "" {
		t.Fatalf("deleted project should resolve to empty, got %q", got)
	}
	if got := ContextFor(&models.Task{ProjectID: uintPtr(1), AreaID: uintPtr(2)}, catalog); got != "Direct" {
		t.Fatalf("deleted project should fall back to direct area, got %q", got)
	}
	if got := ContextFor(&models.Task{ProjectID: uintPtr(99)}, catalog); got != "" {
		t.Fatalf("missing project should resolve to empty, got %q", got)
	}
}

func TestProjectViewAndSummaries(t *testing.T) {
	tasks, catalog := fixture()
	e := New(now, tasks, catalog)

	r, err := e.ProjectView("kitchen")
	if err != nil {
		t.Fatalf("project view: %v", err)
	}
	if r.Title != "Home / Kitchen" {
		t.Fatalf("unexpected title %q", r.Title)
	}
	if got := ids(r.Groups[0]); !equalIDs(got, []uint{1}) {
		t.Fatalf("project tasks = %v", got)
	}

	if _, err := e.ProjectView("nope"); !models.IsCode(err, models.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	summaries := e.Projects()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(summaries))
	}
	if summaries[0].Area != "Home" || summaries[0].OpenTasks != 1 {
		t.Fatalf("unexpected summary %+v", summaries[0])
	}
}
