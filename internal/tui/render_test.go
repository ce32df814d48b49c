package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/views"
)

func TestRenderViewGroups(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, 60)

	res := views.Result{
		Title: "Today",
		Groups: []views.Group{
			{Entries: []views.Entry{
				{Task: &models.Task{ID: 1, Title: "Call dentist", Status: models.TaskActive}, Context: "Health"},
				{Task: &models.Task{ID: 12, Title: "Pay rent", Status: models.TaskActive}, Overdue: true},
			}},
			{Label: views.EveningLabel, Entries: []views.Entry{
				{Task: &models.Task{ID: 3, Title: "Read", Status: models.TaskActive}},
			}},
		},
	}
	r.View(res)
	out := buf.String()

	for _, want := range []string{
		"Today (3 tasks)",
		"    1  ○  Call dentist",
		"   12  ●  Pay rent",
		"─── Evening ───",
		"    3  ○  Read",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes for non-terminal output:\n%s", out)
	}
}

func TestLineRightAlignsContext(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, 40)

	line := r.Line(views.Entry{Task: &models.Task{ID: 1, Title: "Call", Status: models.TaskActive}, Context: "Health"})
	if !strings.HasSuffix(line, "Health") {
		t.Fatalf("expected context at the end: %q", line)
	}
	if got := len([]rune(line)); got != 38 {
		t.Fatalf("expected line width 38, got %d: %q", got, line)
	}

	long := r.Line(views.Entry{Task: &models.Task{ID: 1, Title: strings.Repeat("x", 30), Status: models.TaskActive}, Context: "Health"})
	if strings.Contains(long, "Health") {
		t.Fatalf("context should be dropped when it does not fit: %q", long)
	}
}

func TestLineCompletedGlyph(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, 80)
	done := time.Now()

	line := r.Line(views.Entry{Task: &models.Task{ID: 5, Title: "Ship it", Status: models.TaskCompleted, CompletedAt: &done}})
	if !strings.Contains(line, "✓  Ship it") {
		t.Fatalf("unexpected completed line %q", line)
	}
}

func TestRenderEmptyView(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, 80).View(views.Result{Title: "Inbox"})

	if out := buf.String(); !strings.Contains(out, "Inbox (0 tasks)") || !strings.Contains(out, "Nothing here.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderProjects(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, 80).Projects([]views.ProjectSummary{
		{Project: &models.Project{Name: "Launch", Slug: "launch"}, Area: "Work", OpenTasks: 1},
		{Project: &models.Project{Name: "Garden", Slug: "garden"}, OpenTasks: 0},
	})

	out := buf.String()
	for _, want := range []string{"Projects (2 projects)", "Work · 1 open task", "0 open tasks"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
