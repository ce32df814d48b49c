package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/balkashynov/tdo/internal/models"
)

var now = time.Date(2025, time.February, 14, 9, 0, 0, 0, time.Local)

func str(s string) *string { return &s }

func testCatalog() *models.Catalog {
	areaID := uint(1)
	return models.NewCatalog(
		[]models.Project{
			{ID: 1, Name: "Home Renovation", Slug: "home-renovation", AreaID: &areaID, Status: models.ProjectActive},
			{ID: 2, Name: "Old Launch", Slug: "old-launch", Status: models.ProjectCompleted},
			{ID: 3, Name: "Gone", Slug: "gone", Status: models.ProjectDeleted},
		},
		[]models.Area{
			{ID: 1, Name: "Personal", Status: models.AreaActive},
			{ID: 2, Name: "Retired", Status: models.AreaDeleted},
		},
	)
}

func TestResolveSchedule(t *testing.T) {
	tests := []struct {
		name  string
		op    Op
		flags Flags
		want  *models.Schedule
	}{
		{"no flags", OpAdd, Flags{}, nil},
		{"today", OpAdd, Flags{Today: true}, &models.Schedule{Bucket: models.BucketToday}},
		{"today evening", OpMove, Flags{Today: true, Evening: true}, &models.Schedule{Bucket: models.BucketEvening}},
		{"evening alone on add", OpAdd, Flags{Evening: true}, &models.Schedule{Bucket: models.BucketEvening}},
		{"evening alone on move", OpMove, Flags{Evening: true}, nil},
		{"someday", OpMove, Flags{Someday: true}, &models.Schedule{Bucket: models.BucketSomeday}},
		{"anytime", OpAdd, Flags{Anytime: true}, &models.Schedule{Bucket: models.BucketAnytime}},
		{"inbox shorthand", OpMove, Flags{Inbox: true}, &models.Schedule{Bucket: models.BucketInbox}},
		{"when", OpAdd, Flags{When: str("friday")}, &models.Schedule{Bucket: models.BucketScheduled, Date: "2025-02-21"}},
		{"evening ignored with someday on move", OpMove, Flags{Someday: true, Evening: true}, &models.Schedule{Bucket: models.BucketSomeday}},
	}

	for _, tt := range tests {
		got, err := ResolveSchedule(tt.op, tt.flags, now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if tt.want == nil {
			if got != nil {
				t.Fatalf("%s: expected no schedule, got %+v", tt.name, *got)
			}
			continue
		}
		if got == nil || *got != *tt.want {
			t.Fatalf("%s: got %+v, expected %+v", tt.name, got, *tt.want)
		}
	}
}

func TestResolveScheduleRejectsConflicts(t *testing.T) {
	tests := []struct {
		op    Op
		flags Flags
		names []string
	}{
		{OpMove, Flags{Today: true, Someday: true}, []string{"--today", "--someday"}},
		{OpAdd, Flags{Anytime: true, When: str("tomorrow")}, []string{"--anytime", "--when"}},
		{OpAdd, Flags{Today: true, Someday: true, Anytime: true}, []string{"--today", "--someday", "--anytime"}},
		{OpAdd, Flags{Evening: true, Someday: true}, []string{"--evening", "--someday"}},
	}
	for _, tt := range tests {
		_, err := ResolveSchedule(tt.op, tt.flags, now)
		if err == nil {
			t.Fatalf("expected conflict for %+v", tt.flags)
		}
		if !models.IsCode(err, models.ErrCodeInvalid) {
			t.Fatalf("expected INVALID, got %v", err)
		}
		want := "Conflicting flags: " + strings.Join(tt.names, ", ")
		if err.Error() != want {
			t.Fatalf("message = %q, expected %q", err.Error(), want)
		}
	}
}

func TestValidateDefaultsAddToInbox(t *testing.T) {
	plan, err := Validate(OpAdd, Flags{}, now, testCatalog())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if plan.Schedule == nil || plan.Schedule.Bucket != models.BucketInbox {
		t.Fatalf("expected inbox schedule, got %+v", plan.Schedule)
	}

	plan, err = Validate(OpMove, Flags{}, now, testCatalog())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !plan.IsEmpty() {
		t.Fatalf("expected empty move plan, got %+v", plan)
	}
}

func TestValidateResolvesReferences(t *testing.T) {
	plan, err := Validate(OpAdd, Flags{
		Today:    true,
		Deadline: str("2025-03-01"),
		Project:  str("home-renovation"),
		Area:     str("personal"),
		Tags:     []string{"errand", " errand", "Errand", ""},
		Notes:    str("bring receipts"),
	}, now, testCatalog())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if plan.ProjectID == nil || *plan.ProjectID != 1 {
		t.Fatalf("expected project 1, got %v", plan.ProjectID)
	}
	if plan.AreaID == nil || *plan.AreaID != 1 {
		t.Fatalf("expected area 1, got %v", plan.AreaID)
	}
	if plan.Deadline == nil || *plan.Deadline != "2025-03-01" {
		t.Fatalf("expected deadline 2025-03-01, got %v", plan.Deadline)
	}
	if len(plan.Tags) != 2 || plan.Tags[0] != "errand" || plan.Tags[1] != "Errand" {
		t.Fatalf("expected case-sensitive deduped tags, got %v", plan.Tags)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		code  models.ErrorCode
		msg   string
	}{
		{"unknown project", Flags{Project: str("nope")}, models.ErrCodeNotFound, "Project not found: nope"},
		{"completed project", Flags{Project: str("old-launch")}, models.ErrCodeNotFound, "Project not found: old-launch"},
		{"deleted project", Flags{Project: str("gone")}, models.ErrCodeNotFound, "Project not found: gone"},
		{"deleted area", Flags{Area: str("Retired")}, models.ErrCodeNotFound, "Area not found: Retired"},
		{"bad when", Flags{When: str("blursday")}, models.ErrCodeInvalid, "Invalid date format: blursday"},
		{"bad deadline", Flags{Deadline: str("2025-02-30")}, models.ErrCodeInvalid, "Invalid date format: 2025-02-30"},
	}
	for _, tt := range tests {
		_, err := Validate(OpMove, tt.flags, now, testCatalog())
		if !models.IsCode(err, tt.code) {
			t.Fatalf("%s: expected %s, got %v", tt.name, tt.code, err)
		}
		if err.Error() != tt.msg {
			t.Fatalf("%s: message = %q, expected %q", tt.name, err.Error(), tt.msg)
		}
	}
}

func TestApplyKeepsOneScheduleAndAddsTags(t *testing.T) {
	task := &models.Task{ID: 7, Title: "Paint hallway", Bucket: models.BucketScheduled, ScheduledOn: "2025-02-20",
		Tags: []models.Tag{{ID: 1, Name: "home"}}, Notes: "old"}

	plan, err := Validate(OpMove, Flags{Someday: true, Tags: []string{"home", "paint"}, Notes: str("new")}, now, testCatalog())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	plan.Apply(task)

	if task.Bucket != models.BucketSomeday || task.ScheduledOn != "" {
		t.Fatalf("expected someday without date, got %s %q", task.Bucket, task.ScheduledOn)
	}
	if got := task.TagNames(); len(got) != 2 || got[0] != "home" || got[1] != "paint" {
		t.Fatalf("expected tags [home paint], got %v", got)
	}
	if task.Notes != "new" {
		t.Fatalf("expected notes replaced, got %q", task.Notes)
	}
}

func TestFailedValidationLeavesTaskUntouched(t *testing.T) {
	task := &models.Task{ID: 3, Title: "Call dentist", Bucket: models.BucketAnytime}
	before := *task

	plan, err := Validate(OpMove, Flags{Today: true, Someday: true, Tags: []string{"x"}}, now, testCatalog())
	if err == nil {
		t.Fatalf("expected conflicting flags error")
	}
	if !plan.IsEmpty() {
		t.Fatalf("expected no plan on failure")
	}
	if task.Bucket != before.Bucket || len(task.Tags) != 0 {
		t.Fatalf("task changed after failed validation: %+v", task)
	}
}

func TestValidateTitle(t *testing.T) {
	if _, err := ValidateTitle("   "); !models.IsCode(err, models.ErrCodeInvalid) {
		t.Fatalf("expected INVALID for blank title, got %v", err)
	}
	got, err := ValidateTitle("  Buy milk ")
	if err != nil || got != "Buy milk" {
		t.Fatalf("expected trimmed title, got %q (%v)", got, err)
	}
}
