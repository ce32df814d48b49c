// Package scheduler validates add/move flags against the current catalog and
// turns them into a Plan that is applied to a task only once every flag has
// passed validation.
package scheduler

import (
	"strings"
	"time"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/parser"
)

// Op selects the command whose flag rules apply
type Op int

const (
	OpAdd Op = iota
	OpMove
)

func (o Op) String() string {
	if o == OpMove {
		return "move"
	}
	return "add"
}

// Flags carries the user-supplied mutation flags. Pointer fields are nil when
// the flag was not given.
type Flags struct {
	Today   bool
	Evening bool
	Someday bool
	Anytime bool
	Inbox   bool // only set by the view shorthand, e.g. "tdo inbox 4"

	When     *string
	Deadline *string
	Project  *string
	Area     *string
	Notes    *string
	Tags     []string
}

// Plan is a fully validated set of changes to a task.
type Plan struct {
	Schedule  *models.Schedule
	Deadline  *string
	ProjectID *uint
	AreaID    *uint
	Notes     *string
	Tags      []string
}

// ResolveSchedule is the single bucket-resolution rule shared by add and move.
// It returns nil when no scheduling flag is present.
//
// --evening standing alone implies Today+evening on add; on move it only
// takes effect together with --today.
func ResolveSchedule(op Op, f Flags, now time.Time) (*models.Schedule, error) {
	var set []string
	if f.Today {
		set = append(set, "--today")
	}
	if f.Someday {
		set = append(set, "--someday")
	}
	if f.Anytime {
		set = append(set, "--anytime")
	}
	if f.When != nil {
		set = append(set, "--when")
	}
	if f.Inbox {
		set = append(set, "inbox")
	}
	if op == OpAdd && f.Evening && !f.Today && len(set) > 0 {
		set = append([]string{"--evening"}, set...)
	}
	if len(set) > 1 {
		return nil, models.ErrConflictingFlags(set)
	}

	var s models.Schedule
	switch {
	case f.Today && f.Evening:
		s = models.Evening()
	case f.Today:
		s = models.Today()
	case f.Someday:
		s = models.Someday()
	case f.Anytime:
		s = models.Anytime()
	case f.Inbox:
		s = models.Inbox()
	case f.When != nil:
		date, err := parser.ResolveDateString(*f.When, now)
		if err != nil {
			return nil, err
		}
		s = models.ScheduledFor(date)
	case f.Evening && op == OpAdd:
		s = models.Evening()
	default:
		return nil, nil
	}
	return &s, nil
}

// Validate checks every flag and resolves references without touching any
// task. The first failure is returned and no Plan is produced.
func Validate(op Op, f Flags, now time.Time, catalog *models.Catalog) (Plan, error) {
	var plan Plan

	schedule, err := ResolveSchedule(op, f, now)
	if err != nil {
		return Plan{}, err
	}
	if schedule == nil && op == OpAdd {
		inbox := models.Inbox()
		schedule = &inbox
	}
	plan.Schedule = schedule

	if f.Deadline != nil {
		deadline, err := parser.ResolveDateString(*f.Deadline, now)
		if err != nil {
			return Plan{}, err
		}
		plan.Deadline = &deadline
	}

	if f.Project != nil {
		slug := strings.TrimSpace(*f.Project)
		p := catalog.ProjectBySlug(slug)
		if p == nil || p.Status != models.ProjectActive {
			return Plan{}, models.ErrProjectNotFound(slug)
		}
		id := p.ID
		plan.ProjectID = &id
	}

	if f.Area != nil {
		name := strings.TrimSpace(*f.Area)
		a := catalog.AreaByName(name)
		if a == nil {
			return Plan{}, models.ErrAreaNotFound(name)
		}
		id := a.ID
		plan.AreaID = &id
	}

	if f.Notes != nil {
		notes := *f.Notes
		plan.Notes = &notes
	}

	plan.Tags = NormalizeTags(f.Tags)
	return plan, nil
}

// ValidateTitle rejects blank task titles.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", models.NewError(models.ErrCodeInvalid, "Task title is required")
	}
	return title, nil
}

// Apply writes the plan onto t. Tags are added to the existing set; new tags
// are appended without IDs for the storage layer to resolve.
func (p Plan) Apply(t *models.Task) {
	if p.Schedule != nil {
		t.SetSchedule(*p.Schedule)
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	if p.ProjectID != nil {
		id := *p.ProjectID
		t.ProjectID = &id
	}
	if p.AreaID != nil {
		id := *p.AreaID
		t.AreaID = &id
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	for _, name := range p.Tags {
		if !t.HasTag(name) {
			t.Tags = append(t.Tags, models.Tag{Name: name})
		}
	}
}

// IsEmpty reports whether applying the plan would change nothing.
func (p Plan) IsEmpty() bool {
	return p.Schedule == nil && p.Deadline == nil && p.ProjectID == nil &&
		p.AreaID == nil && p.Notes == nil && len(p.Tags) == 0
}

// NormalizeTags trims names, drops blanks and collapses exact duplicates,
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
