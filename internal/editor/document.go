// Package editor round-trips a task through a YAML document opened in the
// user's editor. Only fields that differ from the document the user was shown
// are applied, and the whole edit is validated before the task is touched.
package editor

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/parser"
	"github.com/balkashynov/tdo/internal/scheduler"
)

// Document is the editable YAML form of a task
type Document struct {
	Title    string   `yaml:"title"`
	When     string   `yaml:"when"`
	Deadline string   `yaml:"deadline"`
	Project  string   `yaml:"project"`
	Area     string   `yaml:"area"`
	Tags     []string `yaml:"tags"`
	Notes    string   `yaml:"notes"`
}

// FromTask builds the document shown to the user. Dangling project or area
// references render as empty fields.
func FromTask(t *models.Task, catalog *models.Catalog) Document {
	doc := Document{
		Title:    t.Title,
		When:     whenToken(t.Schedule()),
		Deadline: t.Deadline,
		Tags:     t.TagNames(),
		Notes:    t.Notes,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if p := catalog.Project(t.ProjectID); p != nil {
		doc.Project = p.Slug
	}
	if a := catalog.Area(t.AreaID); a != nil {
		doc.Area = a.Name
	}
	return doc
}

func whenToken(s models.Schedule) string {
	switch s.Bucket {
	case models.BucketScheduled:
		return s.Date
	case "":
		return string(models.BucketInbox)
	}
	return string(s.Bucket)
}

// Marshal renders the document as YAML
func (d Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Parse reads an edited document
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, models.WrapError(models.ErrCodeInvalid, "Invalid task document", err)
	}
	return doc, nil
}

// Change is a validated edit. Nil pointers and unset flags leave the task as is.
type Change struct {
	Title    *string
	Schedule *models.Schedule
	Deadline *string

	SetProject bool
	ProjectID  *uint // nil clears
	SetArea    bool
	AreaID     *uint // nil clears

	SetTags bool
	Tags    []string
	Notes   *string
}

// Diff validates every field of edited that differs from orig
func Diff(orig, edited Document, now time.Time, catalog *models.Catalog) (Change, error) {
	var c Change

	if edited.Title != orig.Title {
		title, err := scheduler.ValidateTitle(edited.Title)
		if err != nil {
			return Change{}, err
		}
		c.Title = &title
	}

	if when := strings.TrimSpace(edited.When); when != orig.When {
		s, err := parseWhen(when, now)
		if err != nil {
			return Change{}, err
		}
		c.Schedule = &s
	}

	if deadline := strings.TrimSpace(edited.Deadline); deadline != orig.Deadline {
		if deadline != "" {
			resolved, err := parser.ResolveDateString(deadline, now)
			if err != nil {
				return Change{}, err
			}
			deadline = resolved
		}
		c.Deadline = &deadline
	}

	if slug := strings.TrimSpace(edited.Project); slug != orig.Project {
		c.SetProject = true
		if slug != "" {
			p := catalog.ProjectBySlug(slug)
			if p == nil || p.Status != models.ProjectActive {
				return Change{}, models.ErrProjectNotFound(slug)
			}
			id := p.ID
			c.ProjectID = &id
		}
	}

	if name := strings.TrimSpace(edited.Area); name != orig.Area {
		c.SetArea = true
		if name != "" {
			a := catalog.AreaByName(name)
			if a == nil {
				return Change{}, models.ErrAreaNotFound(name)
			}
			id := a.ID
			c.AreaID = &id
		}
	}

	tags := scheduler.NormalizeTags(edited.Tags)
	if !sameTags(tags, orig.Tags) {
		c.SetTags = true
		c.Tags = tags
	}

	if edited.Notes != orig.Notes {
		notes := strings.TrimRight(edited.Notes, "\n")
		c.Notes = &notes
	}

	return c, nil
}

func parseWhen(when string, now time.Time) (models.Schedule, error) {
	switch strings.ToLower(when) {
	case "", "inbox":
		return models.Inbox(), nil
	case "today":
		return models.Today(), nil
	case "evening", "today evening":
		return models.Evening(), nil
	case "someday":
		return models.Someday(), nil
	case "anytime":
		return models.Anytime(), nil
	}
	date, err := parser.ResolveDateString(when, now)
	if err != nil {
		return models.Schedule{}, err
	}
	return models.ScheduledFor(date), nil
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(b))
	for _, name := range b {
		set[name] = true
	}
	for _, name := range a {
		if !set[name] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the change leaves the task untouched
func (c Change) IsEmpty() bool {
	return c.Title == nil && c.Schedule == nil && c.Deadline == nil &&
		!c.SetProject && !c.SetArea && !c.SetTags && c.Notes == nil
}

// Apply writes the change onto t. The tag set is replaced; tags the task
// already carried keep their stored IDs.
func (c Change) Apply(t *models.Task) {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Schedule != nil {
		t.SetSchedule(*c.Schedule)
	}
	if c.Deadline != nil {
		t.Deadline = *c.Deadline
	}
	if c.SetProject {
		t.ProjectID = c.ProjectID
	}
	if c.SetArea {
		t.AreaID = c.AreaID
	}
	if c.Notes != nil {
		t.Notes = *c.Notes
	}
	if c.SetTags {
		existing := make(map[string]models.Tag, len(t.Tags))
		for _, tag := range t.Tags {
			existing[tag.Name] = tag
		}
		tags := make([]models.Tag, 0, len(c.Tags))
		for _, name := range c.Tags {
			if tag, ok := existing[name]; ok {
				tags = append(tags, tag)
				continue
			}
			tags = append(tags, models.Tag{Name: name})
		}
		t.Tags = tags
	}
}
