package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
	TaskTrashed   TaskStatus = "trashed"
)

// LogbookWindow is how long a completed task stays visible in the logbook
const LogbookWindow = 14 * 24 * time.Hour

// Task represents a todo item
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UID       string    `gorm:"uniqueIndex;not null" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"not null" json:"title"`
	Notes string `json:"notes"`

	// Bucket and ScheduledOn together form the schedule; ScheduledOn is only
	// set for BucketScheduled.
	Bucket      Bucket `gorm:"not null;default:inbox;index" json:"bucket"`
	ScheduledOn string `json:"scheduled_on,omitempty"` // YYYY-MM-DD
	Deadline    string `json:"deadline,omitempty"`     // YYYY-MM-DD

	// Weak references, resolved through a Catalog at display time.
	ProjectID *uint `gorm:"index" json:"project_id"`
	AreaID    *uint `gorm:"index" json:"area_id"`

	Status      TaskStatus `gorm:"not null;default:active;index" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	TrashedAt   *time.Time `json:"trashed_at"`

	// Relationships
	Tags []Tag `gorm:"many2many:task_tags;" json:"tags"`
}

// Tag represents a task tag
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Tasks []Task `gorm:"many2many:task_tags;" json:"-"`
}

// TaskTag is the join table for the many-to-many relationship
type TaskTag struct {
	TaskID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

// BeforeCreate assigns the external identifier.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.UID == "" {
		t.UID = uuid.NewString()
	}
	return nil
}

// Schedule returns the task's bucket state.
func (t *Task) Schedule() Schedule {
	return Schedule{Bucket: t.Bucket, Date: t.ScheduledOn}
}

// SetSchedule replaces the bucket state, keeping Bucket and ScheduledOn in step.
func (t *Task) SetSchedule(s Schedule) {
	t.Bucket = s.Bucket
	if s.Bucket == BucketScheduled {
		t.ScheduledOn = s.Date
	} else {
		t.ScheduledOn = ""
	}
}

func (t *Task) IsActive() bool {
	return t.Status == TaskActive
}

// TagNames returns the tag names in stored order.
func (t *Task) TagNames() []string {
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// HasTag reports whether the task carries the exact (case-sensitive) tag.
func (t *Task) HasTag(name string) bool {
	for _, tag := range t.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}
