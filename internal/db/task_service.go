package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/matcher"
	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/scheduler"
)

// AddTaskRequest holds the data needed to create a new task
type AddTaskRequest struct {
	Title string
	Flags scheduler.Flags
	Now   time.Time
}

// AddTask validates every flag, then creates an active task
func AddTask(tx *gorm.DB, req AddTaskRequest) (*models.Task, error) {
	title, err := scheduler.ValidateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	plan, err := scheduler.Validate(scheduler.OpAdd, req.Flags, req.Now, snap.Catalog())
	if err != nil {
		return nil, err
	}

	task := models.Task{
		Title:  title,
		Status: models.TaskActive,
	}
	plan.Apply(&task)

	if err := resolveTags(tx, task.Tags); err != nil {
		return nil, err
	}

	if err := tx.Create(&task).Error; err != nil {
		return nil, err
	}

	// Reload so the caller sees the stored row with its tag IDs
	return GetTaskByID(tx, task.ID)
}

// MoveTask applies validated flags to the active task that ref names
func MoveTask(tx *gorm.DB, ref string, flags scheduler.Flags, now time.Time) (*models.Task, error) {
	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	task, err := matcher.Resolve(ref, snap.Tasks, matcher.ScopeActive)
	if err != nil {
		return nil, err
	}

	plan, err := scheduler.Validate(scheduler.OpMove, flags, now, snap.Catalog())
	if err != nil {
		return nil, err
	}

	plan.Apply(task)
	if err := SaveTask(tx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// CompleteTask marks an active task as completed
func CompleteTask(tx *gorm.DB, ref string, now time.Time) (*models.Task, error) {
	return transition(tx, ref, matcher.ScopeActive, func(t *models.Task) {
		t.Status = models.TaskCompleted
		t.CompletedAt = &now
	})
}

// TrashTask moves an active task to the trash
func TrashTask(tx *gorm.DB, ref string, now time.Time) (*models.Task, error) {
	return transition(tx, ref, matcher.ScopeActive, func(t *models.Task) {
		t.Status = models.TaskTrashed
		t.TrashedAt = &now
	})
}

// RestoreTask brings a trashed task back, keeping its previous schedule
func RestoreTask(tx *gorm.DB, ref string) (*models.Task, error) {
	return transition(tx, ref, matcher.ScopeTrashed, func(t *models.Task) {
		t.Status = models.TaskActive
		t.TrashedAt = nil
	})
}

func transition(tx *gorm.DB, ref string, scope matcher.Scope, fn func(*models.Task)) (*models.Task, error) {
	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	task, err := matcher.Resolve(ref, snap.Tasks, scope)
	if err != nil {
		return nil, err
	}

	fn(task)
	if err := SaveTask(tx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// SaveTask persists all task fields and links any new tags
func SaveTask(tx *gorm.DB, task *models.Task) error {
	if task.ID == 0 {
		return fmt.Errorf("cannot save task without ID")
	}
	if err := resolveTags(tx, task.Tags); err != nil {
		return err
	}
	return tx.Save(task).Error
}

// ReplaceTaskTags saves the task and sets its tag set to exactly task.Tags
func ReplaceTaskTags(tx *gorm.DB, task *models.Task) error {
	if err := SaveTask(tx, task); err != nil {
		return err
	}
	if len(task.Tags) == 0 {
		return tx.Model(task).Association("Tags").Clear()
	}
	return tx.Model(task).Association("Tags").Replace(task.Tags)
}

// GetTaskByID retrieves a task by ID regardless of status
func GetTaskByID(tx *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task

	err := tx.Preload("Tags").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrTaskNotFound(fmt.Sprint(id))
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// resolveTags fills in IDs for tags that are not stored yet, creating them
func resolveTags(tx *gorm.DB, tags []models.Tag) error {
	for i := range tags {
		if tags[i].ID != 0 {
			continue
		}

		var tag models.Tag

		// Try to find existing tag
		err := tx.Where("name = ?", tags[i].Name).First(&tag).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Tag doesn't exist, create it
			tag = models.Tag{Name: tags[i].Name}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}

		tags[i] = tag
	}

	return nil
}

// EditTask resolves the active task that ref names and passes it to edit
// together with the catalog. edit must validate before mutating; on success
// the task is saved with its tag set replaced.
func EditTask(tx *gorm.DB, ref string, edit func(*models.Task, *models.Catalog) error) (*models.Task, error) {
	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	task, err := matcher.Resolve(ref, snap.Tasks, matcher.ScopeActive)
	if err != nil {
		return nil, err
	}

	if err := edit(task, snap.Catalog()); err != nil {
		return nil, err
	}

	if err := ReplaceTaskTags(tx, task); err != nil {
		return nil, err
	}

	return task, nil
}
