package db

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/models"
	"github.com/balkashynov/tdo/internal/parser"
)

// CreateProjectRequest holds the data needed to create a new project
type CreateProjectRequest struct {
	Name string
	Area string // optional area name
}

// reservedSlugs are the project subcommand names. A project with one of these
// slugs could never be opened with `project <slug>`.
var reservedSlugs = map[string]bool{
	"new":     true,
	"done":    true,
	"delete":  true,
	"restore": true,
}

// CreateProject creates an active project with a unique slug derived from its name
func CreateProject(tx *gorm.DB, req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}
	catalog := snap.Catalog()

	slug, err := parser.UniqueSlug(name, func(s string) bool {
		return reservedSlugs[s] || catalog.SlugTaken(s)
	})
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Name:   name,
		Slug:   slug,
		Status: models.ProjectActive,
	}

	if area := strings.TrimSpace(req.Area); area != "" {
		a := catalog.AreaByName(area)
		if a == nil {
			return nil, models.ErrAreaNotFound(area)
		}
		id := a.ID
		project.AreaID = &id
	}

	if err := tx.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// CompleteProject marks a project as completed without touching its tasks
func CompleteProject(tx *gorm.DB, slug string, now time.Time) (*models.Project, error) {
	return updateProject(tx, slug, func(p *models.Project) {
		p.Status = models.ProjectCompleted
		p.CompletedAt = &now
	})
}

// DeleteProject tombstones a project. Member tasks keep their reference.
func DeleteProject(tx *gorm.DB, slug string, now time.Time) (*models.Project, error) {
	return updateProject(tx, slug, func(p *models.Project) {
		p.Status = models.ProjectDeleted
		p.DeletedAt = &now
	})
}

// RestoreProject reactivates the latest deleted project with slug, as long as
// no other live project has taken the slug since
func RestoreProject(tx *gorm.DB, slug string) (*models.Project, error) {
	slug = strings.TrimSpace(slug)

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}
	catalog := snap.Catalog()

	project := catalog.DeletedProjectBySlug(slug)
	if project == nil {
		return nil, models.ErrProjectNotFound(slug)
	}
	if catalog.SlugTaken(slug) {
		return nil, models.NewError(models.ErrCodeConflict, "Project slug already in use: "+slug)
	}

	project.Status = models.ProjectActive
	project.DeletedAt = nil
	if project.CompletedAt != nil {
		project.Status = models.ProjectCompleted
	}

	if err := tx.Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

func updateProject(tx *gorm.DB, slug string, fn func(*models.Project)) (*models.Project, error) {
	slug = strings.TrimSpace(slug)

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	project := snap.Catalog().ProjectBySlug(slug)
	if project == nil {
		return nil, models.ErrProjectNotFound(slug)
	}

	fn(project)
	if err := tx.Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}
