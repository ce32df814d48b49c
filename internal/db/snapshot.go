package db

import (
	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/models"
)

// Snapshot is the full entity set read at the start of a command
type Snapshot struct {
	Tasks    []models.Task
	Projects []models.Project
	Areas    []models.Area

	catalog *models.Catalog
}

// Load reads every task (with tags), project and area ordered by ID
func Load(tx *gorm.DB) (*Snapshot, error) {
	var s Snapshot

	if err := tx.Preload("Tags").Order("id ASC").Find(&s.Tasks).Error; err != nil {
		return nil, err
	}
	if err := tx.Order("id ASC").Find(&s.Projects).Error; err != nil {
		return nil, err
	}
	if err := tx.Order("id ASC").Find(&s.Areas).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

// Catalog returns the project/area lookup table for this snapshot
func (s *Snapshot) Catalog() *models.Catalog {
	if s.catalog == nil {
		s.catalog = models.NewCatalog(s.Projects, s.Areas)
	}
	return s.catalog
}
