package db

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/tdo/internal/models"
)

// CreateArea creates an area; names are unique (case-insensitive) among live areas
func CreateArea(tx *gorm.DB, name string) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrInvalidName(name)
	}

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}
	if snap.Catalog().AreaByName(name) != nil {
		return nil, models.ErrDuplicateArea(name)
	}

	area := models.Area{
		Name:   name,
		Status: models.AreaActive,
	}
	if err := tx.Create(&area).Error; err != nil {
		return nil, err
	}

	return &area, nil
}

// DeleteArea tombstones an area. Projects and tasks keep their reference.
func DeleteArea(tx *gorm.DB, name string, now time.Time) (*models.Area, error) {
	name = strings.TrimSpace(name)

	snap, err := Load(tx)
	if err != nil {
		return nil, err
	}

	area := snap.Catalog().AreaByName(name)
	if area == nil {
		return nil, models.ErrAreaNotFound(name)
	}

	area.Status = models.AreaDeleted
	area.DeletedAt = &now
	if err := tx.Save(area).Error; err != nil {
		return nil, err
	}

	return area, nil
}

// ListAreas returns live areas ordered by name
func ListAreas(tx *gorm.DB) ([]models.Area, error) {
	var areas []models.Area
	err := tx.Where("status <> ?", models.AreaDeleted).Order("name COLLATE NOCASE ASC").Find(&areas).Error
	return areas, err
}
