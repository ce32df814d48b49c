package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectDeleted   ProjectStatus = "deleted"
)

// Project groups tasks under a slug-addressed name
type Project struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UID       string    `gorm:"uniqueIndex;not null" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name   string        `gorm:"not null" json:"name"`
	Slug   string        `gorm:"not null;index" json:"slug"` // unique among non-deleted projects
	AreaID *uint         `json:"area_id"`
	Status ProjectStatus `gorm:"not null;default:active" json:"status"`

	CompletedAt *time.Time `json:"completed_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// AreaStatus is the lifecycle state of an area
type AreaStatus string

const (
	AreaActive  AreaStatus = "active"
	AreaDeleted AreaStatus = "deleted"
)

// Area is a free-form sphere of responsibility
type Area struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UID       string    `gorm:"uniqueIndex;not null" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name   string     `gorm:"not null" json:"name"` // unique (case-insensitive) among non-deleted areas
	Status AreaStatus `gorm:"not null;default:active" json:"status"`

	DeletedAt *time.Time `json:"deleted_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.UID == "" {
		p.UID = uuid.NewString()
	}
	return nil
}

func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.UID == "" {
		a.UID = uuid.NewString()
	}
	return nil
}

func (p *Project) IsDeleted() bool { return p.Status == ProjectDeleted }

func (a *Area) IsDeleted() bool { return a.Status == AreaDeleted }
