package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TemplateDay is one day definition inside a monthly template.
type TemplateDay struct {
	Day               string  `json:"day"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	NormalWorkedHours float64 `json:"normal_worked_hours"`
	TotalHours        float64 `json:"total_hours"`
}

// Template is the immutable monthly blueprint a timesheet is created from.
type Template struct {
	ID    string                           `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name  string                           `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Month int                              `gorm:"not null" json:"month"`
	Year  int                              `gorm:"not null" json:"year"`
	Days  datatypes.JSONSlice[TemplateDay] `gorm:"column:days" json:"days"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Template) TableName() string {
	return "timesheet_templates"
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TemplateSummary is the projection returned by template listings.
type TemplateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
