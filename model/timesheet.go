package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Day is one day entry of a timesheet. It is a superset of TemplateDay:
// the extra fields are filled in by the employee.
type Day struct {
	Day               string  `json:"day"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	NormalWorkedHours float64 `json:"normal_worked_hours"`
	TotalHours        float64 `json:"total_hours"`
	Sick              float64 `json:"sick"`
	Overtime          float64 `json:"overtime"`
	PlannedLeave      float64 `json:"planned_leave"`
	Remarks           string  `json:"remarks"`
}

// Comment is an entry of the append-only comment thread.
type Comment struct {
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
}

// HistoryEntry records one status decision attempt, authorized or not.
type HistoryEntry struct {
	User      string    `json:"user"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Timesheet is an employee-owned instance of a Template. The unique index
// on TemplateID enforces one timesheet per template at the database level.
type Timesheet struct {
	ID         string                            `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name       string                            `gorm:"size:255;not null" json:"name"`
	TemplateID string                            `gorm:"size:36;not null;uniqueIndex" json:"templateId"`
	Month      int                               `gorm:"not null" json:"month"`
	Year       int                               `gorm:"not null" json:"year"`
	Days       datatypes.JSONSlice[Day]          `gorm:"column:days" json:"days"`
	Status     string                            `gorm:"size:50;not null;default:draft" json:"status"`
	Approver   string                            `gorm:"size:255" json:"approver"`
	Reviewer   string                            `gorm:"size:255" json:"reviewer"`
	CreatedBy  string                            `gorm:"size:255;not null;index;column:created_by" json:"created_by"`
	Email      string                            `gorm:"size:255" json:"email"`
	Comments   datatypes.JSONSlice[Comment]      `gorm:"column:comments" json:"comments"`
	History    datatypes.JSONSlice[HistoryEntry] `gorm:"column:history" json:"history"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

func (t *Timesheet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TimesheetSummary is the projection returned by the owner listing.
type TimesheetSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Approver string `json:"approver"`
	Reviewer string `json:"reviewer"`
}

// ApprovalSummary is the projection returned by the approval queue listing.
type ApprovalSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Approver string `json:"approver"`
	Reviewer string `json:"reviewer"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}
