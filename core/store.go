package core

import (
	"context"

	"tempora.io/tempora/model"
)

// TemplateStore is the persistence boundary for monthly templates.
// Lookups return (nil, nil) when no record matches.
type TemplateStore interface {
	Find(ctx context.Context, id string) (*model.Template, error)
	FindByName(ctx context.Context, name string) (*model.Template, error)
	List(ctx context.Context, r MonthRange) ([]model.TemplateSummary, error)
	Create(ctx context.Context, t *model.Template) error
	Update(ctx context.Context, t *model.Template) error
	Delete(ctx context.Context, id string) error
}

// TimesheetStore is the persistence boundary for timesheets.
// Lookups return (nil, nil) when no record matches.
type TimesheetStore interface {
	Find(ctx context.Context, id string) (*model.Timesheet, error)
	FindByTemplate(ctx context.Context, templateID string) (*model.Timesheet, error)
	ListByOwner(ctx context.Context, ownerID string, r MonthRange) ([]model.TimesheetSummary, error)
	ListForApproval(ctx context.Context, email string) ([]model.ApprovalSummary, error)
	Create(ctx context.Context, ts *model.Timesheet) error
	Save(ctx context.Context, ts *model.Timesheet) error
	Delete(ctx context.Context, id, ownerID string) error
}
