package core

import (
	"context"
	"errors"
	"time"

	"tempora.io/tempora/model"
)

// ErrDuplicateKey is returned by store implementations when a create hits a
// unique-index constraint. The engine translates it into a DuplicateError
// carrying the conflicting record's id and name.
var ErrDuplicateKey = errors.New("duplicate key")

// Engine owns the timesheet workflow: it validates transitions, applies the
// side effects (assignee staging, history and comment appends) and persists
// the canonical state through the injected stores.
type Engine struct {
	Templates  TemplateStore
	Timesheets TimesheetStore

	// Now is the clock used for history and comment timestamps. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
}

func NewEngine(templates TemplateStore, timesheets TimesheetStore) *Engine {
	return &Engine{
		Templates:  templates,
		Timesheets: timesheets,
		Now:        time.Now,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// CreateTimesheet instantiates a timesheet from a template snapshot. The
// template's name, month, year and days are copied at creation time; later
// template edits do not propagate. At most one timesheet may reference a
// template.
func (e *Engine) CreateTimesheet(ctx context.Context, templateID, callerID, callerEmail string) (*model.Timesheet, error) {
	tpl, err := e.Templates.Find(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, &NotFoundError{Resource: "Template", ID: templateID}
	}

	existing, err := e.Timesheets.FindByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateError{Resource: "Timesheet", ExistingID: existing.ID, ExistingName: existing.Name}
	}

	days := make([]model.Day, len(tpl.Days))
	for i, d := range tpl.Days {
		days[i] = model.Day{
			Day:               d.Day,
			Date:              d.Date,
			Type:              d.Type,
			NormalWorkedHours: d.NormalWorkedHours,
			TotalHours:        d.TotalHours,
		}
	}

	ts := &model.Timesheet{
		Name:       tpl.Name,
		TemplateID: tpl.ID,
		Month:      tpl.Month,
		Year:       tpl.Year,
		Days:       days,
		Status:     string(StatusDraft),
		CreatedBy:  callerID,
		Email:      callerEmail,
	}

	if err := e.Timesheets.Create(ctx, ts); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			// Lost the race to another create; report the winner.
			if winner, ferr := e.Timesheets.FindByTemplate(ctx, templateID); ferr == nil && winner != nil {
				return nil, &DuplicateError{Resource: "Timesheet", ExistingID: winner.ID, ExistingName: winner.Name}
			}
			return nil, &DuplicateError{Resource: "Timesheet"}
		}
		return nil, err
	}
	return ts, nil
}

// UpdateTimesheet resolves the patch against the current state and persists
// the result. See ResolveUpdate for the transition rules.
func (e *Engine) UpdateTimesheet(ctx context.Context, id, callerID string, patch UpdatePatch) (*model.Timesheet, error) {
	ts, err := e.Timesheets.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, &NotFoundError{Resource: "Timesheet", ID: id}
	}

	ch := ResolveUpdate(ts, callerID, patch)

	ts.Status = string(ch.Status)
	if ch.ApproverChanged {
		ts.Approver = ch.Approver
	}
	if ch.ReviewerChanged {
		ts.Reviewer = ch.Reviewer
	}
	if ch.DaysChanged {
		ts.Days = ch.Days
	}

	if err := e.Timesheets.Save(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// Decide records an approve/review/reject decision. The status only changes
// when the caller is eligible for the requested decision, but the history
// entry (and the comment, when text is given) is appended either way.
func (e *Engine) Decide(ctx context.Context, id, callerEmail string, requested Status, comments string) (*model.Timesheet, error) {
	ts, err := e.Timesheets.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, &NotFoundError{Resource: "Timesheet", ID: id}
	}

	next, _ := ResolveDecision(ts, callerEmail, requested)
	ts.Status = string(next)

	now := e.now()
	ts.History = append(ts.History, model.HistoryEntry{
		User:      callerEmail,
		Status:    string(requested),
		Timestamp: now,
	})
	if comments != "" {
		ts.Comments = append(ts.Comments, model.Comment{
			User:      callerEmail,
			Timestamp: now,
			Text:      comments,
		})
	}

	if err := e.Timesheets.Save(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// GetTimesheet returns a single timesheet, restricted to its owner and its
// current approver/reviewer.
func (e *Engine) GetTimesheet(ctx context.Context, id, callerID, callerEmail string) (*model.Timesheet, error) {
	ts, err := e.Timesheets.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, &NotFoundError{Resource: "Timesheet", ID: id}
	}
	if ts.CreatedBy != callerID && callerEmail != ts.Approver && callerEmail != ts.Reviewer {
		return nil, &ForbiddenError{Resource: "Timesheet"}
	}
	return ts, nil
}

// DeleteTimesheet removes the caller's timesheet. Deleting a timesheet that
// does not exist (or is not owned by the caller) is a no-op.
func (e *Engine) DeleteTimesheet(ctx context.Context, id, callerID string) error {
	return e.Timesheets.Delete(ctx, id, callerID)
}

// ListTimesheets returns the caller's timesheets inside the month range,
// newest first.
func (e *Engine) ListTimesheets(ctx context.Context, ownerID string, r MonthRange) ([]model.TimesheetSummary, error) {
	return e.Timesheets.ListByOwner(ctx, ownerID, r)
}

// ListApprovalQueue returns the non-draft timesheets the caller approves or
// reviews, most recently updated first.
func (e *Engine) ListApprovalQueue(ctx context.Context, callerEmail string) ([]model.ApprovalSummary, error) {
	return e.Timesheets.ListForApproval(ctx, callerEmail)
}

// CreateTemplate stores a new monthly template. Template names are unique.
func (e *Engine) CreateTemplate(ctx context.Context, tpl *model.Template) (*model.Template, error) {
	existing, err := e.Templates.FindByName(ctx, tpl.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateError{Resource: "Template", ExistingID: existing.ID, ExistingName: existing.Name}
	}

	if err := e.Templates.Create(ctx, tpl); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			if winner, ferr := e.Templates.FindByName(ctx, tpl.Name); ferr == nil && winner != nil {
				return nil, &DuplicateError{Resource: "Template", ExistingID: winner.ID, ExistingName: winner.Name}
			}
			return nil, &DuplicateError{Resource: "Template"}
		}
		return nil, err
	}
	return tpl, nil
}

// GetTemplate returns a single template by id.
func (e *Engine) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	tpl, err := e.Templates.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, &NotFoundError{Resource: "Template", ID: id}
	}
	return tpl, nil
}

// ListTemplates returns template summaries inside the month range, newest
// first.
func (e *Engine) ListTemplates(ctx context.Context, r MonthRange) ([]model.TemplateSummary, error) {
	return e.Templates.List(ctx, r)
}

// TemplatePatch carries the replaceable fields of a template update.
type TemplatePatch struct {
	Name  *string
	Month *int
	Year  *int
	Days  []model.TemplateDay
}

// UpdateTemplate replaces the given fields of an existing template. Existing
// timesheets keep their creation-time snapshot.
func (e *Engine) UpdateTemplate(ctx context.Context, id string, patch TemplatePatch) (*model.Template, error) {
	tpl, err := e.Templates.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, &NotFoundError{Resource: "Template", ID: id}
	}

	if patch.Name != nil {
		tpl.Name = *patch.Name
	}
	if patch.Month != nil {
		tpl.Month = *patch.Month
	}
	if patch.Year != nil {
		tpl.Year = *patch.Year
	}
	if patch.Days != nil {
		tpl.Days = patch.Days
	}

	if err := e.Templates.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// DeleteTemplate removes a template. Timesheets already created from it are
// unaffected.
func (e *Engine) DeleteTemplate(ctx context.Context, id string) error {
	return e.Templates.Delete(ctx, id)
}
