package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tempora.io/tempora/core"
	"tempora.io/tempora/model"
)

// TimesheetStore is the GORM-backed core.TimesheetStore.
type TimesheetStore struct {
	db *gorm.DB
}

func NewTimesheetStore(db *gorm.DB) *TimesheetStore {
	return &TimesheetStore{db: db}
}

func (s *TimesheetStore) Find(ctx context.Context, id string) (*model.Timesheet, error) {
	var ts model.Timesheet
	err := s.db.WithContext(ctx).First(&ts, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *TimesheetStore) FindByTemplate(ctx context.Context, templateID string) (*model.Timesheet, error) {
	var ts model.Timesheet
	err := s.db.WithContext(ctx).First(&ts, "template_id = ?", templateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *TimesheetStore) ListByOwner(ctx context.Context, ownerID string, r core.MonthRange) ([]model.TimesheetSummary, error) {
	var out []model.TimesheetSummary
	err := s.db.WithContext(ctx).
		Model(&model.Timesheet{}).
		Select("id, name, status, approver, reviewer").
		Where("created_by = ?", ownerID).
		Where("year > ? OR (year = ? AND month >= ?)", r.FromYear, r.FromYear, r.FromMonth).
		Where("year < ? OR (year = ? AND month <= ?)", r.ToYear, r.ToYear, r.ToMonth).
		Order("year DESC, month DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TimesheetStore) ListForApproval(ctx context.Context, email string) ([]model.ApprovalSummary, error) {
	var out []model.ApprovalSummary
	err := s.db.WithContext(ctx).
		Model(&model.Timesheet{}).
		Select("id, name, approver, reviewer, email, status").
		Where("(approver = ? OR reviewer = ?)", email, email).
		Where("status <> ?", "draft").
		Order("updated_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TimesheetStore) Create(ctx context.Context, ts *model.Timesheet) error {
	err := s.db.WithContext(ctx).Create(ts).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.ErrDuplicateKey
	}
	return err
}

func (s *TimesheetStore) Save(ctx context.Context, ts *model.Timesheet) error {
	return s.db.WithContext(ctx).Save(ts).Error
}

func (s *TimesheetStore) Delete(ctx context.Context, id, ownerID string) error {
	return s.db.WithContext(ctx).
		Delete(&model.Timesheet{}, "id = ? AND created_by = ?", id, ownerID).Error
}
